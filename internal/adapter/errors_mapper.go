// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// codeNoRows is the REST layer's code for a singular response without rows.
const codeNoRows = "PGRST116"

// ErrorClassification tells whether a failed backend call may succeed if
// attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// apiError is the JSON error body of the REST layer. Database errors carry
// their SQLSTATE in Code.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var apiErr apiError
	if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Code != "" {
		if apiErr.Code == codeNoRows {
			return fmt.Errorf("%w: %s", ErrNoRows, apiErr.Message)
		}
		if isSQLState(apiErr.Code) {
			pgErr := &pgconn.PgError{
				Severity: "ERROR",
				Code:     apiErr.Code,
				Message:  apiErr.Message,
				Detail:   apiErr.Details,
				Hint:     apiErr.Hint,
			}
			return fmt.Errorf("%w: %w", sentinelForPgError(pgErr, resp.StatusCode()), pgErr)
		}
		body = apiErr.Message
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// isSQLState reports whether code looks like a five character SQLSTATE.
func isSQLState(code string) bool {
	if len(code) != 5 {
		return false
	}
	for _, r := range code {
		if (r < '0' || r > '9') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func sentinelForPgError(pgErr *pgconn.PgError, status int) error {
	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return ErrConflict
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code),
		pgerrcode.IsDataException(pgErr.Code):
		return ErrBadRequest
	case pgErr.Code == pgerrcode.InsufficientPrivilege:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	}
	return ErrInternalServerError
}

// Classify reports whether err, as returned by a backend call, is worth
// retrying. Only database errors are inspected.
func Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based
// on its SQLSTATE.
//
// Retryable codes:
//   - Class 08: connection exceptions
//   - Class 40: transaction rollback, serialization failure, deadlock
//   - 57P03: cannot connect now
//
// Everything else, constraint violations and syntax errors included, is
// [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	}
	return NonRetryable
}
