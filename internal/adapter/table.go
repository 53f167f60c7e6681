// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	restPath = "/rest/v1/{table}"

	// singularAccept asks for one object instead of an array; an empty
	// result becomes a PGRST116 error.
	singularAccept = "application/vnd.pgrst.object+json"
)

type restTableClient struct {
	*Client
}

// NewTableClient returns the REST [TableClient] of c.
func NewTableClient(c *Client) TableClient {
	return &restTableClient{Client: c}
}

// do runs one request built by build. Failures are returned as they are;
// transient database errors are only flagged in the log.
func (t *restTableClient) do(ctx context.Context, op, table string, build func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	req, cancel := t.request(ctx)
	defer cancel()
	req.SetPathParam("table", table)

	resp, err := build(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", op, table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		t.logger.Debug().Err(err).
			Str("func", "restTableClient.do").
			Str("table", table).
			Bool("transient", Classify(err) == Retryable).
			Msg("backend refused table request")
		return nil, fmt.Errorf("%s %s: %w", op, table, err)
	}
	return resp, nil
}

func (t *restTableClient) Select(ctx context.Context, table string, q Query, out any) error {
	resp, err := t.do(ctx, "select", table, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParamsFromValues(q.Params()).Get(restPath)
	})
	if err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("select %s decode: %w", table, err)
	}
	return nil
}

func (t *restTableClient) SelectOne(ctx context.Context, table string, q Query, out any) error {
	resp, err := t.do(ctx, "select one", table, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Accept", singularAccept).
			SetQueryParamsFromValues(q.Params()).
			Get(restPath)
	})
	if err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("select one %s decode: %w", table, err)
	}
	return nil
}

func (t *restTableClient) Insert(ctx context.Context, table string, rows any) error {
	_, err := t.do(ctx, "insert", table, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetHeader("Prefer", "return=minimal").
			SetBody(rows).
			Post(restPath)
	})
	return err
}

func (t *restTableClient) Upsert(ctx context.Context, table string, rows any, onConflict string) error {
	_, err := t.do(ctx, "upsert", table, func(r *resty.Request) (*resty.Response, error) {
		r.SetHeader("Content-Type", "application/json").
			SetHeader("Prefer", "resolution=merge-duplicates,return=minimal").
			SetBody(rows)
		if onConflict != "" {
			r.SetQueryParam("on_conflict", onConflict)
		}
		return r.Post(restPath)
	})
	return err
}

func (t *restTableClient) Update(ctx context.Context, table string, q Query, patch any) error {
	_, err := t.do(ctx, "update", table, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetHeader("Prefer", "return=minimal").
			SetQueryParamsFromValues(q.Filters()).
			SetBody(patch).
			Patch(restPath)
	})
	return err
}

func (t *restTableClient) Delete(ctx context.Context, table string, q Query) error {
	_, err := t.do(ctx, "delete", table, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParamsFromValues(q.Filters()).Delete(restPath)
	})
	return err
}
