// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// fieldErrors maps "<Struct>.<Field>" to the sentinel reported for it.
var fieldErrors = map[string]error{
	"FriendRequestInput.Username": ErrInvalidUsername,
	"TextureUpload.Kind":          ErrInvalidTextureKind,
	"TextureUpload.FileName":      ErrInvalidFileType,
	"TextureUpload.Size":          ErrInvalidFileSize,
	"ShareRequest.InstanceName":   ErrInvalidInstanceName,
	"ShareRequest.ReceiverID":     ErrInvalidReceiver,
	"ImportRequest.VersionIDs":    ErrNoVersions,
}

// InputValidator validates the user input types of package models.
type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("png", validatePNG)

	return &InputValidator{validate: v}
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

func validatePNG(fl validator.FieldLevel) bool {
	return strings.EqualFold(filepath.Ext(fl.Field().String()), ".png")
}

// Validate checks obj, a struct or pointer to struct. When fields are given
// only those struct fields are checked.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if !isStruct(obj) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		typeName := reflect.Indirect(reflect.ValueOf(obj)).Type().Name()
		for _, f := range fields {
			if _, ok := fieldErrors[typeName+"."+f]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return mapValidationError(err)
}

func isStruct(obj any) bool {
	if obj == nil {
		return false
	}
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fe := validationErrs[0]
	if strings.HasPrefix(fe.StructNamespace(), "ImportRequest.VersionIDs[") {
		return fmt.Errorf("%w: %q", ErrInvalidVersionID, fe.Value())
	}

	key := fe.StructNamespace()
	if sentinel, ok := fieldErrors[key]; ok {
		return fmt.Errorf("%w: failed on %q", sentinel, fe.Tag())
	}
	return err
}
