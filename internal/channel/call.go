// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/blocklauncher/models"
)

// Call invokes name and decodes the result data into out, which may be nil
// for operations without a result. Transport errors and results with
// Success=false both come back as the returned error.
func Call(ctx context.Context, ch Channel, name string, out any, args ...any) error {
	result, err := ch.Invoke(ctx, name, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return Decode(name, result, out)
}

// Decode checks result and unmarshals its data into out.
func Decode(name string, result models.ChannelResult, out any) error {
	if !result.Success {
		return fmt.Errorf("%s: %w: %s", name, ErrOperationFailed, result.Error)
	}
	if out == nil || len(result.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(result.Data, out); err != nil {
		return fmt.Errorf("%s: error decoding result: %w", name, err)
	}
	return nil
}
