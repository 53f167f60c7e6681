// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mod is a mod jar installed into an instance. Enabled is the only field
// the UI mutates.
type Mod struct {
	InstanceName string `json:"instance_name"`
	FileName     string `json:"file_name"`
	Name         string `json:"name"`
	Enabled      bool   `json:"enabled"`
}

// Key returns the identifier used by the optimistic list.
func (m Mod) Key() string {
	return m.FileName
}
