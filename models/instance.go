// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Instance is a launcher profile: one game version plus an optional mod
// loader. Locally it is keyed by ID, in the cloud by (OwnerID, Name).
type Instance struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id,omitempty"`
	Name          string     `json:"name"`
	GameVersion   string     `json:"game_version"`
	Loader        string     `json:"loader,omitempty"`
	LoaderVersion string     `json:"loader_version,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// Key returns the identifier used by the optimistic list.
func (i Instance) Key() string {
	return i.Name
}

// InstanceRow is the wire shape of the backend "instances" table.
type InstanceRow struct {
	OwnerID       string     `json:"owner_id"`
	Name          string     `json:"name"`
	GameVersion   string     `json:"game_version"`
	Loader        string     `json:"loader,omitempty"`
	LoaderVersion string     `json:"loader_version,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// NewInstanceRow builds the cloud row for instance owned by ownerID.
func NewInstanceRow(instance Instance, ownerID string, now time.Time) InstanceRow {
	return InstanceRow{
		OwnerID:       ownerID,
		Name:          instance.Name,
		GameVersion:   instance.GameVersion,
		Loader:        instance.Loader,
		LoaderVersion: instance.LoaderVersion,
		UpdatedAt:     &now,
	}
}

// Instance converts the row into the domain shape.
func (r InstanceRow) Instance() Instance {
	return Instance{
		OwnerID:       r.OwnerID,
		Name:          r.Name,
		GameVersion:   r.GameVersion,
		Loader:        r.Loader,
		LoaderVersion: r.LoaderVersion,
		UpdatedAt:     r.UpdatedAt,
	}
}
