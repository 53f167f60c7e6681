// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package optimistic

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/blocklauncher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modKey(m models.Mod) string { return m.Key() }

func flip(m models.Mod) models.Mod {
	m.Enabled = !m.Enabled
	return m
}

func testMods() []models.Mod {
	return []models.Mod{
		{InstanceName: "Survival", FileName: "sodium.jar", Name: "Sodium", Enabled: true},
		{InstanceName: "Survival", FileName: "lithium.jar", Name: "Lithium", Enabled: false},
		{InstanceName: "Survival", FileName: "iris.jar", Name: "Iris", Enabled: true},
	}
}

var errHost = errors.New("host rejected")

// ── Toggle ───────────────────────────────────────────────────────────────────

func TestToggle_AppliesBeforeOpResolves(t *testing.T) {
	list := NewList(modKey, testMods())
	release := make(chan struct{})
	seen := make(chan []models.Mod, 1)

	done, err := list.Toggle(context.Background(), "lithium.jar", flip, func(_ context.Context, m models.Mod) error {
		assert.True(t, m.Enabled)
		<-release
		return nil
	})
	require.NoError(t, err)

	seen <- list.Items()
	close(release)
	require.NoError(t, <-done)

	assert.True(t, (<-seen)[1].Enabled, "optimistic state visible while op pending")
	assert.True(t, list.Items()[1].Enabled)
	assert.False(t, list.InFlight("lithium.jar"))
}

func TestToggle_FailureRestoresExactPreviousState(t *testing.T) {
	before := testMods()
	list := NewList(modKey, before)

	done, err := list.Toggle(context.Background(), "sodium.jar", flip, func(context.Context, models.Mod) error {
		return errHost
	})
	require.NoError(t, err)

	assert.ErrorIs(t, <-done, errHost)
	assert.Equal(t, before, list.Items())
}

func TestToggle_SecondMutationRejectedWhileInFlight(t *testing.T) {
	list := NewList(modKey, testMods())
	release := make(chan struct{})

	done, err := list.Toggle(context.Background(), "iris.jar", flip, func(context.Context, models.Mod) error {
		<-release
		return nil
	})
	require.NoError(t, err)

	_, err = list.Toggle(context.Background(), "iris.jar", flip, func(context.Context, models.Mod) error { return nil })
	assert.ErrorIs(t, err, ErrMutationInFlight)

	_, err = list.Remove(context.Background(), "iris.jar", func(context.Context, models.Mod) error { return nil }, nil)
	assert.ErrorIs(t, err, ErrMutationInFlight)

	other, err := list.Toggle(context.Background(), "sodium.jar", flip, func(context.Context, models.Mod) error { return nil })
	require.NoError(t, err, "other items stay mutable")
	require.NoError(t, <-other)

	close(release)
	require.NoError(t, <-done)

	assert.False(t, list.Items()[2].Enabled)
	assert.False(t, list.Items()[0].Enabled)
}

func TestToggle_UnknownItem(t *testing.T) {
	list := NewList(modKey, testMods())

	_, err := list.Toggle(context.Background(), "optifine.jar", flip, func(context.Context, models.Mod) error { return nil })

	assert.ErrorIs(t, err, ErrItemNotFound)
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestRemove_Success(t *testing.T) {
	list := NewList(modKey, testMods())
	var removed models.Mod

	done, err := list.Remove(context.Background(), "lithium.jar", func(_ context.Context, m models.Mod) error {
		removed = m
		return nil
	}, nil)
	require.NoError(t, err)
	require.NoError(t, <-done)

	assert.Equal(t, "Lithium", removed.Name)
	assert.Len(t, list.Items(), 2)
}

func TestRemove_FailureReloads(t *testing.T) {
	list := NewList(modKey, testMods())
	reloaded := []models.Mod{{FileName: "sodium.jar"}, {FileName: "lithium.jar"}}

	done, err := list.Remove(context.Background(), "lithium.jar",
		func(context.Context, models.Mod) error { return errHost },
		func(context.Context) ([]models.Mod, error) { return reloaded, nil },
	)
	require.NoError(t, err)

	assert.ErrorIs(t, <-done, errHost)
	assert.Equal(t, reloaded, list.Items())
}

func TestRemove_FailureWithoutReloadPutsItemBack(t *testing.T) {
	before := testMods()
	list := NewList(modKey, before)

	done, err := list.Remove(context.Background(), "lithium.jar",
		func(context.Context, models.Mod) error { return errHost },
		func(context.Context) ([]models.Mod, error) { return nil, errors.New("reload failed") },
	)
	require.NoError(t, err)

	assert.ErrorIs(t, <-done, errHost)
	assert.Equal(t, before, list.Items())
}

// ── Observers ────────────────────────────────────────────────────────────────

func TestOnChange(t *testing.T) {
	list := NewList(modKey, testMods())
	var snapshots [][]models.Mod
	list.OnChange(func(items []models.Mod) { snapshots = append(snapshots, items) })

	done, err := list.Toggle(context.Background(), "sodium.jar", flip, func(context.Context, models.Mod) error { return errHost })
	require.NoError(t, err)
	<-done

	require.Len(t, snapshots, 2)
	assert.False(t, snapshots[0][0].Enabled)
	assert.True(t, snapshots[1][0].Enabled)

	list.Replace(nil)
	assert.Len(t, snapshots, 3)
	assert.Empty(t, list.Items())
}
