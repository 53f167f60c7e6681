// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/blocklauncher/models"
)

// channelFunc runs one named operation with its positional arguments.
type channelFunc func(ctx context.Context, args []json.RawMessage) (any, error)

func (h *Handler) channelTable() map[string]channelFunc {
	return map[string]channelFunc{
		models.ChannelConfigGet:        h.configGet,
		models.ChannelConfigSet:        h.configSet,
		models.ChannelConfigSetGame:    h.configSetGamePath,
		models.ChannelConfigSelectJava: h.configSelectJava,
		models.ChannelConfigResetJava:  h.configResetJava,
		models.ChannelAppReset:         h.appReset,
		models.ChannelInstanceImport:   h.instanceImport,
		models.ChannelInstanceList:     h.instanceList,
		models.ChannelInstanceDelete:   h.instanceDelete,
		models.ChannelInstanceSave:     h.instanceSave,
		models.ChannelModsList:         h.modsList,
		models.ChannelModsToggle:       h.modsToggle,
		models.ChannelModsDelete:       h.modsDelete,
	}
}

// decodeArgs decodes args positionally into targets. A *json.RawMessage
// target receives the argument verbatim.
func decodeArgs(args []json.RawMessage, targets ...any) error {
	if len(args) < len(targets) {
		return fmt.Errorf("%w: expected %d, got %d", ErrMissingArgument, len(targets), len(args))
	}
	for i, target := range targets {
		if raw, ok := target.(*json.RawMessage); ok {
			*raw = args[i]
			continue
		}
		if err := json.Unmarshal(args[i], target); err != nil {
			return fmt.Errorf("%w %d: %v", ErrInvalidArgument, i, err)
		}
	}
	return nil
}

// ── config ──

func (h *Handler) configGet(ctx context.Context, _ []json.RawMessage) (any, error) {
	return h.services.ConfigService.Get(ctx)
}

func (h *Handler) configSet(ctx context.Context, args []json.RawMessage) (any, error) {
	var (
		key   string
		value json.RawMessage
	)
	if err := decodeArgs(args, &key, &value); err != nil {
		return nil, err
	}
	return h.services.ConfigService.Set(ctx, key, value)
}

func (h *Handler) configSetGamePath(ctx context.Context, args []json.RawMessage) (any, error) {
	var path string
	if err := decodeArgs(args, &path); err != nil {
		return nil, err
	}
	return h.services.ConfigService.SetGamePath(ctx, path)
}

func (h *Handler) configSelectJava(ctx context.Context, args []json.RawMessage) (any, error) {
	var version, path string
	if err := decodeArgs(args, &version, &path); err != nil {
		return nil, err
	}
	return h.services.ConfigService.SelectJava(ctx, version, path)
}

// configResetJava resets every runtime when called without a version.
func (h *Handler) configResetJava(ctx context.Context, args []json.RawMessage) (any, error) {
	var version string
	if len(args) > 0 {
		if err := decodeArgs(args, &version); err != nil {
			return nil, err
		}
	}
	return h.services.ConfigService.ResetJava(ctx, version)
}

func (h *Handler) appReset(ctx context.Context, args []json.RawMessage) (any, error) {
	var mode string
	if err := decodeArgs(args, &mode); err != nil {
		return nil, err
	}
	return nil, h.services.ConfigService.ResetApp(ctx, mode)
}

// ── instances ──

func (h *Handler) instanceImport(ctx context.Context, args []json.RawMessage) (any, error) {
	var versionIDs []string
	if err := decodeArgs(args, &versionIDs); err != nil {
		return nil, err
	}
	return h.services.InstanceService.ImportExternal(ctx, versionIDs)
}

func (h *Handler) instanceList(ctx context.Context, _ []json.RawMessage) (any, error) {
	return h.services.InstanceService.List(ctx)
}

func (h *Handler) instanceDelete(ctx context.Context, args []json.RawMessage) (any, error) {
	var name string
	if err := decodeArgs(args, &name); err != nil {
		return nil, err
	}
	return nil, h.services.InstanceService.Delete(ctx, name)
}

func (h *Handler) instanceSave(ctx context.Context, args []json.RawMessage) (any, error) {
	var instance models.Instance
	if err := decodeArgs(args, &instance); err != nil {
		return nil, err
	}
	return h.services.InstanceService.Save(ctx, instance)
}

// ── mods ──

func (h *Handler) modsList(ctx context.Context, args []json.RawMessage) (any, error) {
	var instanceName string
	if err := decodeArgs(args, &instanceName); err != nil {
		return nil, err
	}
	return h.services.ModService.List(ctx, instanceName)
}

func (h *Handler) modsToggle(ctx context.Context, args []json.RawMessage) (any, error) {
	var (
		instanceName, fileName string
		enabled                bool
	)
	if err := decodeArgs(args, &instanceName, &fileName, &enabled); err != nil {
		return nil, err
	}
	return nil, h.services.ModService.Toggle(ctx, instanceName, fileName, enabled)
}

func (h *Handler) modsDelete(ctx context.Context, args []json.RawMessage) (any, error) {
	var instanceName, fileName string
	if err := decodeArgs(args, &instanceName, &fileName); err != nil {
		return nil, err
	}
	return nil, h.services.ModService.Delete(ctx, instanceName, fileName)
}
