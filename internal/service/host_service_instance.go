// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/store"
	"github.com/MKhiriev/blocklauncher/models"
)

type hostInstanceService struct {
	instanceRepo store.InstanceRepository
	ids          IDGenerator
	events       EventPublisher
	launcher     config.Launcher
	logger       *logger.Logger
}

// NewHostInstanceService returns the [HostInstanceService].
func NewHostInstanceService(
	instanceRepo store.InstanceRepository,
	ids IDGenerator,
	events EventPublisher,
	launcher config.Launcher,
	logger *logger.Logger,
) HostInstanceService {
	return &hostInstanceService{
		instanceRepo: instanceRepo,
		ids:          ids,
		events:       events,
		launcher:     launcher,
		logger:       logger,
	}
}

func (s *hostInstanceService) List(ctx context.Context) ([]models.Instance, error) {
	return s.instanceRepo.List(ctx)
}

func (s *hostInstanceService) Save(ctx context.Context, instance models.Instance) (models.Instance, error) {
	if strings.TrimSpace(instance.Name) == "" {
		return models.Instance{}, ErrInstanceNameRequired
	}
	if instance.GameVersion == "" {
		return models.Instance{}, ErrInstanceGameVersionNeeded
	}

	if instance.ID == "" {
		existing, err := s.instanceRepo.Get(ctx, instance.Name)
		switch {
		case err == nil:
			instance.ID = existing.ID
			instance.CreatedAt = existing.CreatedAt
		case errors.Is(err, store.ErrNotFound):
			instance.ID = s.ids.Generate()
		default:
			return models.Instance{}, err
		}
	}

	// the cloud owner is not a local concept
	instance.OwnerID = ""

	if err := s.instanceRepo.Save(ctx, instance); err != nil {
		return models.Instance{}, err
	}

	return instance, nil
}

func (s *hostInstanceService) Delete(ctx context.Context, name string) error {
	return s.instanceRepo.Delete(ctx, name)
}

// versionManifest is the subset of an external launcher's version json the
// import reads.
type versionManifest struct {
	ID           string `json:"id"`
	InheritsFrom string `json:"inheritsFrom"`
}

func (s *hostInstanceService) ImportExternal(ctx context.Context, versionIDs []string) ([]models.Instance, error) {
	log := logger.FromContext(ctx)

	if s.launcher.ExternalDir == "" {
		return nil, ErrExternalDirNotConfigured
	}
	if len(versionIDs) == 0 {
		return nil, ErrNoVersionsSelected
	}

	progress := func(status string, value float64) {
		s.events.Publish(models.Event{
			Name:    models.EventInstanceImportProgress,
			Payload: models.ProgressEvent{Status: status, Progress: value},
		})
	}

	total := float64(len(versionIDs))
	imported := make([]models.Instance, 0, len(versionIDs))

	for i, versionID := range versionIDs {
		if err := ctx.Err(); err != nil {
			return imported, err
		}

		progress(fmt.Sprintf("Reading %s", versionID), float64(i)/total)

		manifest, err := s.readManifest(versionID)
		if err != nil {
			progress(fmt.Sprintf("Failed to import %s", versionID), float64(i+1)/total)
			return imported, err
		}

		instance := instanceFromManifest(manifest)
		saved, err := s.Save(ctx, instance)
		if errors.Is(err, store.ErrInstanceExists) {
			log.Warn().Str("func", "hostInstanceService.ImportExternal").Str("version", versionID).Msg("instance already exists, skipping")
			progress(fmt.Sprintf("Skipped %s", versionID), float64(i+1)/total)
			continue
		}
		if err != nil {
			progress(fmt.Sprintf("Failed to import %s", versionID), float64(i+1)/total)
			return imported, err
		}

		imported = append(imported, saved)
		progress(fmt.Sprintf("Imported %s", versionID), float64(i+1)/total)
	}

	progress("Done", 1)
	log.Info().Str("func", "hostInstanceService.ImportExternal").Int("count", len(imported)).Msg("external versions imported")

	return imported, nil
}

func (s *hostInstanceService) readManifest(versionID string) (versionManifest, error) {
	if versionID == "" || strings.ContainsAny(versionID, `/\`) || versionID == "." || versionID == ".." {
		return versionManifest{}, fmt.Errorf("%w: invalid version id %q", ErrExternalVersionNotFound, versionID)
	}

	path := filepath.Join(s.launcher.ExternalDir, "versions", versionID, versionID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return versionManifest{}, fmt.Errorf("%w: %s", ErrExternalVersionNotFound, versionID)
	}

	var manifest versionManifest
	if err = json.Unmarshal(data, &manifest); err != nil {
		return versionManifest{}, fmt.Errorf("error decoding manifest of %s: %w", versionID, err)
	}
	if manifest.ID == "" {
		manifest.ID = versionID
	}

	return manifest, nil
}

// instanceFromManifest resolves the game version and the loader of a
// version manifest. Loader versions inherit from the vanilla version they
// were installed over.
func instanceFromManifest(m versionManifest) models.Instance {
	instance := models.Instance{
		Name:        m.ID,
		GameVersion: m.ID,
	}
	if m.InheritsFrom == "" {
		return instance
	}

	instance.GameVersion = m.InheritsFrom
	lower := strings.ToLower(m.ID)

	switch {
	case strings.HasPrefix(lower, "fabric-loader-"):
		instance.Loader = "fabric"
		instance.LoaderVersion = loaderVersion(m.ID, "fabric-loader-", m.InheritsFrom)
	case strings.HasPrefix(lower, "quilt-loader-"):
		instance.Loader = "quilt"
		instance.LoaderVersion = loaderVersion(m.ID, "quilt-loader-", m.InheritsFrom)
	case strings.Contains(lower, "neoforge"):
		instance.Loader = "neoforge"
		instance.LoaderVersion = strings.TrimPrefix(strings.TrimPrefix(lower, "neoforge-"), m.InheritsFrom+"-")
	case strings.Contains(lower, "forge"):
		instance.Loader = "forge"
		instance.LoaderVersion = strings.TrimPrefix(lower, m.InheritsFrom+"-forge-")
	}

	return instance
}

// loaderVersion extracts "0.15.0" from "fabric-loader-0.15.0-1.20.4".
func loaderVersion(id, prefix, gameVersion string) string {
	v := id[len(prefix):]
	return strings.TrimSuffix(v, "-"+gameVersion)
}
