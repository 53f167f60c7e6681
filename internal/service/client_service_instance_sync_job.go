// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/models"
)

const defaultSyncInterval = 5 * time.Minute

// instancePusher is the part of [InstanceService] the sync job drives.
type instancePusher interface {
	PushToCloud(ctx context.Context, session models.Session) (int, error)
}

type instanceSyncJob struct {
	instances instancePusher
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewInstanceSyncJob creates a job that calls PushToCloud on a ticker. The
// job is idle until Start is called.
func NewInstanceSyncJob(instances instancePusher, logger *logger.Logger) InstanceSyncJob {
	return &instanceSyncJob{instances: instances, logger: logger}
}

func (j *instanceSyncJob) Start(ctx context.Context, session models.Session, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()
	if !session.IsCloudLinked() {
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				pushed, err := j.instances.PushToCloud(jobCtx, session)
				if err != nil {
					j.logger.Warn().Err(err).Str("func", "instanceSyncJob.Start").Msg("instance push failed")
					continue
				}
				if pushed > 0 {
					j.logger.Debug().Int("pushed", pushed).Msg("instances pushed to cloud")
				}
			}
		}
	}()
}

// Stop is safe to call when the job is not running.
func (j *instanceSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
