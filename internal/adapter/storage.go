// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	objectPath       = "/storage/v1/object/{bucket}/{key}"
	publicObjectPath = "/storage/v1/object/public/"
)

type objectStorage struct {
	*Client
}

// NewObjectStorage returns the [ObjectStorage] of c.
func NewObjectStorage(c *Client) ObjectStorage {
	return &objectStorage{Client: c}
}

func (s *objectStorage) Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	req, cancel := s.request(ctx)
	defer cancel()

	resp, err := req.
		SetPathParams(map[string]string{"bucket": bucket, "key": key}).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(body).
		Post(objectPath)
	if err != nil {
		return fmt.Errorf("upload %s/%s request: %w", bucket, key, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *objectStorage) PublicURL(bucket, key string) string {
	return s.baseURL + publicObjectPath + url.PathEscape(bucket) + "/" + escapeKey(key)
}

func (s *objectStorage) Exists(ctx context.Context, bucket, key string) (bool, error) {
	req, cancel := s.request(ctx)
	defer cancel()

	resp, err := req.Head(s.PublicURL(bucket, key))
	if err != nil {
		return false, fmt.Errorf("head %s/%s request: %w", bucket, key, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return true, nil
	case http.StatusBadRequest, http.StatusNotFound:
		return false, nil
	}
	return false, mapHTTPError(resp)
}

// escapeKey escapes every segment of an object key, keeping the slashes.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
