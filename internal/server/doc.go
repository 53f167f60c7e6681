// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the host's loopback HTTP server and shuts it down
// gracefully when the process receives a termination signal.
package server
