// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the launcher process runtime.
//
// It establishes the account session, starts the background work (host
// event stream, instance sync job, first cloud pull) and runs the terminal
// UI until the user quits.
package client
