// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway translates launcher intents into backend table operations
// and normalizes the rows it gets back into the shapes of package models.
//
// Every operation is fail-soft: backend errors are logged and turned into an
// empty result, nil or false. Callers treat each call as best effort and own
// reconciling the returned data into local state. Owner and user ids are
// always passed in explicitly; an empty owner id makes the call a silent
// no-op so offline sessions never reach the backend.
package gateway
