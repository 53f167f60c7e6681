// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the hosted backend: its REST table endpoint,
// its auth endpoint, its public object storage and its realtime socket.
//
// All HTTP traffic goes through one [Client] that carries the project key and
// the bearer token of the current session. Error bodies are mapped to the
// sentinels in errors.go by mapHTTPError; bodies that carry a Postgres
// SQLSTATE are decoded into a *pgconn.PgError first, so callers may inspect
// the code with errors.As and ask [Classify] whether the failure is transient.
// No call is retried automatically.
package adapter
