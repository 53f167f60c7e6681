// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the host side of the local operation channel.
//
// Every named operation is invoked with POST /api/invoke/{channel} and a body
// of the form {"args":[...]}; the answer is always a models.ChannelResult.
// Progress events of long-running operations are pushed to subscribers over
// the GET /api/events WebSocket. Request tracing, access logging and panic
// recovery are handled here before requests reach the host services.
package http
