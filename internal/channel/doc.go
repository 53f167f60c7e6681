// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package channel is the launcher's end of the local operation channel.
//
// Invoke posts a named operation to the host and returns its
// models.ChannelResult. On registers a handler for a named progress event;
// events arrive over one WebSocket connection kept open by Listen. Call
// collapses the two failure shapes of an invocation (transport error and
// success=false) into a single error.
package channel
