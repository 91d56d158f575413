// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

const (
	// MsgNotFound is written for unknown routes and for known routes
	// requested with an unsupported method.
	MsgNotFound = "Not Found"

	// MsgHealthy is the status reported by the liveness route.
	MsgHealthy = "ok"
)
