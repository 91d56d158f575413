// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the service from its settings: the root router with
// the route table mounted under the API prefix, the optional CORS policy,
// operational routes, and the shared outbound HTTP client.
package app
