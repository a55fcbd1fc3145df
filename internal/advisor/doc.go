// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package advisor holds the wire contract with the crop recommendation
// service: the regrouped request body, the recommendation records it
// returns, the HTTP client that performs the single POST, and the
// formatter that turns replies into transcript text.
package advisor
