// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the advisor chat panel.
//
// The panel has two states. Collapsed, it shows a small launcher box;
// open, it shows the message transcript above a four-field form for soil
// pH, soil moisture, temperature and rainfall. Submitting the form posts
// the values to the recommendation service and appends the reply to the
// transcript. Toggling the panel never discards state, and multiple
// submissions may be in flight at once.
package chat
