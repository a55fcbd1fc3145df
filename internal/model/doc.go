// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the core data structures for the crop advisor:
//
//   - Message and Transcript: the append-only chat history. The transcript
//     only ever grows; messages are immutable once appended.
//   - Field and FarmInputs: the enumerated set of four farm-condition
//     measurements (soil pH, soil moisture, temperature, rainfall) and
//     their optional numeric values.
//
// The package has no dependencies on the UI or the network layer.
package model
