// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

// Schema and queries for the submission log. One table, append-only.

const schemaSQL = `
CREATE TABLE IF NOT EXISTS submissions (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	submitted_at TEXT NOT NULL,
	soil_ph      REAL NOT NULL,
	soil_moist   REAL NOT NULL,
	temperature  REAL NOT NULL,
	rainfall     REAL NOT NULL,
	top_crop     TEXT NOT NULL DEFAULT '',
	crop_count   INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_submissions_time ON submissions(submitted_at DESC);
`

const insertSQL = `
INSERT INTO submissions (submitted_at, soil_ph, soil_moist, temperature, rainfall, top_crop, crop_count)
VALUES (?, ?, ?, ?, ?, ?, ?)`

const recentSQL = `
SELECT id, submitted_at, soil_ph, soil_moist, temperature, rainfall, top_crop, crop_count
FROM submissions
ORDER BY id DESC
LIMIT ?`

const countSQL = `SELECT COUNT(*) FROM submissions`
