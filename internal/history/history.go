// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history logs completed submissions to a local SQLite database so
// past farm conditions and the crops recommended for them survive restarts.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/uttamofficial/FARM-AI/internal/advisor"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrClosed        = errors.New("history log closed")
	ErrDatabaseError = errors.New("database error")
)

// =============================================================================
// ENTRY TYPE
// =============================================================================

// Entry is one recorded submission: the inputs sent and the top crop the
// service returned (empty when the service had nothing to recommend).
type Entry struct {
	ID          int64
	SubmittedAt time.Time
	SoilPH      float64
	SoilMoist   float64
	Temperature float64
	Rainfall    float64
	TopCrop     string
	CropCount   int
}

// =============================================================================
// HISTORY LOG
// =============================================================================

// Log records submissions in a SQLite database.
type Log struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at the given path.
func Open(path string) (*Log, error) {
	dbDir := filepath.Dir(path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	return &Log{db: db}, nil
}

// Close releases the underlying database.
func (l *Log) Close() error {
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// =============================================================================
// RECORD OPERATIONS
// =============================================================================

// Record logs a successful submission together with the service's answer.
func (l *Log) Record(ctx context.Context, req advisor.RecommendationRequest, resp *advisor.RecommendationResponse) (int64, error) {
	if l.db == nil {
		return 0, ErrClosed
	}

	topCrop := ""
	count := 0
	if resp != nil {
		count = len(resp.Recommendations)
		if count > 0 {
			topCrop = resp.Recommendations[0].Crop
		}
	}

	res, err := l.db.ExecContext(ctx, insertSQL,
		time.Now().UTC().Format(time.RFC3339),
		req.FarmInputs.SoilPH,
		req.FarmInputs.SoilMoisture,
		req.WeatherForecast.TemperatureC,
		req.WeatherForecast.RainfallMm,
		topCrop,
		count,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return id, nil
}

// Recent returns the most recent entries, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if l.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.QueryContext(ctx, recentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var submitted string
		if err := rows.Scan(&e.ID, &submitted, &e.SoilPH, &e.SoilMoist,
			&e.Temperature, &e.Rainfall, &e.TopCrop, &e.CropCount); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		if t, err := time.Parse(time.RFC3339, submitted); err == nil {
			e.SubmittedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	return entries, nil
}

// Count returns the total number of recorded submissions.
func (l *Log) Count(ctx context.Context) (int, error) {
	if l.db == nil {
		return 0, ErrClosed
	}
	var n int
	if err := l.db.QueryRowContext(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return n, nil
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatEntries renders entries as a plain-text table for the CLI.
func FormatEntries(entries []Entry) string {
	if len(entries) == 0 {
		return "No submissions recorded."
	}

	var sb strings.Builder
	sb.WriteString("Recent submissions:\n")
	for _, e := range entries {
		crop := e.TopCrop
		if crop == "" {
			crop = "(none)"
		}
		fmt.Fprintf(&sb, "%s  pH %.1f  moisture %.1f%%  %.1fC  %.1fmm  -> %s (%d crops)\n",
			e.SubmittedAt.Local().Format("2006-01-02 15:04"),
			e.SoilPH, e.SoilMoist, e.Temperature, e.Rainfall,
			crop, e.CropCount)
	}
	return strings.TrimRight(sb.String(), "\n")
}
