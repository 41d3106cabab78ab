package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

// The fire-history schema ships with the binary; a fresh database is
// migrated on open.
//
//go:embed migrations/*.sql
var schemaFS embed.FS

func MigrateUp(db *sql.DB) error {
	return runSchemaScripts(db, ".up.sql")
}

func MigrateDown(db *sql.DB) error {
	return runSchemaScripts(db, ".down.sql")
}

func runSchemaScripts(db *sql.DB, suffix string) error {
	entries, err := schemaFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		script, err := schemaFS.ReadFile(path.Join("migrations", name))
		if err != nil {
			return fmt.Errorf("read schema script %s: %w", name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("run schema script %s: %w", name, err)
		}
	}
	return nil
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens (or creates) the history database at path and
// applies migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) AppendFire(ctx context.Context, in FireRecord) error {
	titles, err := json.Marshal(in.Titles)
	if err != nil {
		return fmt.Errorf("encode titles: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO fire_history (id, fired_at, pending_count, titles)
		VALUES (?, ?, ?, ?)`,
		in.ID, mustTime(in.FiredAt), in.PendingCount, string(titles),
	)
	return err
}

func (r *SQLiteRepository) ListRecentFires(ctx context.Context, limit int) ([]FireRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, fired_at, pending_count, titles
		FROM fire_history ORDER BY fired_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FireRecord, 0, limit)
	for rows.Next() {
		rec, scanErr := scanFire(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// PruneFires keeps only the newest `keep` records.
func (r *SQLiteRepository) PruneFires(ctx context.Context, keep int) error {
	if keep <= 0 {
		keep = 100
	}
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM fire_history
		WHERE id NOT IN (
			SELECT id FROM fire_history ORDER BY fired_at DESC LIMIT ?
		)`, keep)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFire(s scanner) (FireRecord, error) {
	var out FireRecord
	var fired string
	var titles string
	if err := s.Scan(&out.ID, &fired, &out.PendingCount, &titles); err != nil {
		return FireRecord{}, err
	}
	firedAt, err := time.Parse(sqliteTimeLayout, fired)
	if err != nil {
		return FireRecord{}, err
	}
	out.FiredAt = firedAt
	if err := json.Unmarshal([]byte(titles), &out.Titles); err != nil {
		return FireRecord{}, err
	}
	return out, nil
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}
