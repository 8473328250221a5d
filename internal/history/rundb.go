package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// ErrNotFound is returned by Open when the database file does not exist
// and creation is disabled. Callers distinguish it from real open
// failures: an absent history is normal, a corrupt one is not.
var ErrNotFound = errors.New("run history database not found")

// RunDB provides SQLite-based storage for validated runs.
//
// Design decision: We use a single database file for all projects rather
// than one per output prefix. History queries span projects ("what did I
// run yesterday?") and a single file keeps backup trivial.
type RunDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures RunDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended for most uses.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Run is one validated invocation as stored in the history database.
type Run struct {
	// ID is the database row id.
	ID int64

	// Timestamp is when the run was recorded.
	Timestamp time.Time

	// Tool is the program name the invocation was checked for.
	Tool string

	// Images are the input image paths.
	Images []string

	// Cameras are the camera model paths; may be empty.
	Cameras []string

	// Prefix is the output prefix.
	Prefix string

	// DEMPath is the optional terrain model path.
	DEMPath string

	// TargetName is the target body read from the first cube, or
	// "UNKNOWN".
	TargetName string
}

// Open opens or creates a RunDB in the given directory.
// If CreateIfNotExists is false and the database doesn't exist, an error
// is returned instead of creating an empty history.
func Open(dbDir string, opts Options) (*RunDB, error) {
	dbPath := filepath.Join(dbDir, "stereoprep.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to refuse creating new files and
	// mode=rwc to allow it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports only one writer; more connections buy nothing here.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RunDB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *RunDB) Close() error {
	return rdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (rdb *RunDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		tool TEXT NOT NULL,
		images TEXT NOT NULL,
		cameras TEXT NOT NULL,
		prefix TEXT NOT NULL,
		dem_path TEXT,
		target_name TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	CREATE INDEX IF NOT EXISTS idx_runs_prefix ON runs(prefix);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun records one validated run. The image and camera lists are
// stored as JSON arrays so the schema stays flat.
func (rdb *RunDB) SaveRun(ctx context.Context, run *Run) (int64, error) {
	imagesJSON, err := json.Marshal(run.Images)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize images: %w", err)
	}
	camerasJSON, err := json.Marshal(run.Cameras)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize cameras: %w", err)
	}

	result, err := rdb.db.ExecContext(ctx, `
	INSERT INTO runs (tool, images, cameras, prefix, dem_path, target_name)
	VALUES (?, ?, ?, ?, ?, ?)`,
		run.Tool, string(imagesJSON), string(camerasJSON),
		run.Prefix, run.DEMPath, run.TargetName)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first, up to limit.
func (rdb *RunDB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := rdb.db.QueryContext(ctx, `
	SELECT id, timestamp, tool, images, cameras, prefix, dem_path, target_name
	FROM runs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run         Run
			imagesJSON  string
			camerasJSON string
			demPath     sql.NullString
			targetName  sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.Timestamp, &run.Tool,
			&imagesJSON, &camerasJSON, &run.Prefix, &demPath, &targetName); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(imagesJSON), &run.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
		if err := json.Unmarshal([]byte(camerasJSON), &run.Cameras); err != nil {
			return nil, fmt.Errorf("failed to decode cameras: %w", err)
		}
		run.DEMPath = demPath.String
		run.TargetName = targetName.String
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}
