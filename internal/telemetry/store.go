// Package telemetry records tool invocations in a local SQLite database
// so operators can see which waveform queries run, how often, and how
// long they take. Recording failures never fail the tool call itself.
package telemetry

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ynivin/waveform-mcp/internal/logging"
)

// Store persists tool invocation records.
type Store struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Invocation is one recorded tool call.
type Invocation struct {
	Tool       string
	OK         bool
	DurationMs int64
	CalledAt   time.Time
}

// ToolStats aggregates invocations per tool.
type ToolStats struct {
	Tool          string `json:"tool"`
	Calls         int    `json:"calls"`
	Failures      int    `json:"failures"`
	AvgDurationMs int64  `json:"avgDurationMs"`
}

// Open opens or creates the telemetry database at <dir>/telemetry.db.
func Open(dir string, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create telemetry directory: %w", err)
	}

	dbPath := filepath.Join(dir, "telemetry.db")
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open telemetry database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	store := &Store{
		conn:   conn,
		logger: logger,
		dbPath: dbPath,
	}
	if err := store.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize telemetry schema: %w", err)
	}
	return store, nil
}

func (s *Store) initializeSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS invocations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tool TEXT NOT NULL,
			ok INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			called_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_invocations_tool ON invocations(tool);
		CREATE INDEX IF NOT EXISTS idx_invocations_called_at ON invocations(called_at DESC);

		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);
		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// RecordInvocation stores one tool call. Errors are logged and swallowed
// so telemetry can never break a tool response.
func (s *Store) RecordInvocation(inv Invocation) {
	_, err := s.conn.Exec(
		`INSERT INTO invocations (tool, ok, duration_ms, called_at) VALUES (?, ?, ?, ?)`,
		inv.Tool, boolToInt(inv.OK), inv.DurationMs, inv.CalledAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		s.logger.Warn("Failed to record invocation", map[string]interface{}{
			"tool":  inv.Tool,
			"error": err.Error(),
		})
	}
}

// Summary aggregates recorded invocations per tool, most-called first.
func (s *Store) Summary() ([]ToolStats, error) {
	rows, err := s.conn.Query(`
		SELECT tool,
		       COUNT(*),
		       SUM(CASE WHEN ok = 0 THEN 1 ELSE 0 END),
		       CAST(AVG(duration_ms) AS INTEGER)
		FROM invocations
		GROUP BY tool
		ORDER BY COUNT(*) DESC, tool ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query invocations: %w", err)
	}
	defer rows.Close()

	var stats []ToolStats
	for rows.Next() {
		var st ToolStats
		if err := rows.Scan(&st.Tool, &st.Calls, &st.Failures, &st.AvgDurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan invocation row: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
