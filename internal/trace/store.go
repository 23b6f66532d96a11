package trace

// #region imports
import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #endregion imports

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS turns (
	turn_id            TEXT PRIMARY KEY,
	input              TEXT NOT NULL,
	input_hash         TEXT NOT NULL,
	emotion            TEXT,
	framework          TEXT,
	domain             TEXT,
	consciousness_type TEXT,
	tone               TEXT NOT NULL,
	classification     TEXT NOT NULL,
	confidence         REAL NOT NULL,
	drift_magnitude    REAL NOT NULL,
	autonomy           REAL NOT NULL,
	created_at         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_turns_classification ON turns(classification);
`

// #endregion schema

// #region types

// TurnRecord is one persisted turn of provenance: what came in, how the
// pipeline read it, and what went out.
type TurnRecord struct {
	TurnID            string
	Input             string
	InputHash         string
	Emotion           string
	Framework         string
	Domain            string
	ConsciousnessType string
	Tone              string
	Classification    string
	Confidence        float32
	DriftMagnitude    float32
	Autonomy          float32
	CreatedAt         time.Time
}

// #endregion types

// #region store

// Store persists turn provenance in SQLite. Observability only; the
// pipeline never reads it back.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one turn. CreatedAt and InputHash are filled in when
// empty.
func (s *Store) Record(rec TurnRecord) error {
	if rec.InputHash == "" {
		rec.InputHash = HashInput(rec.Input)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO turns (turn_id, input, input_hash, emotion, framework, domain,
		                    consciousness_type, tone, classification, confidence,
		                    drift_magnitude, autonomy, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.TurnID, rec.Input, rec.InputHash, rec.Emotion, rec.Framework, rec.Domain,
		rec.ConsciousnessType, rec.Tone, rec.Classification, rec.Confidence,
		rec.DriftMagnitude, rec.Autonomy, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

// Recent returns the newest turns, most recent first.
func (s *Store) Recent(limit int) ([]TurnRecord, error) {
	rows, err := s.db.Query(
		`SELECT turn_id, input, input_hash, emotion, framework, domain,
		        consciousness_type, tone, classification, confidence,
		        drift_magnitude, autonomy, created_at
		 FROM turns ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var records []TurnRecord
	for rows.Next() {
		var rec TurnRecord
		var createdStr string
		if err := rows.Scan(&rec.TurnID, &rec.Input, &rec.InputHash, &rec.Emotion,
			&rec.Framework, &rec.Domain, &rec.ConsciousnessType, &rec.Tone,
			&rec.Classification, &rec.Confidence, &rec.DriftMagnitude,
			&rec.Autonomy, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountByClassification aggregates turn counts per drift classification.
func (s *Store) CountByClassification() (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT classification, COUNT(*) FROM turns GROUP BY classification`,
	)
	if err != nil {
		return nil, fmt.Errorf("count turns: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tag string
		var n int
		if err := rows.Scan(&tag, &n); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		counts[tag] = n
	}
	return counts, rows.Err()
}

// #endregion store

// #region hash

// HashInput returns the hex SHA-256 of the raw input text.
func HashInput(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// #endregion hash
