// Package session persists assessment runs in a local SQLite database:
// in-progress drafts that can be restored and completed runs kept as
// history. It replaces nothing in the scoring path; answers always flow
// through the caller-owned answer set.
package session

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/podassess/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound indicates no session with the requested id exists.
var ErrNotFound = errors.New("session: not found")

// Session is one assessment run. CurrentIndex is a position into the
// canonical flattened question sequence, not a question id.
type Session struct {
	ID           string
	PodName      string
	Quarter      string
	CurrentIndex int
	Answers      models.AnswerSet
	Completed    bool
	OverallScore float64
	StartedAt    time.Time
	UpdatedAt    time.Time
}

// New creates a fresh draft session for a pod and quarter.
func New(podName, quarter string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New().String(),
		PodName:   podName,
		Quarter:   quarter,
		Answers:   make(models.AnswerSet),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Store manages the SQLite session database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (or creates) the session database at dbPath and applies
// the schema. ":memory:" is accepted for tests.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so the remaining pragmas wait on locks instead
	// of failing when another process holds the database.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure database: %w", err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a session, refreshing its UpdatedAt stamp.
func (s *Store) Save(sess *Session) error {
	answers, err := json.Marshal(sess.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	sess.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec(`
		INSERT INTO sessions (id, pod_name, quarter, current_index, answers, completed, overall_score, started_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			pod_name = excluded.pod_name,
			quarter = excluded.quarter,
			current_index = excluded.current_index,
			answers = excluded.answers,
			completed = excluded.completed,
			overall_score = excluded.overall_score,
			updated_at = excluded.updated_at`,
		sess.ID, sess.PodName, sess.Quarter, sess.CurrentIndex, string(answers),
		sess.Completed, sess.OverallScore, sess.StartedAt, sess.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save session %s: %w", sess.ID, err)
	}
	return nil
}

// Get loads one session by id.
func (s *Store) Get(id string) (*Session, error) {
	row := s.db.QueryRow(`
		SELECT id, pod_name, quarter, current_index, answers, completed, overall_score, started_at, updated_at
		FROM sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sess, err
}

// List returns all sessions, most recently updated first.
func (s *Store) List() ([]*Session, error) {
	rows, err := s.db.Query(`
		SELECT id, pod_name, quarter, current_index, answers, completed, overall_score, started_at, updated_at
		FROM sessions ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Delete removes one session by id.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearDrafts removes every incomplete session and reports how many
// were removed.
func (s *Store) ClearDrafts() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE completed = 0`)
	if err != nil {
		return 0, fmt.Errorf("clear drafts: %w", err)
	}
	return res.RowsAffected()
}

// scanner abstracts sql.Row and sql.Rows for scanSession.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (*Session, error) {
	var (
		sess    Session
		answers string
	)
	err := sc.Scan(&sess.ID, &sess.PodName, &sess.Quarter, &sess.CurrentIndex,
		&answers, &sess.Completed, &sess.OverallScore, &sess.StartedAt, &sess.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(answers), &sess.Answers); err != nil {
		return nil, fmt.Errorf("parse answers for session %s: %w", sess.ID, err)
	}
	if sess.Answers == nil {
		sess.Answers = make(models.AnswerSet)
	}
	return &sess, nil
}
