// Package history persists draft revisions and their validation reports.
//
// It uses SQLite with an FTS5 index so earlier drafts stay searchable as a
// case goes through revision loops. The store is an optional subsystem: if
// it fails to open, the workflow tools keep working without history.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bordenet/business-justification-assistant/internal/scoring"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Draft is one stored revision of a phase artifact.
type Draft struct {
	ID        int64  `json:"id"`
	CaseName  string `json:"case_name"`
	Phase     string `json:"phase"`
	Revision  int    `json:"revision"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Report is a persisted validation result. DraftID is 0 when the scored
// text was supplied ad hoc rather than loaded from a stored draft.
type Report struct {
	ID        int64  `json:"id"`
	CaseName  string `json:"case_name"`
	DraftID   int64  `json:"draft_id,omitempty"`
	Total     int    `json:"total"`
	Strategic int    `json:"strategic"`
	Financial int    `json:"financial"`
	Options   int    `json:"options"`
	Execution int    `json:"execution"`
	Deduction int    `json:"deduction"`
	Feedback  string `json:"feedback"` // full scoring.Report as JSON
	CreatedAt string `json:"created_at"`
}

// SearchResult embeds a Draft with its FTS5 rank.
type SearchResult struct {
	Draft
	Rank float64 `json:"rank"`
}

// Config holds history store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig stores history under the user's home directory.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".bja")}
}

// Store is the draft/report archive backed by SQLite + FTS5.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New opens (creating if needed) the history database.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "history.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS drafts (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			case_name  TEXT    NOT NULL,
			phase      TEXT    NOT NULL,
			revision   INTEGER NOT NULL DEFAULT 1,
			content    TEXT    NOT NULL,
			created_at TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_drafts_case    ON drafts(case_name, phase, revision DESC);
		CREATE INDEX IF NOT EXISTS idx_drafts_created ON drafts(created_at DESC);

		CREATE VIRTUAL TABLE IF NOT EXISTS drafts_fts USING fts5(
			case_name,
			phase,
			content
		);

		CREATE TABLE IF NOT EXISTS reports (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			case_name  TEXT    NOT NULL,
			draft_id   INTEGER,
			total      INTEGER NOT NULL,
			strategic  INTEGER NOT NULL,
			financial  INTEGER NOT NULL,
			options    INTEGER NOT NULL,
			execution  INTEGER NOT NULL,
			deduction  INTEGER NOT NULL,
			feedback   TEXT    NOT NULL,
			created_at TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_reports_case ON reports(case_name, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveDraft stores a new revision of a phase artifact. Revisions count up
// per (case, phase) pair.
func (s *Store) SaveDraft(caseName, phase, content string) (*Draft, error) {
	var revision int
	err := s.db.QueryRow(
		`SELECT COALESCE(MAX(revision), 0) + 1 FROM drafts WHERE case_name = ? AND phase = ?`,
		caseName, phase,
	).Scan(&revision)
	if err != nil {
		return nil, fmt.Errorf("history: next revision: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO drafts (case_name, phase, revision, content) VALUES (?, ?, ?, ?)`,
		caseName, phase, revision, content,
	)
	if err != nil {
		return nil, fmt.Errorf("history: insert draft: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("history: draft id: %w", err)
	}

	if _, err := s.db.Exec(
		`INSERT INTO drafts_fts (rowid, case_name, phase, content) VALUES (?, ?, ?, ?)`,
		id, caseName, phase, content,
	); err != nil {
		return nil, fmt.Errorf("history: index draft: %w", err)
	}

	return s.getDraft(id)
}

// LatestDraft returns the newest revision for a (case, phase) pair, or nil
// when none exists.
func (s *Store) LatestDraft(caseName, phase string) (*Draft, error) {
	row := s.db.QueryRow(
		`SELECT id, case_name, phase, revision, content, created_at
		 FROM drafts WHERE case_name = ? AND phase = ?
		 ORDER BY revision DESC LIMIT 1`,
		caseName, phase,
	)
	d, err := scanDraft(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return d, err
}

// Drafts returns the most recent draft revisions for a case, newest first.
func (s *Store) Drafts(caseName string, limit int) ([]Draft, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, case_name, phase, revision, content, created_at
		 FROM drafts WHERE case_name = ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		caseName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		var d Draft
		if err := rows.Scan(&d.ID, &d.CaseName, &d.Phase, &d.Revision, &d.Content, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

// SearchDrafts runs an FTS5 query over stored drafts.
func (s *Store) SearchDrafts(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}
	match := ftsQuery(query)
	if match == "" {
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT d.id, d.case_name, d.phase, d.revision, d.content, d.created_at, f.rank
		 FROM drafts_fts f
		 JOIN drafts d ON d.id = f.rowid
		 WHERE drafts_fts MATCH ?
		 ORDER BY f.rank LIMIT ?`,
		match, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: search: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.CaseName, &r.Phase, &r.Revision, &r.Content, &r.CreatedAt, &r.Rank); err != nil {
			return nil, fmt.Errorf("history: scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// SaveReport persists a validation report. draftID may be 0 for ad hoc
// scoring of text that was never stored as a draft.
func (s *Store) SaveReport(caseName string, draftID int64, rep scoring.Report) (*Report, error) {
	feedback, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("history: marshal report: %w", err)
	}

	var draft any
	if draftID > 0 {
		draft = draftID
	}

	res, err := s.db.Exec(
		`INSERT INTO reports (case_name, draft_id, total, strategic, financial, options, execution, deduction, feedback)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		caseName, draft, rep.TotalScore,
		rep.Strategic.Score, rep.Financial.Score, rep.Options.Score, rep.Execution.Score,
		rep.Slop.Deduction, string(feedback),
	)
	if err != nil {
		return nil, fmt.Errorf("history: insert report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("history: report id: %w", err)
	}
	return s.getReport(id)
}

// LatestReport returns the newest validation report for a case, or nil
// when the case has never been scored.
func (s *Store) LatestReport(caseName string) (*Report, error) {
	row := s.db.QueryRow(
		`SELECT id, case_name, COALESCE(draft_id, 0), total, strategic, financial, options, execution, deduction, feedback, created_at
		 FROM reports WHERE case_name = ?
		 ORDER BY id DESC LIMIT 1`,
		caseName,
	)
	r, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return r, err
}

// Reports returns the score trail for a case, newest first.
func (s *Store) Reports(caseName string, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, case_name, COALESCE(draft_id, 0), total, strategic, financial, options, execution, deduction, feedback, created_at
		 FROM reports WHERE case_name = ?
		 ORDER BY id DESC LIMIT ?`,
		caseName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: list reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ID, &r.CaseName, &r.DraftID, &r.Total, &r.Strategic, &r.Financial,
			&r.Options, &r.Execution, &r.Deduction, &r.Feedback, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (s *Store) getDraft(id int64) (*Draft, error) {
	row := s.db.QueryRow(
		`SELECT id, case_name, phase, revision, content, created_at FROM drafts WHERE id = ?`, id)
	return scanDraft(row)
}

func (s *Store) getReport(id int64) (*Report, error) {
	row := s.db.QueryRow(
		`SELECT id, case_name, COALESCE(draft_id, 0), total, strategic, financial, options, execution, deduction, feedback, created_at
		 FROM reports WHERE id = ?`, id)
	return scanReport(row)
}

func scanDraft(row *sql.Row) (*Draft, error) {
	var d Draft
	if err := row.Scan(&d.ID, &d.CaseName, &d.Phase, &d.Revision, &d.Content, &d.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("history: scan draft: %w", err)
	}
	return &d, nil
}

func scanReport(row *sql.Row) (*Report, error) {
	var r Report
	if err := row.Scan(&r.ID, &r.CaseName, &r.DraftID, &r.Total, &r.Strategic, &r.Financial,
		&r.Options, &r.Execution, &r.Deduction, &r.Feedback, &r.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("history: scan report: %w", err)
	}
	return &r, nil
}

// ftsQuery quotes each whitespace-separated term so user input cannot be
// misread as FTS5 syntax.
func ftsQuery(q string) string {
	fields := strings.Fields(q)
	for i, f := range fields {
		fields[i] = `"` + strings.ReplaceAll(f, `"`, ``) + `"`
	}
	return strings.Join(fields, " ")
}
