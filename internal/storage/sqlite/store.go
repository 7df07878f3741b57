// Package sqlite provides a SQLite-backed inquiry store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"modernwebagency.com/internal/models"
	"modernwebagency.com/internal/storage"
	"modernwebagency.com/internal/storage/sqlite/migrations"
)

// Store persists inquiries in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite inquiry store and applies embedded migrations.
// The special path ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file::memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path)
	}
	dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateInquiry inserts one inquiry. A zero CreatedAt is set to now.
func (s *Store) CreateInquiry(ctx context.Context, inquiry models.Inquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := strings.TrimSpace(inquiry.ID)
	if id == "" {
		return fmt.Errorf("inquiry id is required")
	}
	createdAt := inquiry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	f := inquiry.Form
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO inquiries (
		   id, name, email, company, project_type, budget, message, timeline, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		f.Name,
		f.Email,
		f.Company,
		string(f.ProjectType),
		string(f.Budget),
		f.Message,
		f.Timeline,
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

// GetInquiry returns one inquiry by id.
func (s *Store) GetInquiry(ctx context.Context, id string) (models.Inquiry, error) {
	if err := ctx.Err(); err != nil {
		return models.Inquiry{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Inquiry{}, fmt.Errorf("inquiry id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, email, company, project_type, budget, message, timeline, created_at
		   FROM inquiries
		  WHERE id = ?`,
		id,
	)
	inquiry, err := scanInquiry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Inquiry{}, storage.ErrNotFound
		}
		return models.Inquiry{}, fmt.Errorf("get inquiry: %w", err)
	}
	return inquiry, nil
}

// ListInquiries returns one page of inquiries, newest first. The token is
// the NextPageToken of the previous page.
func (s *Store) ListInquiries(ctx context.Context, pageSize int, pageToken string) (storage.InquiryPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.InquiryPage{}, err
	}
	if pageSize <= 0 {
		return storage.InquiryPage{}, fmt.Errorf("page size must be greater than zero")
	}

	var (
		rows *sql.Rows
		err  error
	)
	pageToken = strings.TrimSpace(pageToken)
	if pageToken == "" {
		rows, err = s.sqlDB.QueryContext(
			ctx,
			`SELECT id, name, email, company, project_type, budget, message, timeline, created_at
			   FROM inquiries
			  ORDER BY created_at DESC, id DESC
			  LIMIT ?`,
			pageSize+1,
		)
	} else {
		createdAt, id, perr := parsePageToken(pageToken)
		if perr != nil {
			return storage.InquiryPage{}, perr
		}
		rows, err = s.sqlDB.QueryContext(
			ctx,
			`SELECT id, name, email, company, project_type, budget, message, timeline, created_at
			   FROM inquiries
			  WHERE created_at < ? OR (created_at = ? AND id < ?)
			  ORDER BY created_at DESC, id DESC
			  LIMIT ?`,
			createdAt, createdAt, id,
			pageSize+1,
		)
	}
	if err != nil {
		return storage.InquiryPage{}, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	page := storage.InquiryPage{Inquiries: make([]models.Inquiry, 0, pageSize)}
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return storage.InquiryPage{}, fmt.Errorf("list inquiries: %w", err)
		}
		page.Inquiries = append(page.Inquiries, inquiry)
	}
	if err := rows.Err(); err != nil {
		return storage.InquiryPage{}, fmt.Errorf("list inquiries: %w", err)
	}
	if len(page.Inquiries) > pageSize {
		last := page.Inquiries[pageSize-1]
		page.NextPageToken = pageTokenFor(last)
		page.Inquiries = page.Inquiries[:pageSize]
	}
	return page, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInquiry(row rowScanner) (models.Inquiry, error) {
	var (
		inquiry     models.Inquiry
		projectType string
		budget      string
		createdAt   int64
	)
	f := &inquiry.Form
	if err := row.Scan(
		&inquiry.ID,
		&f.Name,
		&f.Email,
		&f.Company,
		&projectType,
		&budget,
		&f.Message,
		&f.Timeline,
		&createdAt,
	); err != nil {
		return models.Inquiry{}, err
	}
	f.ProjectType = models.ProjectCategory(projectType)
	f.Budget = models.BudgetRange(budget)
	inquiry.CreatedAt = fromMillis(createdAt)
	return inquiry, nil
}

func pageTokenFor(inquiry models.Inquiry) string {
	return strconv.FormatInt(toMillis(inquiry.CreatedAt), 10) + "_" + inquiry.ID
}

func parsePageToken(token string) (int64, string, error) {
	millis, id, ok := strings.Cut(token, "_")
	if !ok || id == "" {
		return 0, "", fmt.Errorf("invalid page token %q", token)
	}
	createdAt, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid page token %q: %w", token, err)
	}
	return createdAt, id, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.InquiryStore = (*Store)(nil)
