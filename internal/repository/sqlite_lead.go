package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/db"
	"github.com/edvall/cratrack/internal/domain"
)

// SQLiteLeadRepo implements LeadRepo using a SQLite database.
type SQLiteLeadRepo struct {
	db db.DBTX
}

// NewSQLiteLeadRepo creates a new SQLiteLeadRepo.
func NewSQLiteLeadRepo(db db.DBTX) *SQLiteLeadRepo {
	return &SQLiteLeadRepo{db: db}
}

func (r *SQLiteLeadRepo) Create(ctx context.Context, l *domain.Lead) error {
	query := `INSERT INTO leads (id, name, email, captured_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.Name, l.Email, l.CapturedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}
	return nil
}
