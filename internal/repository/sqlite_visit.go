package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/db"
	"github.com/edvall/cratrack/internal/domain"
)

const visitColumns = `id, site_id, type, mode, date, status, checklist, isf, progress_percent`

// SQLiteVisitRepo implements VisitRepo using a SQLite database. Checklist and
// ISF lists live in JSON document columns decoded here, at the boundary.
type SQLiteVisitRepo struct {
	db db.DBTX
}

// NewSQLiteVisitRepo creates a new SQLiteVisitRepo.
func NewSQLiteVisitRepo(db db.DBTX) *SQLiteVisitRepo {
	return &SQLiteVisitRepo{db: db}
}

func (r *SQLiteVisitRepo) Create(ctx context.Context, v *domain.Visit) error {
	checklist, err := marshalDoc(v.Checklist)
	if err != nil {
		return err
	}
	isf, err := marshalDoc(v.Isf)
	if err != nil {
		return err
	}

	query := `INSERT INTO visits (` + visitColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		v.ID,
		v.SiteID,
		string(v.Type),
		string(v.Mode),
		v.Date.UTC().Format(time.RFC3339),
		string(v.Status),
		checklist,
		isf,
		v.ProgressPercent,
	)
	if err != nil {
		return fmt.Errorf("inserting visit: %w", err)
	}
	return nil
}

func (r *SQLiteVisitRepo) GetByID(ctx context.Context, id string) (*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	v, err := scanVisit(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("visit %s: %w", id, ErrNotFound)
	}
	return v, err
}

func (r *SQLiteVisitRepo) ListBySite(ctx context.Context, siteID string) ([]*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE site_id = ? ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("listing visits by site: %w", err)
	}
	defer rows.Close()
	return scanVisits(rows)
}

func (r *SQLiteVisitRepo) ListUpcoming(ctx context.Context) ([]*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE status != 'completed' ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming visits: %w", err)
	}
	defer rows.Close()
	return scanVisits(rows)
}

func (r *SQLiteVisitRepo) ListCompletedBetween(ctx context.Context, from, to time.Time) ([]*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits
		WHERE status = 'completed' AND date >= ? AND date <= ? ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, query,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing completed visits: %w", err)
	}
	defer rows.Close()
	return scanVisits(rows)
}

func (r *SQLiteVisitRepo) CountActiveSitesBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(DISTINCT site_id) FROM visits WHERE date >= ? AND date <= ?`
	var count int
	err := r.db.QueryRowContext(ctx, query,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting active sites: %w", err)
	}
	return count, nil
}

func (r *SQLiteVisitRepo) UpdateChecklist(ctx context.Context, id string, items []domain.ChecklistItem, percent int, status domain.VisitStatus) error {
	checklist, err := marshalDoc(items)
	if err != nil {
		return err
	}
	query := `UPDATE visits SET checklist = ?, progress_percent = ?, status = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, checklist, percent, string(status), id)
	if err != nil {
		return fmt.Errorf("updating checklist: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteVisitRepo) UpdateIsf(ctx context.Context, id string, items []domain.IsfItem) error {
	isf, err := marshalDoc(items)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `UPDATE visits SET isf = ? WHERE id = ?`, isf, id)
	if err != nil {
		return fmt.Errorf("updating isf: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteVisitRepo) SetStatus(ctx context.Context, id string, status domain.VisitStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE visits SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("setting visit status: %w", err)
	}
	return requireRow(res, id)
}

// requireRow turns a zero-row update into ErrNotFound so writes against
// missing visits are distinguishable from storage failures.
func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("visit %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanVisit(scan func(...any) error) (*domain.Visit, error) {
	var v domain.Visit
	var typeStr, modeStr, dateStr, statusStr, checklistDoc, isfDoc string

	err := scan(
		&v.ID, &v.SiteID, &typeStr, &modeStr, &dateStr,
		&statusStr, &checklistDoc, &isfDoc, &v.ProgressPercent,
	)
	if err != nil {
		return nil, err
	}

	v.Type = domain.VisitType(typeStr)
	v.Mode = domain.VisitMode(modeStr)
	v.Status = domain.VisitStatus(statusStr)

	if v.Date, err = parseTime(dateStr, "visit date"); err != nil {
		return nil, err
	}
	if err := unmarshalDoc(checklistDoc, &v.Checklist); err != nil {
		return nil, fmt.Errorf("visit checklist: %w", err)
	}
	if err := unmarshalDoc(isfDoc, &v.Isf); err != nil {
		return nil, fmt.Errorf("visit isf: %w", err)
	}
	return &v, nil
}

func scanVisits(rows *sql.Rows) ([]*domain.Visit, error) {
	var visits []*domain.Visit
	for rows.Next() {
		v, err := scanVisit(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning visit row: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating visits: %w", err)
	}
	return visits, nil
}
