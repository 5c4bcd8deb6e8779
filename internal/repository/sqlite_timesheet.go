package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/db"
	"github.com/edvall/cratrack/internal/domain"
)

const timesheetColumns = `id, date, project_id, activity_type, hours, achievement_id, notes`

// SQLiteTimesheetRepo implements TimesheetRepo using a SQLite database.
type SQLiteTimesheetRepo struct {
	db db.DBTX
}

// NewSQLiteTimesheetRepo creates a new SQLiteTimesheetRepo.
func NewSQLiteTimesheetRepo(db db.DBTX) *SQLiteTimesheetRepo {
	return &SQLiteTimesheetRepo{db: db}
}

func (r *SQLiteTimesheetRepo) Create(ctx context.Context, e *domain.TimesheetEntry) error {
	query := `INSERT INTO timesheet_entries (` + timesheetColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Date.UTC().Format(time.RFC3339),
		e.ProjectID,
		e.ActivityType,
		e.Hours,
		nullableString(e.AchievementID),
		e.Notes,
	)
	if err != nil {
		return fmt.Errorf("inserting timesheet entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimesheetRepo) List(ctx context.Context) ([]*domain.TimesheetEntry, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheet_entries ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimesheetEntry
	for rows.Next() {
		var e domain.TimesheetEntry
		var dateStr string
		var achievementID sql.NullString
		if err := rows.Scan(&e.ID, &dateStr, &e.ProjectID, &e.ActivityType, &e.Hours, &achievementID, &e.Notes); err != nil {
			return nil, fmt.Errorf("scanning timesheet row: %w", err)
		}
		date, err := parseTime(dateStr, "timesheet date")
		if err != nil {
			return nil, err
		}
		e.Date = date
		e.AchievementID = stringOrEmpty(achievementID)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timesheet entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteTimesheetRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM timesheet_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting timesheet entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("timesheet entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTimesheetRepo) SumHoursBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(hours), 0) FROM timesheet_entries WHERE date >= ? AND date <= ?`
	var total float64
	err := r.db.QueryRowContext(ctx, query,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing timesheet hours: %w", err)
	}
	return total, nil
}
