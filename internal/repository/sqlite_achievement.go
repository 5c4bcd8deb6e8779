package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/db"
	"github.com/edvall/cratrack/internal/domain"
)

const achievementColumns = `id, date, project_id, category, title, impact, review_ready`

// SQLiteAchievementRepo implements AchievementRepo using a SQLite database.
type SQLiteAchievementRepo struct {
	db db.DBTX
}

// NewSQLiteAchievementRepo creates a new SQLiteAchievementRepo.
func NewSQLiteAchievementRepo(db db.DBTX) *SQLiteAchievementRepo {
	return &SQLiteAchievementRepo{db: db}
}

func (r *SQLiteAchievementRepo) Create(ctx context.Context, a *domain.SiteAchievement) error {
	query := `INSERT INTO site_achievements (` + achievementColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Date.UTC().Format(time.RFC3339),
		a.ProjectID,
		a.Category,
		a.Title,
		a.Impact,
		boolToInt(a.ReviewReady),
	)
	if err != nil {
		return fmt.Errorf("inserting achievement: %w", err)
	}
	return nil
}

func (r *SQLiteAchievementRepo) List(ctx context.Context) ([]*domain.SiteAchievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM site_achievements ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	defer rows.Close()
	return scanAchievements(rows.Next, rows.Scan, rows.Err)
}

func (r *SQLiteAchievementRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.SiteAchievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM site_achievements
		WHERE date >= ? AND date <= ? ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, query,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing achievements in range: %w", err)
	}
	defer rows.Close()
	return scanAchievements(rows.Next, rows.Scan, rows.Err)
}

func scanAchievements(next func() bool, scan func(...any) error, rowsErr func() error) ([]*domain.SiteAchievement, error) {
	var achievements []*domain.SiteAchievement
	for next() {
		var a domain.SiteAchievement
		var dateStr string
		var reviewReady int
		if err := scan(&a.ID, &dateStr, &a.ProjectID, &a.Category, &a.Title, &a.Impact, &reviewReady); err != nil {
			return nil, fmt.Errorf("scanning achievement row: %w", err)
		}
		date, err := parseTime(dateStr, "achievement date")
		if err != nil {
			return nil, err
		}
		a.Date = date
		a.ReviewReady = reviewReady != 0
		achievements = append(achievements, &a)
	}
	if err := rowsErr(); err != nil {
		return nil, fmt.Errorf("iterating achievements: %w", err)
	}
	return achievements, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
