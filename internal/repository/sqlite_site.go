package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/edvall/cratrack/internal/db"
	"github.com/edvall/cratrack/internal/domain"
)

const siteColumns = `id, site_number, name, location, notes, best_hotel, best_restaurant, parking_spot, door_code, primary_contact`

// SQLiteSiteRepo implements SiteRepo using a SQLite database.
type SQLiteSiteRepo struct {
	db db.DBTX
}

// NewSQLiteSiteRepo creates a new SQLiteSiteRepo.
func NewSQLiteSiteRepo(db db.DBTX) *SQLiteSiteRepo {
	return &SQLiteSiteRepo{db: db}
}

func (r *SQLiteSiteRepo) Create(ctx context.Context, s *domain.Site) error {
	query := `INSERT INTO sites (` + siteColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Number, s.Name, s.Location, s.Notes,
		s.BestHotel, s.BestRestaurant, s.ParkingSpot, s.DoorCode, s.PrimaryContact,
	)
	if err != nil {
		return fmt.Errorf("inserting site: %w", err)
	}
	return nil
}

func (r *SQLiteSiteRepo) GetByNumber(ctx context.Context, number string) (*domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE site_number = ?`
	row := r.db.QueryRowContext(ctx, query, number)
	s, err := scanSite(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("site %s: %w", number, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteSiteRepo) List(ctx context.Context) ([]*domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites ORDER BY site_number ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	defer rows.Close()

	var sites []*domain.Site
	for rows.Next() {
		s, err := scanSite(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning site row: %w", err)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sites: %w", err)
	}
	return sites, nil
}

func (r *SQLiteSiteRepo) UpdateLogistics(ctx context.Context, s *domain.Site) error {
	query := `UPDATE sites SET name = ?, location = ?, notes = ?, best_hotel = ?,
		best_restaurant = ?, parking_spot = ?, door_code = ?, primary_contact = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name, s.Location, s.Notes,
		s.BestHotel, s.BestRestaurant, s.ParkingSpot, s.DoorCode, s.PrimaryContact,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating site logistics: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("site %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func scanSite(scan func(...any) error) (*domain.Site, error) {
	var s domain.Site
	err := scan(
		&s.ID, &s.Number, &s.Name, &s.Location, &s.Notes,
		&s.BestHotel, &s.BestRestaurant, &s.ParkingSpot, &s.DoorCode, &s.PrimaryContact,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
