package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/db"
	"github.com/edvall/cratrack/internal/domain"
)

// SQLiteToolRepo implements ToolRepo using a SQLite database. Tool
// configurations are stored as a JSON document column.
type SQLiteToolRepo struct {
	db db.DBTX
}

// NewSQLiteToolRepo creates a new SQLiteToolRepo.
func NewSQLiteToolRepo(db db.DBTX) *SQLiteToolRepo {
	return &SQLiteToolRepo{db: db}
}

func (r *SQLiteToolRepo) Save(ctx context.Context, t *domain.Tool) error {
	config, err := marshalDoc(t.Config)
	if err != nil {
		return err
	}
	query := `INSERT INTO user_tools (id, name, type, config, added_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, type = excluded.type, config = excluded.config`
	_, err = r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Type, config, t.AddedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving tool: %w", err)
	}
	return nil
}

func (r *SQLiteToolRepo) List(ctx context.Context) ([]*domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, type, config, added_at FROM user_tools ORDER BY added_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing tools: %w", err)
	}
	defer rows.Close()

	var tools []*domain.Tool
	for rows.Next() {
		var t domain.Tool
		var configDoc, addedAtStr string
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &configDoc, &addedAtStr); err != nil {
			return nil, fmt.Errorf("scanning tool row: %w", err)
		}
		if err := unmarshalDoc(configDoc, &t.Config); err != nil {
			return nil, fmt.Errorf("tool config: %w", err)
		}
		addedAt, err := parseTime(addedAtStr, "tool added_at")
		if err != nil {
			return nil, err
		}
		t.AddedAt = addedAt
		tools = append(tools, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tools: %w", err)
	}
	return tools, nil
}
