package attendee

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRosterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRosterRepository(db *pgxpool.Pool) *PostgresRosterRepository {
	return &PostgresRosterRepository{db: db}
}

// --------------------------------------------------
// List candidate attendee names
// --------------------------------------------------
func (r *PostgresRosterRepository) Candidates(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM roster
		ORDER BY created_at, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// --------------------------------------------------
// Seed default names when the roster table is empty
// --------------------------------------------------
func (r *PostgresRosterRepository) Seed(ctx context.Context, names []string) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM roster`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range names {
		query := `
			INSERT INTO roster (name)
			VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`
		if _, err := r.db.Exec(ctx, query, name); err != nil {
			return err
		}
	}

	return nil
}
