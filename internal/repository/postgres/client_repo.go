package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"dataquality/internal/domain"
	"dataquality/internal/port"
)

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository over the bkcli replica.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

// Empty filter values match every row.
const clientFilterClause = `($1 = '' OR tcli = $1) AND ($2 = '' OR age = $2)`

const clientStatsQuery = `SELECT
	COUNT(*) AS total,
	COUNT(CASE WHEN tcli = '1' THEN 1 END) AS individual,
	COUNT(CASE WHEN tcli = '2' THEN 1 END) AS corporate,
	COUNT(CASE WHEN tcli = '3' THEN 1 END) AS institutional
FROM bkcli`

func (r *clientRepo) List(ctx context.Context, filter domain.ClientFilter) ([]domain.ClientRecord, int, error) {
	ct, agency := string(filter.ClientType), filter.Agency

	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM bkcli WHERE "+clientFilterClause, ct, agency); err != nil {
		return nil, 0, fmt.Errorf("clientRepo.List count: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx,
		"SELECT * FROM bkcli WHERE "+clientFilterClause+" ORDER BY cli LIMIT $3 OFFSET $4",
		ct, agency, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("clientRepo.List: %w", err)
	}
	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("clientRepo.List: %w", err)
	}
	return records, total, nil
}

func (r *clientRepo) GetByCLI(ctx context.Context, cli string) (domain.ClientRecord, error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM bkcli WHERE cli = $1", cli)
	rec := make(map[string]any)
	if err := row.MapScan(rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByCLI: %w", err)
	}
	return domain.ClientRecord(rec), nil
}

func (r *clientRepo) Stats(ctx context.Context) (*domain.ClientStats, error) {
	var stats domain.ClientStats
	if err := r.db.GetContext(ctx, &stats, clientStatsQuery); err != nil {
		return nil, fmt.Errorf("clientRepo.Stats: %w", err)
	}
	return &stats, nil
}

func (r *clientRepo) Scan(ctx context.Context, clientType domain.ClientType, chunkSize int, fn func([]domain.ClientRecord) error) error {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	after := ""
	for {
		rows, err := r.db.QueryxContext(ctx,
			"SELECT * FROM bkcli WHERE tcli = $1 AND cli > $2 ORDER BY cli LIMIT $3",
			string(clientType), after, chunkSize)
		if err != nil {
			return fmt.Errorf("clientRepo.Scan: %w", err)
		}
		chunk, err := scanRecords(rows)
		if err != nil {
			return fmt.Errorf("clientRepo.Scan: %w", err)
		}
		if len(chunk) == 0 {
			return nil
		}
		if err := fn(chunk); err != nil {
			return err
		}
		if len(chunk) < chunkSize {
			return nil
		}
		after = chunk[len(chunk)-1].CLI()
	}
}

func (r *clientRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func scanRecords(rows *sqlx.Rows) ([]domain.ClientRecord, error) {
	defer rows.Close()
	var out []domain.ClientRecord
	for rows.Next() {
		rec := make(map[string]any)
		if err := rows.MapScan(rec); err != nil {
			return nil, err
		}
		out = append(out, domain.ClientRecord(rec))
	}
	return out, rows.Err()
}
