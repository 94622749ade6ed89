package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"dataquality/internal/domain"
	"dataquality/internal/port"
)

type ruleOverrideRepo struct {
	db *sqlx.DB
}

// NewRuleOverrideRepo creates a new PostgreSQL-backed RuleOverrideRepository.
func NewRuleOverrideRepo(db *sqlx.DB) port.RuleOverrideRepository {
	return &ruleOverrideRepo{db: db}
}

type ruleOverrideRow struct {
	RuleID    string    `db:"rule_id"`
	Rule      []byte    `db:"rule"`
	Deleted   bool      `db:"deleted"`
	UpdatedBy string    `db:"updated_by"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *ruleOverrideRepo) Upsert(ctx context.Context, o *domain.RuleOverride) error {
	o.UpdatedAt = time.Now().UTC()

	var ruleJSON []byte
	if o.Rule != nil {
		var err error
		if ruleJSON, err = json.Marshal(o.Rule); err != nil {
			return fmt.Errorf("ruleOverrideRepo.Upsert marshal: %w", err)
		}
	}

	query := `INSERT INTO validation_rule_overrides (rule_id, rule, deleted, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (rule_id) DO UPDATE SET
			rule = EXCLUDED.rule,
			deleted = EXCLUDED.deleted,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, o.RuleID, ruleJSON, o.Deleted, o.UpdatedBy, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ruleOverrideRepo.Upsert: %w", err)
	}
	return nil
}

func (r *ruleOverrideRepo) List(ctx context.Context) ([]domain.RuleOverride, error) {
	var rows []ruleOverrideRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT rule_id, rule, deleted, updated_by, updated_at FROM validation_rule_overrides ORDER BY updated_at, rule_id"); err != nil {
		return nil, fmt.Errorf("ruleOverrideRepo.List: %w", err)
	}

	out := make([]domain.RuleOverride, 0, len(rows))
	for _, row := range rows {
		o := domain.RuleOverride{
			RuleID:    row.RuleID,
			Deleted:   row.Deleted,
			UpdatedBy: row.UpdatedBy,
			UpdatedAt: row.UpdatedAt,
		}
		if len(row.Rule) > 0 {
			var rule domain.ValidationRule
			if err := json.Unmarshal(row.Rule, &rule); err != nil {
				return nil, fmt.Errorf("ruleOverrideRepo.List rule %s: %w", row.RuleID, err)
			}
			o.Rule = &rule
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *ruleOverrideRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM validation_rule_overrides"); err != nil {
		return fmt.Errorf("ruleOverrideRepo.DeleteAll: %w", err)
	}
	return nil
}
