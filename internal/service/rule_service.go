package service

import (
	"context"
	"fmt"
	"log"

	"dataquality/internal/domain"
	"dataquality/internal/port"
	"dataquality/internal/validator"
)

// RuleService administers the live rule table. Every change is visible to the next
// validation, optionally persisted as an override and followed by a response cache purge.
type RuleService interface {
	List() []domain.ValidationRule
	ListByClientType(clientType domain.ClientType) []domain.ValidationRule
	Get(id string) (*domain.ValidationRule, error)
	Update(ctx context.Context, id string, upd domain.RuleUpdate, actor string) (*domain.ValidationRule, error)
	Add(ctx context.Context, rule domain.ValidationRule, actor string) (*domain.ValidationRule, error)
	Delete(ctx context.Context, id, actor string) error
	Toggle(ctx context.Context, id, actor string) (*domain.ValidationRule, error)
	// Restore replays persisted overrides onto the table and returns how many applied.
	Restore(ctx context.Context) (int, error)
	Version() uint64
}

type ruleService struct {
	table       *validator.RuleTable
	overrides   port.RuleOverrideRepository
	cache       port.ResponseCache
	cachePrefix string
}

// NewRuleService creates a new RuleService. overrides and cache may be nil.
func NewRuleService(table *validator.RuleTable, overrides port.RuleOverrideRepository, cache port.ResponseCache, cachePrefix string) RuleService {
	return &ruleService{table: table, overrides: overrides, cache: cache, cachePrefix: cachePrefix}
}

func (s *ruleService) List() []domain.ValidationRule {
	return s.table.Rules()
}

func (s *ruleService) ListByClientType(clientType domain.ClientType) []domain.ValidationRule {
	return s.table.RulesByClientType(clientType)
}

func (s *ruleService) Get(id string) (*domain.ValidationRule, error) {
	rule, ok := s.table.Rule(id)
	if !ok {
		return nil, domain.ErrValidationRuleNotFound
	}
	return &rule, nil
}

func (s *ruleService) Version() uint64 {
	return s.table.Version()
}

func (s *ruleService) Update(ctx context.Context, id string, upd domain.RuleUpdate, actor string) (*domain.ValidationRule, error) {
	if _, ok := s.table.Rule(id); !ok {
		return nil, domain.ErrValidationRuleNotFound
	}
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	found, err := s.table.UpdateRule(id, upd)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrValidationRuleNotFound
	}
	return s.afterChange(ctx, id, actor)
}

func (s *ruleService) Toggle(ctx context.Context, id, actor string) (*domain.ValidationRule, error) {
	if !s.table.ToggleRule(id) {
		return nil, domain.ErrValidationRuleNotFound
	}
	return s.afterChange(ctx, id, actor)
}

func (s *ruleService) Add(ctx context.Context, rule domain.ValidationRule, actor string) (*domain.ValidationRule, error) {
	if err := s.table.AddRule(rule); err != nil {
		return nil, err
	}
	return s.afterChange(ctx, rule.ID, actor)
}

func (s *ruleService) Delete(ctx context.Context, id, actor string) error {
	if !s.table.DeleteRule(id) {
		return domain.ErrValidationRuleNotFound
	}
	s.persist(ctx, &domain.RuleOverride{RuleID: id, Deleted: true, UpdatedBy: actor})
	s.purgeCache(ctx)
	return nil
}

func (s *ruleService) Restore(ctx context.Context) (int, error) {
	if s.overrides == nil {
		return 0, nil
	}
	overrides, err := s.overrides.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("ruleService.Restore: %w", err)
	}

	applied := 0
	for i := range overrides {
		o := &overrides[i]
		switch {
		case o.Deleted:
			if s.table.DeleteRule(o.RuleID) {
				applied++
			}
		case o.Rule == nil:
			log.Printf("ruleService.Restore: override %s has no rule definition, skipped", o.RuleID)
		default:
			if _, exists := s.table.Rule(o.RuleID); exists {
				if _, err := s.table.UpdateRule(o.RuleID, overrideUpdate(o.Rule)); err != nil {
					log.Printf("ruleService.Restore: override %s not applied: %v", o.RuleID, err)
					continue
				}
				applied++
				continue
			}
			if err := s.table.AddRule(*o.Rule); err != nil {
				log.Printf("ruleService.Restore: rule %s not restored: %v", o.RuleID, err)
				continue
			}
			applied++
		}
	}
	return applied, nil
}

// overrideUpdate turns a persisted rule into an update of its mutable fields.
func overrideUpdate(r *domain.ValidationRule) domain.RuleUpdate {
	enabled, severity, message := r.Enabled, r.Severity, r.Message
	params := r.Params.Clone()
	return domain.RuleUpdate{Enabled: &enabled, Severity: &severity, Params: &params, Message: &message}
}

func (s *ruleService) afterChange(ctx context.Context, id, actor string) (*domain.ValidationRule, error) {
	rule, ok := s.table.Rule(id)
	if !ok {
		// Deleted concurrently.
		return nil, domain.ErrValidationRuleNotFound
	}
	snapshot := rule.Clone()
	s.persist(ctx, &domain.RuleOverride{RuleID: id, Rule: &snapshot, UpdatedBy: actor})
	s.purgeCache(ctx)
	return &rule, nil
}

// persist records the override. The in-memory table stays authoritative, so a storage
// failure is logged rather than undoing the change.
func (s *ruleService) persist(ctx context.Context, o *domain.RuleOverride) {
	if s.overrides == nil {
		return
	}
	if err := s.overrides.Upsert(ctx, o); err != nil {
		log.Printf("ruleService: persisting override for %s: %v", o.RuleID, err)
	}
}

func (s *ruleService) purgeCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	n, err := s.cache.Clear(ctx, s.cachePrefix)
	if err != nil {
		log.Printf("ruleService: clearing response cache: %v", err)
		return
	}
	if n > 0 {
		log.Printf("ruleService: cleared %d cached responses after rule change", n)
	}
}
