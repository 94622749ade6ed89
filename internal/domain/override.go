package domain

import "time"

// RuleOverride is the persisted state of an administrative change to one rule. Rule holds
// the rule as it stood after the change; it is nil when the rule was deleted.
type RuleOverride struct {
	RuleID    string          `db:"rule_id" json:"ruleId"`
	Rule      *ValidationRule `db:"-" json:"rule,omitempty"`
	Deleted   bool            `db:"deleted" json:"deleted"`
	UpdatedBy string          `db:"updated_by" json:"updatedBy"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// CacheStats describes the response cache.
type CacheStats struct {
	Backend   string `json:"backend"`
	Available bool   `json:"available"`
	Keys      int    `json:"keys"`
	Capacity  int    `json:"capacity,omitempty"`
	TTL       string `json:"ttl"`
}
