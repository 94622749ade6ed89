package client

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dataquality/internal/domain"
	"dataquality/internal/validator"
)

// rulesFile is the on-disk layout of a rule table seed:
//
//	rules:
//	  - id: PP_NID_REQUIRED
//	    field: nid
//	    client_type: "1"
//	    rule_type: required
//	    severity: error
//	    error_message: The identity document number is required
type rulesFile struct {
	Rules []fileRule `yaml:"rules"`
}

// fileRule defaults enabled to true when the key is omitted.
type fileRule domain.ValidationRule

func (r *fileRule) UnmarshalYAML(n *yaml.Node) error {
	type plain fileRule
	p := plain{Enabled: true}
	if err := n.Decode(&p); err != nil {
		return err
	}
	*r = fileRule(p)
	return nil
}

// LoadRulesFile reads a YAML rule table seed. The rules are returned in file order and are
// validated when the table is built.
func LoadRulesFile(path string) ([]domain.ValidationRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("client.LoadRulesFile: %w", err)
	}
	defer f.Close()
	return DecodeRules(f)
}

// LoadTable builds the rule table from the seed file at path, or from DefaultRules when
// path is empty.
func LoadTable(path string) (*validator.RuleTable, error) {
	rules := DefaultRules()
	if path != "" {
		var err error
		if rules, err = LoadRulesFile(path); err != nil {
			return nil, err
		}
	}
	return validator.NewRuleTable(rules)
}

// DecodeRules parses a YAML rule table seed from r.
func DecodeRules(r io.Reader) ([]domain.ValidationRule, error) {
	var doc rulesFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("client.DecodeRules: %w", err)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("client.DecodeRules: %w: no rules defined", domain.ErrInvalidRule)
	}
	out := make([]domain.ValidationRule, len(doc.Rules))
	for i := range doc.Rules {
		out[i] = domain.ValidationRule(doc.Rules[i])
	}
	return out, nil
}

// EncodeRules writes rules in the seed file layout.
func EncodeRules(w io.Writer, rules []domain.ValidationRule) error {
	doc := rulesFile{Rules: make([]fileRule, len(rules))}
	for i := range rules {
		doc.Rules[i] = fileRule(rules[i])
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("client.EncodeRules: %w", err)
	}
	return enc.Close()
}
