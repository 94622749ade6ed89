package client

import (
	"dataquality/internal/domain"
)

// Rule categories.
const (
	CategoryIdentification = "Identification"
	CategoryClassification = "Classification"
	CategoryRegulation     = "Regulation"
	CategoryManagement     = "Management"
	CategoryFormat         = "Format"
	CategoryTemporal       = "Temporal Consistency"
	CategoryDocuments      = "Document Validity"
)

const earliestDate = "1915-01-01"

var forbiddenSequences = []string{"123", "XXX", "000"}

func required(id, field, name, message string, scope domain.RuleScope, sev domain.ValidationSeverity, category string) domain.ValidationRule {
	return domain.ValidationRule{
		ID: id, Name: name, Field: field, Scope: scope,
		Kind: domain.RuleKindRequired, Message: message,
		Severity: sev, Enabled: true, Category: category,
	}
}

func datePresent(id, field, name, message string, scope domain.RuleScope, category string) domain.ValidationRule {
	return domain.ValidationRule{
		ID: id, Name: name, Field: field, Scope: scope,
		Kind: domain.RuleKindDatePresent, Message: message,
		Severity: domain.ValidationSeverityError, Enabled: true, Category: category,
	}
}

func custom(id, field, name, message, predicate string, params domain.RuleParams, scope domain.RuleScope, category string) domain.ValidationRule {
	return domain.ValidationRule{
		ID: id, Name: name, Field: field, Scope: scope,
		Kind: domain.RuleKindCustom, Predicate: predicate, Params: params,
		Message: message, Severity: domain.ValidationSeverityWarning,
		Enabled: true, Category: category,
	}
}

// DefaultRules returns the built-in rule table in evaluation order: rules common to all
// client types, then individual, corporate and institutional rules.
func DefaultRules() []domain.ValidationRule {
	rules := CommonRules()
	rules = append(rules, IndividualRules()...)
	rules = append(rules, LegalEntityRules(domain.ClientTypeCorporate)...)
	rules = append(rules, LegalEntityRules(domain.ClientTypeInstitutional)...)
	return rules
}

// CommonRules apply to every record regardless of tcli.
func CommonRules() []domain.ValidationRule {
	all := domain.RuleScopeAll
	return []domain.ValidationRule{
		required("ALL_CODE_CLIENT_REQUIRED", "cli", "Client code required",
			"The client code is required", all, domain.ValidationSeverityError, CategoryIdentification),
		{
			ID: "ALL_TYPE_CLIENT_VALID", Name: "Valid client type", Field: "tcli", Scope: all,
			Kind:     domain.RuleKindEnum,
			Params:   domain.RuleParams{Allowed: []string{"1", "2", "3"}},
			Message:  "The client type must be 1 (individual), 2 (corporate) or 3 (institutional)",
			Severity: domain.ValidationSeverityError, Enabled: true, Category: CategoryClassification,
		},
		required("ALL_CODE_AGENCE_REQUIRED", "age", "Branch code required",
			"The branch code is required", all, domain.ValidationSeverityWarning, CategoryManagement),
	}
}

// IndividualRules apply to tcli 1.
func IndividualRules() []domain.ValidationRule {
	pp := domain.RuleScope(domain.ClientTypeIndividual)
	errSev := domain.ValidationSeverityError
	return []domain.ValidationRule{
		required("PP_NID_REQUIRED", "nid", "National ID required - individuals",
			"The identity document number is required", pp, errSev, CategoryIdentification),
		required("PP_NOM_MERE_REQUIRED", "nmer", "Mother's name required - individuals",
			"The mother's name is required for individual clients", pp, errSev, CategoryIdentification),
		datePresent("PP_DATE_NAISSANCE_REQUIRED", "dna", "Birth date required - individuals",
			"The birth date is required", pp, CategoryIdentification),
		required("PP_NATIONALITE_REQUIRED", "nat", "Nationality required - individuals",
			"The nationality is required", pp, errSev, CategoryIdentification),
		required("PP_NOM_REQUIRED", "nom", "Last name required - individuals",
			"The last name is required", pp, errSev, CategoryIdentification),
		required("PP_PRENOM_REQUIRED", "pre", "First name required - individuals",
			"The first name is required", pp, errSev, CategoryIdentification),
		required("PP_SEXE_REQUIRED", "sext", "Sex required - individuals",
			"The sex code is required", pp, errSev, CategoryIdentification),
		{
			ID: "PP_SEXE_VALID", Name: "Valid sex code - individuals", Field: "sext", Scope: pp,
			Kind:     domain.RuleKindEnum,
			Params:   domain.RuleParams{Allowed: []string{"M", "F"}},
			Message:  "The sex code must be M or F",
			Severity: errSev, Enabled: true, Category: CategoryIdentification,
		},
		required("PP_VILLE_NAISSANCE_REQUIRED", "viln", "Birth city required - individuals",
			"The birth city is required", pp, errSev, CategoryIdentification),
		required("PP_PAYS_NAISSANCE_REQUIRED", "payn", "Country of origin required - individuals",
			"The country of origin is required", pp, errSev, CategoryIdentification),
		required("PP_TYPE_PIECE_IDENTITE_REQUIRED", "tid", "ID document type required - individuals",
			"The identity document type is required", pp, errSev, CategoryIdentification),

		custom("NID_FORMAT_CHECK", "nid", "Valid national ID format",
			`The identity document number must hold at least 8 alphanumeric characters, without "123", "XXX" or "000"`,
			PredicateFormat, domain.RuleParams{MinLength: 8, Pattern: `^[0-9A-Za-z]+$`, Forbidden: forbiddenSequences},
			pp, CategoryFormat),
		custom("PP_NOM_FORMAT", "nom", "Last name is not a placeholder",
			"The last name cannot be made only of X nor contain \"123\" or \"XXX\"",
			PredicateNotPlaceholder, domain.RuleParams{Forbidden: []string{"123", "XXX"}}, pp, CategoryFormat),
		custom("PP_PRENOM_FORMAT", "pre", "First name is not a placeholder",
			"The first name cannot be made only of X nor contain \"123\" or \"XXX\"",
			PredicateNotPlaceholder, domain.RuleParams{Forbidden: []string{"123", "XXX"}}, pp, CategoryFormat),
		custom("DNA_MIN_YEAR_1915", "dna", "Birth date after 1915",
			"The birth date must be between 1915-01-01 and today",
			PredicateDateRange, domain.RuleParams{MinDate: earliestDate, MaxDate: domain.DateToday}, pp, CategoryTemporal),
		custom("VID_VALIDITY_CHECK", "vid", "ID document not expired",
			"The identity document expiry date has passed",
			PredicateNotExpired, domain.RuleParams{}, pp, CategoryDocuments),
	}
}

// LegalEntityRules apply to corporate (tcli 2) or institutional (tcli 3) clients. Both
// share the required fields; corporate registry numbers also carry the MA prefix.
func LegalEntityRules(t domain.ClientType) []domain.ValidationRule {
	scope := domain.RuleScope(t)
	prefix, label := "ENT", "companies"
	nrcParams := domain.RuleParams{Forbidden: forbiddenSequences}
	nrcMessage := `The trade registry number cannot contain "123", "XXX" or "000"`
	if t == domain.ClientTypeInstitutional {
		prefix, label = "INST", "institutions"
	} else {
		nrcParams.Prefix = "MA"
		nrcMessage = `The trade registry number must start with "MA" and cannot contain "123", "XXX" or "000"`
	}
	errSev := domain.ValidationSeverityError

	rules := []domain.ValidationRule{
		required(prefix+"_RAISON_SOCIALE_REQUIRED", "rso", "Corporate name required - "+label,
			"The corporate name is required", scope, errSev, CategoryIdentification),
		required(prefix+"_NRC_REQUIRED", "nrc", "Trade registry number required - "+label,
			"The trade registry number is required", scope, errSev, CategoryIdentification),
		datePresent(prefix+"_DATE_CREATION_REQUIRED", "datc", "Incorporation date required - "+label,
			"The incorporation date is required", scope, CategoryIdentification),
		required(prefix+"_SECTEUR_ACTIVITE_REQUIRED", "sec", "Economic sector required - "+label,
			"The economic sector is required", scope, errSev, CategoryClassification),
		required(prefix+"_FORME_JURIDIQUE_REQUIRED", "fju", "Legal form required - "+label,
			"The legal form is required", scope, errSev, CategoryClassification),
		required(prefix+"_CATEGORIE_BC_REQUIRED", "catn", "Central bank category required - "+label,
			"The central bank activity category is required", scope, errSev, CategoryRegulation),
		required(prefix+"_LIEN_BANQUE_REQUIRED", "lienbq", "Bank relationship required - "+label,
			"The relationship with the bank is required", scope, errSev, CategoryRegulation),

		custom(prefix+"_RAISON_SOCIALE_FORMAT", "rso", "Corporate name is not a placeholder - "+label,
			"The corporate name cannot be made only of X nor contain \"123\" or \"XXX\"",
			PredicateNotPlaceholder, domain.RuleParams{Forbidden: []string{"123", "XXX"}}, scope, CategoryFormat),
		custom(prefix+"_NRC_FORMAT", "nrc", "Valid trade registry number - "+label,
			nrcMessage, PredicateFormat, nrcParams, scope, CategoryFormat),
		custom(prefix+"_DATE_CREATION_RANGE", "datc", "Incorporation date after 1915 - "+label,
			"The incorporation date must be between 1915-01-01 and today",
			PredicateDateRange, domain.RuleParams{MinDate: earliestDate, MaxDate: domain.DateToday}, scope, CategoryTemporal),
	}
	if t == domain.ClientTypeCorporate {
		rules = append(rules, custom("ENT_SIGLE_FORMAT", "sig", "Acronym format - companies",
			"The acronym may only hold upper-case letters, digits, dashes, dots and spaces (20 max)",
			PredicateFormat, domain.RuleParams{MaxLength: 20, Pattern: `^[A-Z0-9\-.\s]+$`}, scope, CategoryFormat))
	}
	return rules
}
