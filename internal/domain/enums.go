package domain

// ClientType is the tcli discriminant of a core-banking client record.
type ClientType string

const (
	ClientTypeIndividual    ClientType = "1"
	ClientTypeCorporate     ClientType = "2"
	ClientTypeInstitutional ClientType = "3"
)

// ClientTypes lists the known client types in tcli order.
var ClientTypes = []ClientType{ClientTypeIndividual, ClientTypeCorporate, ClientTypeInstitutional}

// Valid reports whether t is one of the known client types.
func (t ClientType) Valid() bool {
	switch t {
	case ClientTypeIndividual, ClientTypeCorporate, ClientTypeInstitutional:
		return true
	}
	return false
}

// Label returns a human-readable name for the client type.
func (t ClientType) Label() string {
	switch t {
	case ClientTypeIndividual:
		return "individual"
	case ClientTypeCorporate:
		return "corporate"
	case ClientTypeInstitutional:
		return "institutional"
	default:
		return "unknown"
	}
}

// RuleScope selects which client types a rule applies to: one ClientType or RuleScopeAll.
type RuleScope string

// RuleScopeAll applies a rule to every record regardless of its tcli.
const RuleScopeAll RuleScope = "all"

// Valid reports whether s is RuleScopeAll or a known client type.
func (s RuleScope) Valid() bool {
	return s == RuleScopeAll || ClientType(s).Valid()
}

// Includes reports whether a rule with this scope applies to client type t.
func (s RuleScope) Includes(t ClientType) bool {
	return s == RuleScopeAll || ClientType(s) == t
}

// RuleKind is the constraint kind a validation rule evaluates.
type RuleKind string

const (
	RuleKindRequired    RuleKind = "required"
	RuleKindEnum        RuleKind = "enum"
	RuleKindDatePresent RuleKind = "date_present"
	RuleKindCustom      RuleKind = "custom"
)

// Valid reports whether k is a known rule kind.
func (k RuleKind) Valid() bool {
	switch k {
	case RuleKindRequired, RuleKindEnum, RuleKindDatePresent, RuleKindCustom:
		return true
	}
	return false
}

// ValidationSeverity decides whether a failing rule blocks validity.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)

// Valid reports whether s is a known severity.
func (s ValidationSeverity) Valid() bool {
	return s == ValidationSeverityError || s == ValidationSeverityWarning
}

// UserRole is the role carried in an access token.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAuditor UserRole = "auditor"
	RoleUser    UserRole = "user"
)

// FieldValidationStatus summarises the issues reported for one field of a record.
type FieldValidationStatus string

const (
	FieldStatusInvalid FieldValidationStatus = "invalid"
	FieldStatusReview  FieldValidationStatus = "review"
)
