package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataquality/internal/cli"
	"dataquality/internal/config"
	"dataquality/internal/domain"
	"dataquality/internal/service"
	"dataquality/internal/validator/client"
)

const validIndividual = `{"cli":"123","tcli":"1","age":"001","nid":"AB987654","nmer":"Smith","dna":"1980-01-01",` +
	`"nat":"FR","nom":"Doe","pre":"John","sext":"M","viln":"Paris","payn":"France","tid":"passport"}`

const missingNID = `{"cli":"124","tcli":"1","age":"001","nmer":"Smith","dna":"1980-01-01",` +
	`"nat":"FR","nom":"Doe","pre":"John","sext":"M","viln":"Paris","payn":"France","tid":"passport"}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateCommand_SingleRecord(t *testing.T) {
	out, err := run(t, "validate", writeFile(t, "record.json", validIndividual))
	require.NoError(t, err)

	var report domain.BatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, "123", report.Results[0].CLI)
	assert.True(t, report.Results[0].Validation.IsValid)
	assert.Equal(t, 1, report.Summary.Valid)
}

func TestValidateCommand_InvalidRecordFails(t *testing.T) {
	out, err := run(t, "validate", writeFile(t, "record.json", missingNID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 record(s) invalid")
	assert.Contains(t, out, "PP_NID_REQUIRED")
}

func TestValidateCommand_BatchWithUndecodableEntry(t *testing.T) {
	path := writeFile(t, "records.json", "["+validIndividual+", 5]")

	out, err := run(t, "validate", path)
	require.Error(t, err)

	var report domain.BatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Valid)
	assert.Equal(t, 1, report.Summary.Failed)
}

func TestValidateCommand_TableFormat(t *testing.T) {
	path := writeFile(t, "records.json", "["+validIndividual+","+missingNID+"]")

	out, err := run(t, "validate", path, "--format", "table")
	require.Error(t, err)
	assert.Contains(t, out, "Validation report")
	assert.Contains(t, out, "123")
	assert.Contains(t, out, "PP_NID_REQUIRED")
	assert.Contains(t, out, "1 invalid")
}

func TestValidateCommand_Errors(t *testing.T) {
	_, err := run(t, "validate", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = run(t, "validate", writeFile(t, "empty.json", "[]"))
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)

	_, err = run(t, "validate", writeFile(t, "record.json", validIndividual), "--format", "xml")
	assert.Error(t, err)
}

func TestRulesCommand_YAMLRoundTrips(t *testing.T) {
	out, err := run(t, "rules", "--format", "yaml")
	require.NoError(t, err)

	rules, err := client.DecodeRules(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, client.DefaultRules(), rules)
}

func TestRulesCommand_ClientTypeFilter(t *testing.T) {
	out, err := run(t, "rules", "--client-type", "2", "--format", "json")
	require.NoError(t, err)

	var rules []domain.ValidationRule
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	require.NotEmpty(t, rules)
	for _, r := range rules {
		assert.Contains(t, []domain.RuleScope{domain.RuleScopeAll, "2"}, r.Scope, r.ID)
	}

	_, err = run(t, "rules", "--client-type", "9")
	assert.ErrorIs(t, err, domain.ErrInvalidClientType)
}

func TestRulesCommand_TableFromSeedFile(t *testing.T) {
	seed := writeFile(t, "rules.yaml", "rules:\n"+
		"  - id: PM_NAT_REQUIRED\n    field: nat\n    client_type: \"2\"\n    rule_type: required\n"+
		"    severity: error\n    error_message: Nationality is required\n    enabled: false\n")

	out, err := run(t, "rules", "--rules", seed)
	require.NoError(t, err)
	assert.Contains(t, out, "1 rules")
	assert.Contains(t, out, "PM_NAT_REQUIRED")
	assert.Contains(t, out, "disabled")
}

func TestTokenCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DQ_JWT_SECRET", "cli-test-secret")

	out, err := run(t, "token", "--subject", "ops-admin", "--role", "auditor")
	require.NoError(t, err)

	auth := service.NewAuthService(config.JWTConfig{Secret: "cli-test-secret", Issuer: "dataquality"})
	claims, err := auth.ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops-admin", claims.Subject)
	assert.Equal(t, domain.RoleAuditor, claims.Role)
}

func TestTokenCommand_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "token")
	assert.Error(t, err)

	_, err = run(t, "token", "--subject", "ops-admin", "--role", "root")
	assert.Error(t, err)
}
