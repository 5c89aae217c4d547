package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "matchPolicy": "all",
  "rules": [
    {"field": "From", "predicate": "contains", "value": "newsletter@"},
    {"field": "ReceivedAt", "predicate": "greater-than", "value": "2", "unit": "months"}
  ],
  "actions": [
    {"type": "markRead"},
    {"type": "move", "destination": "promotions"}
  ]
}`

func writeRuleset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "email_rules.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	rs, err := Load(writeRuleset(t, sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, PolicyAll, rs.MatchPolicy)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, FieldFrom, rs.Rules[0].Field)
	assert.Equal(t, GreaterThan, rs.Rules[1].Predicate)
	assert.Equal(t, UnitMonths, rs.Rules[1].Unit)
	require.Len(t, rs.Actions, 2)
	assert.Equal(t, Move, rs.Actions[1].Type)
	assert.Equal(t, "promotions", rs.Actions[1].Destination)
}

func TestLoadAbsent(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRuleset)
	assert.NotErrorIs(t, err, ErrBadRuleset)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeRuleset(t, `{"matchPolicy": "all", "rules": [`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRuleset)
	assert.NotErrorIs(t, err, ErrNoRuleset)
}

func TestFileSourceReloadsPerCall(t *testing.T) {
	path := writeRuleset(t, sampleDoc)
	src := FileSource{Path: path}

	rs, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, PolicyAll, rs.MatchPolicy)

	require.NoError(t, os.WriteFile(path, []byte(`{"matchPolicy": "any", "rules": [], "actions": []}`), 0o600))
	rs, err = src.Load()
	require.NoError(t, err)
	assert.Equal(t, PolicyAny, rs.MatchPolicy)
}
