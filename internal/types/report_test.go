package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillCategoryResult_Total(t *testing.T) {
	r := SkillCategoryResult{Category: "databases", Found: []string{"Redis"}, Missing: []string{"MySQL", "SQLite"}}
	assert.Equal(t, 3, r.Total())
	assert.Equal(t, 0, SkillCategoryResult{}.Total())
}

func TestSkillsReport_ScoreOmittedInGeneralMode(t *testing.T) {
	data, err := json.Marshal(SkillsReport{Mode: SkillsModeGeneral, Categories: []SkillCategoryResult{}})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "score")
	assert.NotContains(t, fields, "role")
	assert.Equal(t, "general", fields["mode"])
}
