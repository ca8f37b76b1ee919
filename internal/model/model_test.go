package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"", RoleInsensitive},
		{"Identifying", RoleIdentifying},
		{"qi", RoleQuasiIdentifying},
		{"quasi_identifying", RoleQuasiIdentifying},
		{" sensitive ", RoleSensitive},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseRole("public")
	assert.Error(t, err)
}

func TestHierarchy_Height(t *testing.T) {
	var nilHierarchy *Hierarchy
	assert.Equal(t, 0, nilHierarchy.Height())
	assert.Equal(t, 0, (&Hierarchy{}).Height())
	assert.Equal(t, 4, (&Hierarchy{Levels: 4}).Height())
	assert.Equal(t, 2, (&Hierarchy{Rows: [][]string{{"a", "*"}}, Levels: 9}).Height(), "rows win over levels")
}

func TestDefinition_GeneralizationDefaults(t *testing.T) {
	def := NewDefinition(
		&Attribute{Name: "Age", Role: RoleQuasiIdentifying, Hierarchy: &Hierarchy{Levels: 4}},
		&Attribute{Name: "Zip", Role: RoleQuasiIdentifying, Hierarchy: &Hierarchy{Levels: 5}, MinLevel: intPtr(1), MaxLevel: intPtr(3)},
	)

	assert.Equal(t, 0, def.MinimumGeneralization("Age"))
	assert.Equal(t, 3, def.MaximumGeneralization("Age"))
	assert.Equal(t, 1, def.MinimumGeneralization("Zip"))
	assert.Equal(t, 3, def.MaximumGeneralization("Zip"))

	assert.Equal(t, RoleInsensitive, def.Role("missing"))
	assert.Nil(t, def.Hierarchy("missing"))
	assert.Equal(t, 0, def.MaximumGeneralization("missing"))
	assert.Equal(t, "String", def.DataType("missing").String())
}

func TestConfiguration_CriterionLookup(t *testing.T) {
	cfg := &Configuration{Criteria: []Criterion{
		{Kind: CriterionKAnonymity, K: 3},
		{Kind: CriterionKAnonymity, K: 7},
	}}
	c, ok := cfg.Criterion(CriterionKAnonymity)
	require.True(t, ok)
	assert.Equal(t, 3, c.K, "first instance wins")
	assert.False(t, cfg.ContainsCriterion(CriterionDPresence))

	var nilCfg *Configuration
	assert.False(t, nilCfg.ContainsCriterion(CriterionKAnonymity))
	assert.Nil(t, nilCfg.Hierarchy("Age"))
}

func TestCriterionKind_RoundTripNames(t *testing.T) {
	for kind := CriterionDPresence; kind <= CriterionHierarchicalDistanceTCloseness; kind++ {
		assert.Equal(t, kind, ParseCriterionKind(kind.String()))
	}
	assert.Equal(t, CriterionUnknown, ParseCriterionKind("beta-likeness"))
	assert.Equal(t, "unknown", CriterionUnknown.String())
}

func TestTransformation_String(t *testing.T) {
	assert.Equal(t, "[]", Transformation(nil).String())
	assert.Equal(t, "[1, 0, 2]", Transformation{1, 0, 2}.String())
}

func TestParseAnonymity(t *testing.T) {
	a, ok := ParseAnonymity("Not_Anonymous")
	require.True(t, ok)
	assert.Equal(t, AnonymityNotAnonymous, a)

	a, ok = ParseAnonymity("")
	require.True(t, ok)
	assert.Equal(t, AnonymityUnknown, a)

	_, ok = ParseAnonymity("probably")
	assert.False(t, ok)
}
