package messages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonkit/propview/internal/testable"
)

func TestDefault_HasEveryKey(t *testing.T) {
	c := Default()
	keys := []Key{
		ColumnProperty, ColumnValue, ColumnType, ColumnFormat, ColumnHeight, ColumnMin, ColumnMax,
		Rows, AllowedOutliers, Percent, Attributes,
		Identifying, IdentifyingRow, QuasiIdentifying, QuasiIdentifyingRow,
		Sensitive, SensitiveRow, Insensitive, InsensitiveRow,
		OutlyingGroups, Groups, SuppressedGroups, InformationLoss,
		Successors, Predecessors, Transformation, NotAnonymous, NotAnonymousValue, Disabled,
		CriterionAttribute, DPresence, DPresenceValue, DMin, DMax,
		KAnonymity, KAnonymityValue, K,
		DistinctLDiversity, DistinctLDiversityValue, EntropyLDiversity, EntropyLDiversityValue,
		RecursiveCLDiversity, RecursiveCLDiversityValue, C, L,
		EqualDistanceTCloseness, EqualDistanceTClosenessValue,
		HierarchicalDistanceTCloseness, HierarchicalDistanceTClosenessValue, T, Height,
	}
	for _, k := range keys {
		assert.NotContains(t, c.Get(k), "!", "missing default label for %s", k)
	}
	assert.Equal(t, "Rows", c.Get(Rows))
	assert.Equal(t, "QI-", c.Get(QuasiIdentifyingRow))
}

func TestGet_MissingKey(t *testing.T) {
	c := Default()
	assert.Equal(t, "!input.nope!", c.Get("input.nope"))

	var nilCatalog *Catalog
	assert.Equal(t, "!input.rows!", nilCatalog.Get(Rows))
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "de.toml")
	require.NoError(t, os.WriteFile(path, []byte("[input]\nrows = \"Zeilen\"\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Zeilen", c.Get(Rows))
	assert.Equal(t, "Attributes", c.Get(Attributes), "keys not overridden keep their default")
}

func TestLoad_EmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Keys(), c.Keys())
}

func TestLoad_Errors(t *testing.T) {
	orig := FS
	defer func() { FS = orig }()

	FS = &testable.MockFileSystem{
		ReadFileFn: func(string) ([]byte, error) { return nil, os.ErrNotExist },
	}
	_, err := Load("missing.toml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	FS = &testable.MockFileSystem{
		ReadFileFn: func(string) ([]byte, error) { return []byte("[input\nrows ="), nil },
	}
	_, err = Load("broken.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode messages")
}

func TestKey_Section(t *testing.T) {
	assert.Equal(t, "criteria", K.Section())
	assert.Equal(t, "columns", ColumnMax.Section())
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte("[output]\ngroups = \"Gruppen\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "Gruppen", c.Get(Groups))
	assert.Equal(t, "Successors", c.Get(Successors))

	_, err = Parse([]byte("[output\n"))
	assert.Error(t, err)
}
