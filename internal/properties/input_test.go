package properties

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonkit/propview/internal/model"
)

func TestBuildInput_Scenario(t *testing.T) {
	tree, err := BuildInput(scenarioInput(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Rows = 5",
		"Allowed outliers = 5.0%",
		"Attributes = 3",
		"  Identifying attributes = 1",
		"    ID-0 = Name | String",
		"  Quasi-identifying attributes = 1",
		"    QI-0 = Age | Integer |  | 3 | 0 | 2",
		"  Sensitive attributes = 1",
		"    SE-0 = Disease",
		"  Insensitive attributes = 0",
	}, dump(tree))
}

func TestBuildInput_QuasiIdentifierWithoutHierarchy(t *testing.T) {
	def := model.NewDefinition(
		&model.Attribute{Name: "Zip", Role: model.RoleQuasiIdentifying, Type: model.DataType{Label: "Integer"}},
		&model.Attribute{
			Name:      "Birth",
			Role:      model.RoleQuasiIdentifying,
			Type:      model.DataType{Label: "Date", Format: "dd.MM.yyyy"},
			Hierarchy: &model.Hierarchy{Rows: [][]string{{"01.02.1990", "1990", "*"}}},
		},
	)
	data := &model.Handle{Rows: 1, Columns: []string{"Zip", "Birth"}, Definition: def}
	tree, err := BuildInput(Input{Data: data, Config: &model.Configuration{}}, Options{})
	require.NoError(t, err)

	qi := tree.Children(tree.Roots()[2])[1]
	rows := tree.Children(qi)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Zip"}, tree.Values(rows[0]), "no hierarchy: only the name")
	assert.Equal(t, []string{"Birth", "Date", "dd.MM.yyyy", "3", "0", "2"}, tree.Values(rows[1]))
	assert.Equal(t, "QI-1", tree.Label(rows[1]))
}

func TestBuildInput_SensitiveHierarchyHeight(t *testing.T) {
	def := model.NewDefinition(
		&model.Attribute{Name: "Disease", Role: model.RoleSensitive, Type: model.DataType{Label: "String"}},
		&model.Attribute{Name: "Income", Role: model.RoleSensitive, Type: model.DataType{Label: "Decimal"}},
	)
	data := &model.Handle{Rows: 1, Columns: []string{"Disease", "Income"}, Definition: def}
	cfg := &model.Configuration{Hierarchies: map[string]*model.Hierarchy{
		"Disease": {Rows: [][]string{{"flu", "respiratory", "*"}}},
		"Income":  {},
	}}
	tree, err := BuildInput(Input{Data: data, Config: cfg}, Options{})
	require.NoError(t, err)

	sensitive := tree.Children(tree.Roots()[2])[2]
	rows := tree.Children(sensitive)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Disease", "String", "", "3"}, tree.Values(rows[0]))
	assert.Equal(t, []string{"Income", "Decimal", "", "0"}, tree.Values(rows[1]), "empty hierarchy has height 0")
}

func TestBuildInput_RoleCountsCoverAllColumns(t *testing.T) {
	roles := []model.Role{model.RoleIdentifying, model.RoleQuasiIdentifying, model.RoleSensitive, model.RoleInsensitive}
	for n := 0; n <= 12; n++ {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			var attrs []*model.Attribute
			var columns []string
			want := make(map[model.Role][]string)
			for i := 0; i < n; i++ {
				name := fmt.Sprintf("attr%02d", i)
				role := roles[(i*7+n)%len(roles)]
				attrs = append(attrs, &model.Attribute{Name: name, Role: role})
				columns = append(columns, name)
				want[role] = append(want[role], name)
			}
			data := &model.Handle{Rows: 10, Columns: columns, Definition: model.NewDefinition(attrs...)}
			tree, err := BuildInput(Input{Data: data, Config: &model.Configuration{}}, Options{})
			require.NoError(t, err)

			attributes := tree.Roots()[2]
			total := 0
			for i, section := range tree.Children(attributes) {
				count, _ := tree.Value(section, 0)
				c, err := strconv.Atoi(count)
				require.NoError(t, err)
				total += c

				var got []string
				for j, row := range tree.Children(section) {
					name, _ := tree.Value(row, 0)
					got = append(got, name)
					assert.Contains(t, tree.Label(row), strconv.Itoa(j), "row index restarts per role")
				}
				assert.Equal(t, want[roles[i]], got, "attributes of %s in column order", roles[i])
				assert.Len(t, got, c)
			}
			assert.Equal(t, n, total)
		})
	}
}

func TestBuildInput_Pure(t *testing.T) {
	first, err := BuildInput(scenarioInput(), Options{})
	require.NoError(t, err)
	second, err := BuildInput(scenarioInput(), Options{})
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestBuildInput_Incomplete(t *testing.T) {
	_, err := BuildInput(Input{}, Options{})
	assert.ErrorIs(t, err, ErrIncomplete)

	in := scenarioInput()
	in.Config = nil
	_, err = BuildInput(in, Options{})
	assert.ErrorIs(t, err, ErrIncomplete)
}
