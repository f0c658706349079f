package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		format Format
		path   string
		want   Format
	}{
		{FormatAuto, "data.json", FormatJSON},
		{FormatAuto, "data.yaml", FormatYAML},
		{FormatAuto, "data.yml", FormatYAML},
		{FormatAuto, "data.csv", FormatCSV},
		{FormatAuto, "", FormatJSON},
		{FormatAuto, "noext", FormatJSON},
		{FormatCSV, "data.json", FormatCSV}, // explicit wins
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, DetectFormat(tc.format, tc.path), "path %q", tc.path)
	}
}

func TestDecodeTable_JSONArrayOfArrays(t *testing.T) {
	in := `[["Name","Score"],["Alice",10],["Bob",5]]`
	td, err := DecodeTable(strings.NewReader(in), FormatJSON, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Score"}, td.Headers)
	require.Len(t, td.Rows, 2)
	assert.Equal(t, []string{"Alice", "10"}, td.Rows[0])
	assert.Equal(t, []string{"Bob", "5"}, td.Rows[1])
}

func TestDecodeTable_JSONArrayOfObjects(t *testing.T) {
	in := `[{"name":"Alice","score":10},{"score":5,"name":"Bob"}]`
	td, err := DecodeTable(strings.NewReader(in), FormatJSON, "")
	require.NoError(t, err)

	// Headers come from the first object's keys, sorted.
	assert.Equal(t, []string{"name", "score"}, td.Headers)
	assert.Equal(t, [][]string{{"Alice", "10"}, {"Bob", "5"}}, td.Rows)
}

func TestDecodeTable_JSONWithQuery(t *testing.T) {
	in := `{"items":[{"name":"Alice","score":10},{"name":"Bob","score":5}]}`
	td, err := DecodeTable(strings.NewReader(in), FormatJSON, ".items")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "score"}, td.Headers)
	assert.Len(t, td.Rows, 2)
}

func TestDecodeTable_QueryMultipleOutputs(t *testing.T) {
	in := `{"items":[{"name":"Alice","score":10},{"name":"Bob","score":5}]}`
	td, err := DecodeTable(strings.NewReader(in), FormatJSON, ".items[]")
	require.NoError(t, err)
	assert.Len(t, td.Rows, 2)
}

func TestDecodeTable_BadQuery(t *testing.T) {
	_, err := DecodeTable(strings.NewReader(`[]`), FormatJSON, ".[unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing query")
}

func TestDecodeTable_YAML(t *testing.T) {
	in := "- name: Alice\n  score: 10\n- name: Bob\n  score: 5\n"
	td, err := DecodeTable(strings.NewReader(in), FormatYAML, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "score"}, td.Headers)
	assert.Equal(t, [][]string{{"Alice", "10"}, {"Bob", "5"}}, td.Rows)
}

func TestDecodeTable_CSV(t *testing.T) {
	in := "Name,Score\nAlice,10\nBob,5\n"
	td, err := DecodeTable(strings.NewReader(in), FormatCSV, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Score"}, td.Headers)
	assert.Equal(t, [][]string{{"Alice", "10"}, {"Bob", "5"}}, td.Rows)
}

func TestDecodeTable_CSVRejectsQuery(t *testing.T) {
	_, err := DecodeTable(strings.NewReader("a,b\n"), FormatCSV, ".")
	require.Error(t, err)
}

func TestDecodeTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not an array", `{"a":1}`},
		{"empty array", `[]`},
		{"array of scalars", `[1,2,3]`},
		{"mixed shapes", `[["h"],{"k":1}]`},
		{"invalid json", `{`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTable(strings.NewReader(tc.in), FormatJSON, "")
			assert.Error(t, err)
		})
	}
}

func TestDecodeTable_MissingObjectKeys(t *testing.T) {
	in := `[{"a":1,"b":2},{"a":3}]`
	td, err := DecodeTable(strings.NewReader(in), FormatJSON, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", ""}}, td.Rows)
}

func TestDecodeTree_SingleRoot(t *testing.T) {
	in := `{"name":"root","children":[{"name":"child","value":"x"}]}`
	nodes, err := DecodeTree(strings.NewReader(in), FormatJSON)
	require.NoError(t, err)

	require.Len(t, nodes, 1)
	assert.Equal(t, "root", nodes[0].Name)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "child", nodes[0].Children[0].Name)
	assert.Equal(t, "x", nodes[0].Children[0].Value)
}

func TestDecodeTree_ArrayOfRoots(t *testing.T) {
	in := `[{"name":"a"},{"name":"b"}]`
	nodes, err := DecodeTree(strings.NewReader(in), FormatJSON)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
}

func TestDecodeTree_YAML(t *testing.T) {
	in := "name: root\nchildren:\n  - name: leaf\n"
	nodes, err := DecodeTree(strings.NewReader(in), FormatYAML)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "leaf", nodes[0].Children[0].Name)
}
