// Package input decodes table and tree data for the termgrid CLI from
// JSON, YAML, or CSV sources, with optional gojq query shaping for the
// structured formats.
package input

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/termgrid/table"
)

// Format identifies a supported input encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// DetectFormat resolves FormatAuto using the file extension. Data from
// stdin (empty path) defaults to JSON.
func DetectFormat(format Format, path string) Format {
	if format != FormatAuto && format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	default:
		return FormatJSON
	}
}

// TableData is decoded tabular input: a header row plus body rows.
type TableData struct {
	Headers []string
	Rows    [][]string
}

// DecodeTable reads tabular data from r.
//
// JSON and YAML accept either an array of arrays (first row is the
// header) or an array of objects (headers are the first object's keys,
// sorted). A non-empty query is applied with gojq before shaping. CSV
// treats the first record as the header and does not support queries.
func DecodeTable(r io.Reader, format Format, query string) (*TableData, error) {
	if format == FormatCSV {
		if query != "" {
			return nil, fmt.Errorf("queries are not supported for CSV input")
		}
		return decodeCSV(r)
	}

	v, err := decodeStructured(r, format)
	if err != nil {
		return nil, err
	}
	if query != "" {
		v, err = applyQuery(v, query)
		if err != nil {
			return nil, err
		}
	}
	return shapeTable(v)
}

func decodeCSV(r io.Reader) (*TableData, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv input is empty")
	}
	return &TableData{Headers: records[0], Rows: records[1:]}, nil
}

func decodeStructured(r io.Reader, format Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var v any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	}
	return v, nil
}

// applyQuery runs a gojq filter over v. A single output becomes the new
// value; multiple outputs collect into an array.
func applyQuery(v any, query string) (any, error) {
	q, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("parsing query %q: %w", query, err)
	}

	var outputs []any
	iter := q.Run(v)
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := out.(error); isErr {
			return nil, fmt.Errorf("running query %q: %w", query, err)
		}
		outputs = append(outputs, out)
	}

	switch len(outputs) {
	case 0:
		return nil, fmt.Errorf("query %q produced no output", query)
	case 1:
		return outputs[0], nil
	default:
		return outputs, nil
	}
}

func shapeTable(v any) (*TableData, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a top-level array, got %T", v)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("input array is empty")
	}

	switch first := items[0].(type) {
	case []any:
		td := &TableData{Headers: stringifyAll(first)}
		for _, item := range items[1:] {
			row, ok := item.([]any)
			if !ok {
				return nil, fmt.Errorf("mixed array shapes: got %T after an array row", item)
			}
			td.Rows = append(td.Rows, stringifyAll(row))
		}
		return td, nil

	case map[string]any:
		headers := make([]string, 0, len(first))
		for k := range first {
			headers = append(headers, k)
		}
		sort.Strings(headers)

		td := &TableData{Headers: headers}
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("mixed array shapes: got %T after an object row", item)
			}
			row := make([]string, len(headers))
			for i, k := range headers {
				row[i] = stringify(obj[k])
			}
			td.Rows = append(td.Rows, row)
		}
		return td, nil

	default:
		return nil, fmt.Errorf("expected an array of arrays or objects, got array of %T", items[0])
	}
}

func stringifyAll(items []any) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = stringify(v)
	}
	return out
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// treeNode mirrors the document shape for tree input.
type treeNode struct {
	Name     string     `json:"name" yaml:"name"`
	Value    string     `json:"value" yaml:"value"`
	Children []treeNode `json:"children" yaml:"children"`
}

// DecodeTree reads one or more tree roots from r. The document is
// either a single {name, value, children} object or an array of them.
func DecodeTree(r io.Reader, format Format) ([]table.TreeNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	unmarshal := json.Unmarshal
	if format == FormatYAML {
		unmarshal = func(b []byte, v any) error { return yaml.Unmarshal(b, v) }
	}

	var many []treeNode
	if err := unmarshal(data, &many); err == nil {
		return convertTree(many), nil
	}
	var one treeNode
	if err := unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("parsing tree document: %w", err)
	}
	return convertTree([]treeNode{one}), nil
}

func convertTree(nodes []treeNode) []table.TreeNode {
	out := make([]table.TreeNode, len(nodes))
	for i, n := range nodes {
		out[i] = table.TreeNode{
			Name:     n.Name,
			Value:    n.Value,
			Children: convertTree(n.Children),
		}
	}
	return out
}
