package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

const (
	outputJSON  = "json"
	outputTable = "table"
	outputDump  = "dump"
)

var (
	colorBorder = lipgloss.Color("#6C7086")
	colorHeader = lipgloss.Color("#89B4FA")

	borderStyle = lipgloss.NewStyle().Foreground(colorBorder)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

func render(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputDump:
		spew.Fdump(w, v)
		return nil
	case outputTable:
		return renderTable(w, v)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func renderTable(w io.Writer, v interface{}) error {
	generic, err := toGeneric(v)
	if err != nil {
		return err
	}

	var headers []string
	var rows [][]string

	switch value := generic.(type) {
	case []interface{}:
		if len(value) == 0 {
			_, err := fmt.Fprintln(w, emptyStyle.Render("no results"))
			return err
		}
		headers, rows = listRows(value)
	case map[string]interface{}:
		headers = []string{"field", "value"}
		for _, key := range sortedKeys(value) {
			rows = append(rows, []string{key, cell(value[key])})
		}
	default:
		headers = []string{"value"}
		rows = [][]string{{cell(value)}}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	_, err = fmt.Fprintln(w, t.Render())
	return err
}

func listRows(items []interface{}) ([]string, [][]string) {
	columns := map[string]struct{}{}
	objects := true
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			objects = false
			break
		}
		for key := range obj {
			columns[key] = struct{}{}
		}
	}

	if !objects {
		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{cell(item)})
		}
		return []string{"value"}, rows
	}

	headers := make([]string, 0, len(columns))
	for key := range columns {
		headers = append(headers, key)
	}
	sort.Strings(headers)

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		obj := item.(map[string]interface{})
		row := make([]string, len(headers))
		for i, key := range headers {
			row[i] = cell(obj[key])
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func toGeneric(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode result")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out interface{}
	if err := dec.Decode(&out); err != nil {
		return nil, errors.Wrap(err, "failed to decode result")
	}
	return out, nil
}

func cell(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return fmt.Sprint(value)
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(raw)
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
