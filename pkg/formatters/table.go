package formatters

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/cio/pkg/repr"
	"github.com/arthur-debert/cio/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableOptions controls how the `t` formatter draws tables.
type TableOptions struct {
	// Border is one of normal, rounded, thick, double, ascii or markdown.
	Border string
	// Styles holds the style lists applied by depth: section titles,
	// header row, row labels. Missing entries leave that level plain.
	Styles []string
}

// DefaultTableOptions returns rounded borders with the stock color
// hierarchy.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Border: "rounded",
		Styles: []string{"bright_cyan, bold", "bold", "cyan"},
	}
}

var borders = map[string]lipgloss.Border{
	"normal":   lipgloss.NormalBorder(),
	"rounded":  lipgloss.RoundedBorder(),
	"thick":    lipgloss.ThickBorder(),
	"double":   lipgloss.DoubleBorder(),
	"ascii":    lipgloss.ASCIIBorder(),
	"markdown": lipgloss.MarkdownBorder(),
}

// BorderNames lists the accepted border styles.
func BorderNames() []string {
	return []string{"normal", "rounded", "thick", "double", "ascii", "markdown"}
}

// grid is a table before drawing: headers plus rows of cell text.
// labeled marks tables whose first column names the row.
type grid struct {
	headers []string
	rows    [][]string
	labeled bool
}

// Table draws raw as a bordered table. headers, when given, replace the
// derived column headers in order. Values with no tabular shape come back
// as their compact debug text.
func Table(raw any, headers []string, opts TableOptions) string {
	v := deref(reflect.ValueOf(raw))

	if sections, ok := sectioned(v); ok {
		var b strings.Builder
		for i, s := range sections {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(paint(opts, 0, s.title))
			b.WriteByte('\n')
			b.WriteString(draw(s.grid, headers, opts))
		}
		return b.String()
	}

	g, ok := shape(v)
	if !ok {
		return repr.Compact(raw)
	}
	return draw(g, headers, opts)
}

type section struct {
	title string
	grid  grid
}

// sectioned splits a three-level map into one two-level table per outer key.
func sectioned(v reflect.Value) ([]section, bool) {
	if !v.IsValid() || v.Kind() != reflect.Map || v.Len() == 0 {
		return nil, false
	}
	var out []section
	for _, k := range repr.SortedKeys(v) {
		inner := deref(v.MapIndex(k))
		if !isMapOfMaps(inner) {
			return nil, false
		}
		g, _ := shape(inner)
		out = append(out, section{title: cellText(k), grid: g})
	}
	return out, true
}

// shape derives headers and rows from the supported tabular shapes.
func shape(v reflect.Value) (grid, bool) {
	if !v.IsValid() {
		return grid{}, false
	}
	switch v.Kind() {
	case reflect.Map:
		if isMapOfMaps(v) {
			return mapOfRecords(v), true
		}
		g := grid{headers: []string{"Key", "Value"}, labeled: true}
		for _, k := range repr.SortedKeys(v) {
			g.rows = append(g.rows, []string{cellText(k), cellText(v.MapIndex(k))})
		}
		return g, true
	case reflect.Struct:
		g := grid{headers: []string{"Field", "Value"}, labeled: true}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			g.rows = append(g.rows, []string{t.Field(i).Name, cellText(v.Field(i))})
		}
		return g, true
	case reflect.Slice, reflect.Array:
		return sequence(v), true
	}
	return grid{}, false
}

func sequence(v reflect.Value) grid {
	n := v.Len()
	items := make([]reflect.Value, n)
	for i := range items {
		items[i] = deref(v.Index(i))
	}

	switch {
	case n > 0 && allKinds(items, reflect.Slice, reflect.Array):
		width := 0
		var g grid
		for _, it := range items {
			row := make([]string, it.Len())
			for j := range row {
				row[j] = cellText(it.Index(j))
			}
			if len(row) > width {
				width = len(row)
			}
			g.rows = append(g.rows, row)
		}
		for j := 1; j <= width; j++ {
			g.headers = append(g.headers, strconv.Itoa(j))
		}
		return g
	case n > 0 && allKinds(items, reflect.Map, reflect.Struct):
		cols := columnUnion(items)
		g := grid{headers: cols}
		for _, it := range items {
			g.rows = append(g.rows, recordRow(it, cols))
		}
		return g
	}

	g := grid{headers: []string{"#", "Value"}, labeled: true}
	for i, it := range items {
		g.rows = append(g.rows, []string{strconv.Itoa(i), cellText(it)})
	}
	return g
}

func mapOfRecords(v reflect.Value) grid {
	keys := repr.SortedKeys(v)
	items := make([]reflect.Value, len(keys))
	for i, k := range keys {
		items[i] = deref(v.MapIndex(k))
	}
	cols := columnUnion(items)
	g := grid{headers: append([]string{""}, cols...), labeled: true}
	for i, k := range keys {
		g.rows = append(g.rows, append([]string{cellText(k)}, recordRow(items[i], cols)...))
	}
	return g
}

// columnUnion collects the keys or field names of records in first-seen
// order. Map keys are visited sorted.
func columnUnion(items []reflect.Value) []string {
	var cols []string
	seen := map[string]bool{}
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			cols = append(cols, name)
		}
	}
	for _, it := range items {
		switch it.Kind() {
		case reflect.Map:
			for _, k := range repr.SortedKeys(it) {
				add(cellText(k))
			}
		case reflect.Struct:
			for i := 0; i < it.NumField(); i++ {
				add(it.Type().Field(i).Name)
			}
		}
	}
	return cols
}

func recordRow(rec reflect.Value, cols []string) []string {
	row := make([]string, len(cols))
	switch rec.Kind() {
	case reflect.Map:
		byName := map[string]reflect.Value{}
		for _, k := range rec.MapKeys() {
			byName[cellText(k)] = rec.MapIndex(k)
		}
		for i, c := range cols {
			if val, ok := byName[c]; ok {
				row[i] = cellText(val)
			}
		}
	case reflect.Struct:
		for i, c := range cols {
			if f := rec.FieldByName(c); f.IsValid() {
				row[i] = cellText(f)
			}
		}
	}
	return row
}

func draw(g grid, supplied []string, opts TableOptions) string {
	headers := append([]string(nil), g.headers...)
	for i, h := range supplied {
		if i < len(headers) {
			headers[i] = h
		} else {
			headers = append(headers, h)
		}
	}

	rows := make([][]string, len(g.rows))
	for i, row := range g.rows {
		row = append([]string(nil), row...)
		for len(row) < len(headers) {
			row = append(row, "")
		}
		if g.labeled && len(row) > 0 {
			row[0] = paint(opts, 2, row[0])
		}
		rows[i] = row
	}
	painted := make([]string, len(headers))
	for i, h := range headers {
		painted[i] = paint(opts, 1, h)
	}

	border, ok := borders[opts.Border]
	if !ok {
		border = lipgloss.RoundedBorder()
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(border).
		Headers(painted...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cell
		})
	return t.String() + "\n"
}

func paint(opts TableOptions, level int, text string) string {
	if level >= len(opts.Styles) {
		return text
	}
	return style.Wrap(style.ParseList(opts.Styles[level]), text)
}

// cellText is the text of one cell: strings unquoted, everything else in
// compact debug form.
func cellText(v reflect.Value) string {
	v = deref(v)
	if v.IsValid() && v.Kind() == reflect.String {
		return v.String()
	}
	return repr.CompactValue(v)
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func isMapOfMaps(v reflect.Value) bool {
	if !v.IsValid() || v.Kind() != reflect.Map || v.Len() == 0 {
		return false
	}
	for _, k := range v.MapKeys() {
		inner := deref(v.MapIndex(k))
		if !inner.IsValid() || inner.Kind() != reflect.Map {
			return false
		}
	}
	return true
}

func allKinds(items []reflect.Value, kinds ...reflect.Kind) bool {
	for _, it := range items {
		if !it.IsValid() {
			return false
		}
		match := false
		for _, k := range kinds {
			if it.Kind() == k {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	return true
}
