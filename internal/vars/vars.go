// Package vars loads template variables for the cio command from files and
// from key=value assignments.
package vars

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/arthur-debert/cio/pkg/lexer"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads variables from a .toml, .yaml, .yml, .json or .xml file.
// The top level of the document must be a table, mapping or object; for
// XML the children of the root element become the variables.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVarsLoad, "failed to read vars file %s", path).
			WithDetail("path", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	vars, err := Parse(data, ext)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVarsParse, "failed to parse vars file %s", path).
			WithDetail("path", path).
			WithDetail("format", ext)
	}
	return vars, nil
}

// Parse decodes data in the format named by ext (with or without the dot).
func Parse(data []byte, ext string) (map[string]any, error) {
	vars := map[string]any{}
	var err error

	switch strings.TrimPrefix(ext, ".") {
	case "toml":
		err = toml.Unmarshal(data, &vars)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &vars)
	case "json":
		err = json.Unmarshal(data, &vars)
	case "xml":
		vars, err = parseXML(data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported vars format %q", ext).
			WithDetail("accepted", []string{"toml", "yaml", "yml", "json", "xml"})
	}
	if err != nil {
		return nil, err
	}
	return vars, nil
}

// ParseAssignment splits "name=value". The value is read as a TOML value
// when it parses as one, so numbers, booleans, arrays and inline tables
// keep their type; anything else is kept as a plain string.
func ParseAssignment(s string) (string, any, error) {
	name, raw, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || !lexer.IsIdentifier(name) {
		return "", nil, errors.Newf(errors.ErrInvalidInput, "invalid assignment %q, expected name=value", s)
	}
	return name, inferValue(raw), nil
}

// Merge applies assignments on top of base and returns base.
func Merge(base map[string]any, assignments []string) (map[string]any, error) {
	if base == nil {
		base = map[string]any{}
	}
	for _, a := range assignments {
		name, value, err := ParseAssignment(a)
		if err != nil {
			return nil, err
		}
		base[name] = value
	}
	return base, nil
}

func inferValue(raw string) any {
	var doc map[string]any
	if err := toml.Unmarshal([]byte("v = "+raw), &doc); err == nil {
		if v, ok := doc["v"]; ok {
			return v
		}
	}
	return raw
}

// parseXML maps the root's child elements to variables. Elements with
// children become maps, or slices when every child has the same tag and
// there is more than one. Repeated tags at one level are collected into a
// slice. Leaf text is typed like a TOML scalar.
func parseXML(data []byte) (map[string]any, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrVarsParse, "xml document has no root element")
	}
	return xmlChildren(root), nil
}

func xmlChildren(el *etree.Element) map[string]any {
	out := map[string]any{}
	for _, child := range el.ChildElements() {
		if _, done := out[child.Tag]; done {
			continue
		}
		same := el.SelectElements(child.Tag)
		if len(same) == 1 {
			out[child.Tag] = xmlValue(child)
			continue
		}
		list := make([]any, len(same))
		for i, e := range same {
			list[i] = xmlValue(e)
		}
		out[child.Tag] = list
	}
	return out
}

func xmlValue(el *etree.Element) any {
	children := el.ChildElements()
	if len(children) == 0 {
		return scalar(strings.TrimSpace(el.Text()))
	}
	if len(children) > 1 && sameTag(children) {
		list := make([]any, len(children))
		for i, c := range children {
			list[i] = xmlValue(c)
		}
		return list
	}
	return xmlChildren(el)
}

func sameTag(els []*etree.Element) bool {
	for _, e := range els[1:] {
		if e.Tag != els[0].Tag {
			return false
		}
	}
	return true
}

func scalar(text string) any {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f
	}
	switch text {
	case "true":
		return true
	case "false":
		return false
	}
	return text
}
