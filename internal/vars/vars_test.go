// internal/vars/vars_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp files
// PURPOSE: Test loading template variables from files and assignments

package vars_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cio/internal/vars"
	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/arthur-debert/cio/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		data string
		want map[string]any
	}{
		{
			name: "toml",
			ext:  ".toml",
			data: "name = \"Ada\"\nage = 36\nm = [[1, 2], [3, 4]]\n",
			want: map[string]any{
				"name": "Ada",
				"age":  int64(36),
				"m":    []any{[]any{int64(1), int64(2)}, []any{int64(3), int64(4)}},
			},
		},
		{
			name: "yaml",
			ext:  "yaml",
			data: "name: Ada\ntags: [a, b]\n",
			want: map[string]any{"name": "Ada", "tags": []any{"a", "b"}},
		},
		{
			name: "json",
			ext:  ".json",
			data: `{"name": "Ada", "ok": true}`,
			want: map[string]any{"name": "Ada", "ok": true},
		},
		{
			name: "xml",
			ext:  ".xml",
			data: `<vars>
  <name>Ada</name>
  <age>36</age>
  <score>9.5</score>
  <admin>true</admin>
  <tag>a</tag>
  <tag>b</tag>
  <user><first>Ada</first><last>Lovelace</last></user>
  <list><i>1</i><i>2</i></list>
</vars>`,
			want: map[string]any{
				"name":  "Ada",
				"age":   int64(36),
				"score": 9.5,
				"admin": true,
				"tag":   []any{"a", "b"},
				"user":  map[string]any{"first": "Ada", "last": "Lovelace"},
				"list":  []any{int64(1), int64(2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vars.Parse([]byte(tt.data), tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := vars.Parse([]byte("x"), ".ini")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = vars.Parse([]byte("{"), ".json")
	assert.Error(t, err)

	_, err = vars.Parse([]byte("just text"), ".xml")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "vars.TOML", "n = 1\n")

	got, err := vars.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": int64(1)}, got)

	_, err = vars.LoadFile(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrVarsLoad))

	bad := testutil.CreateFile(t, dir, "bad.yaml", "a: [1")
	_, err = vars.LoadFile(bad)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVarsParse))
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in    string
		name  string
		value any
	}{
		{"n=3", "n", int64(3)},
		{"pi=3.5", "pi", 3.5},
		{"ok=true", "ok", true},
		{"who=Ada", "who", "Ada"},
		{`q="quoted"`, "q", "quoted"},
		{"m=[[1, 2], [3, 4]]", "m", []any{[]any{int64(1), int64(2)}, []any{int64(3), int64(4)}}},
		{"sep= - ", "sep", " - "},
		{"empty=", "empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, value, err := vars.ParseAssignment(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.value, value)
		})
	}

	for _, bad := range []string{"novalue", "=x", "1a=2", "a b=1"} {
		_, _, err := vars.ParseAssignment(bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}
}

func TestMerge(t *testing.T) {
	got, err := vars.Merge(map[string]any{"a": "file", "b": "file"}, []string{"b=flag", "c=1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "file", "b": "flag", "c": int64(1)}, got)

	got, err = vars.Merge(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = vars.Merge(nil, []string{"bad"})
	assert.Error(t, err)
}
