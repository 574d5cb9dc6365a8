// pkg/resolver/resolver_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: expr-lang/expr
// PURPOSE: Test identifier lookup and expression evaluation

package resolver_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/arthur-debert/cio/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	Name string
	Age  int
}

func TestMap_Identifiers(t *testing.T) {
	vars := resolver.Map{
		"name":   "Ada",
		"matrix": [][]int{{1, 2}, {3, 4}},
	}

	v, err := vars.Resolve("name")
	require.NoError(t, err)
	assert.Equal(t, "Ada", v.Raw)
	assert.Equal(t, `"Ada"`, v.Repr())
	assert.Equal(t, "Ada", v.Text())

	v, err = vars.Resolve("matrix")
	require.NoError(t, err)
	assert.Equal(t, "[[1, 2], [3, 4]]", v.Repr())

	_, err = vars.Resolve("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUndefinedVariable))
}

func TestMap_Expressions(t *testing.T) {
	vars := resolver.Map{
		"age":    30,
		"height": 1.5,
		"name":   "lovelace",
		"user":   user{Name: "Grace", Age: 85},
	}

	tests := []struct {
		expr string
		want any
	}{
		{"age * 12", 360},
		{"height * 100.0", 150.0},
		{"upper(name)", "LOVELACE"},
		{"user.Name", "Grace"},
		{"age > 18 ? 'adult' : 'minor'", "adult"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			v, err := vars.Resolve(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Raw)
		})
	}
}

func TestMap_EvaluateError(t *testing.T) {
	vars := resolver.Map{"age": 30}

	_, err := vars.Resolve("age +")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEvaluate))
}

func TestFunc(t *testing.T) {
	f := resolver.Func(func(expr string) (any, error) {
		if expr == "x" {
			return []string{"a"}, nil
		}
		return nil, stderrors.New("nope")
	})

	v, err := f.Resolve("x")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, v.Repr())

	_, err = f.Resolve("y")
	assert.Error(t, err)
}
