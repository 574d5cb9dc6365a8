// pkg/registry/registry_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test name-keyed registration, lookup and cloning

package registry_test

import (
	"sync"
	"testing"

	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/arthur-debert/cio/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	reg := registry.New[string]()

	require.NoError(t, reg.Register("a", "array"))
	assert.True(t, reg.Has("a"))

	err := reg.Register("a", "again")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	err = reg.Register("", "empty")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestReplace(t *testing.T) {
	reg := registry.New[int]()
	require.NoError(t, reg.Register("m", 1))
	require.NoError(t, reg.Replace("m", 2))

	got, ok := reg.Lookup("m")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestLookup(t *testing.T) {
	reg := registry.New[int]()
	registry.MustRegister(reg, "d", 4)

	v, ok := reg.Lookup("d")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = reg.Lookup("x")
	assert.False(t, ok)
}

func TestListSorted(t *testing.T) {
	reg := registry.New[int]()
	for _, name := range []string{"t", "a", "m"} {
		registry.MustRegister(reg, name, 0)
	}
	assert.Equal(t, []string{"a", "m", "t"}, reg.List())
}

func TestMustRegisterPanics(t *testing.T) {
	reg := registry.New[int]()
	registry.MustRegister(reg, "a", 1)
	assert.Panics(t, func() { registry.MustRegister(reg, "a", 2) })
}

func TestConcurrentLookup(t *testing.T) {
	reg := registry.New[int]()
	registry.MustRegister(reg, "a", 1)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, reg.Has("a"))
		}()
	}
	wg.Wait()
}
