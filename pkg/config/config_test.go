package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/mutability-assert/pkg/rules"
	"github.com/mrhapile/mutability-assert/pkg/types"
)

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "cache.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "com.example.MemoizingHolder", f.Class)
	require.Len(t, f.Assumptions, 2)

	as, err := f.Build()
	require.NoError(t, err)
	require.Len(t, as, 2)

	assert.Equal(t, rules.ForFields("cache", "lock").ModifiedAsUnobservableCachingStrategy().ID(), as[0].ID())
	assert.Equal(t, rules.ForFields("items").CopiedIntoUnmodifiableCollection().ID(), as[1].ID())
	assert.True(t, as[0].Match(types.NewFieldFinding(types.FieldCanBeReassigned, "lock")))
	assert.False(t, as[1].Match(types.NewFieldFinding(types.FieldCanBeReassigned, "items")))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	as, err := f.Build()
	require.NoError(t, err)
	assert.Empty(t, as)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("assumptions:\n  - fields: [a]\n    kind: not-modified-and-does-not-escape\n    extra: true\n"))
	assert.Error(t, err)
}

func TestBuild_EmptyFields(t *testing.T) {
	f, err := Parse([]byte("assumptions:\n  - fields: []\n    kind: not-modified-and-does-not-escape\n"))
	require.NoError(t, err)

	_, err = f.Build()
	require.ErrorIs(t, err, rules.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "assumption 0")
}

func TestBuild_UnknownKind(t *testing.T) {
	f, err := Parse([]byte("assumptions:\n  - fields: [a]\n    kind: frozen\n"))
	require.NoError(t, err)

	_, err = f.Build()
	require.ErrorIs(t, err, rules.ErrUnknownKind)
}

func TestLoad_BuildErrorNamesFile(t *testing.T) {
	path := filepath.Join("testdata", "empty_fields.yaml")
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)

	_, err = f.Build()
	require.ErrorIs(t, err, rules.ErrInvalidArgument)
	assert.Contains(t, err.Error(), path+": assumption 1")
}
