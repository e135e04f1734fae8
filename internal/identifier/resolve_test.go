package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
)

func TestResolveShiftTypes(t *testing.T) {
	idx, err := Build(sampleDoc())
	require.NoError(t, err)

	resolved, err := idx.ResolveShiftTypes(scenario.IDList{"D", "N"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, resolved)
}

func TestResolveShiftTypesUnknownID(t *testing.T) {
	idx, err := Build(sampleDoc())
	require.NoError(t, err)

	_, err = idx.ResolveShiftTypes(scenario.IDList{"nonexistent"})
	assert.Error(t, err)
}

func TestResolveDatesEmptyMeansAll(t *testing.T) {
	idx, err := Build(sampleDoc())
	require.NoError(t, err)

	resolved, err := idx.ResolveDates(nil)
	require.NoError(t, err)
	assert.Len(t, resolved, idx.NDays)
}

func TestResolvePeople(t *testing.T) {
	idx, err := Build(sampleDoc())
	require.NoError(t, err)

	resolved, err := idx.ResolvePeople(scenario.IDList{"seniors"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, resolved)
}

func TestIsUniverse(t *testing.T) {
	idx, err := Build(sampleDoc())
	require.NoError(t, err)

	all, err := idx.ResolveShiftTypes(scenario.IDList{scenario.All})
	require.NoError(t, err)
	assert.True(t, idx.IsUniverse(all))

	partial, err := idx.ResolveShiftTypes(scenario.IDList{"D"})
	require.NoError(t, err)
	assert.False(t, idx.IsUniverse(partial))
}
