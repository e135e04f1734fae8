package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWeightUnmarshalInteger(t *testing.T) {
	var w Weight
	require.NoError(t, yaml.Unmarshal([]byte("5"), &w))
	assert.Equal(t, Weight(5), w)
	assert.True(t, w.IsFinite())
}

func TestWeightUnmarshalNegative(t *testing.T) {
	var w Weight
	require.NoError(t, yaml.Unmarshal([]byte("-3"), &w))
	assert.Equal(t, Weight(-3), w)
}

func TestWeightUnmarshalPosInf(t *testing.T) {
	var w Weight
	require.NoError(t, yaml.Unmarshal([]byte(`"INF"`), &w))
	assert.True(t, w.IsPosInf())
	assert.False(t, w.IsFinite())
}

func TestWeightUnmarshalNegInf(t *testing.T) {
	var w Weight
	require.NoError(t, yaml.Unmarshal([]byte(`"-INF"`), &w))
	assert.True(t, w.IsNegInf())
}

func TestWeightUnmarshalInvalidToken(t *testing.T) {
	var w Weight
	err := yaml.Unmarshal([]byte(`"banana"`), &w)
	assert.Error(t, err)
}

func TestWeightString(t *testing.T) {
	assert.Equal(t, "INF", PosInf.String())
	assert.Equal(t, "-INF", NegInf.String())
	assert.Equal(t, "7", Weight(7).String())
}
