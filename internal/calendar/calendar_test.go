package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupUnsupportedCountry(t *testing.T) {
	_, err := Lookup("US")
	assert.Error(t, err, "should reject an unregistered country")
}

func TestLookupTW(t *testing.T) {
	pred, err := Lookup("TW")
	require.NoError(t, err)
	assert.NotNil(t, pred)
}
