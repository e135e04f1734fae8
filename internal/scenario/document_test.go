package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleDocument = `
apiVersion: v1
dates:
  range:
    startDate: "2025-01-01"
    endDate: "2025-01-07"
country: TW
people:
  items:
    - id: alice
    - id: bob
shiftTypes:
  items:
    - id: D
    - id: E
preferences:
  - type: AtMostOneShiftPerDay
  - type: ShiftTypeRequirement
    shift_type: D
    required_num_people: 1
    weight: INF
`

func TestDocumentUnmarshalYAML(t *testing.T) {
	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(sampleDocument), &doc))

	assert.Equal(t, "v1", doc.APIVersion)
	assert.Equal(t, "2025-01-01", doc.Dates.Range.StartDate)
	require.NotNil(t, doc.Country)
	assert.Equal(t, "TW", *doc.Country)
	assert.Len(t, doc.People.Items, 2)
	assert.Len(t, doc.ShiftTypes.Items, 2)
	require.Len(t, doc.Preferences, 2)
	assert.Equal(t, KindAtMostOneShiftPerDay, doc.Preferences[0].Kind())
	assert.Equal(t, KindShiftTypeRequirement, doc.Preferences[1].Kind())
}

func TestDocumentUnmarshalYAMLPropagatesPreferenceDecodeError(t *testing.T) {
	var doc Document
	err := yaml.Unmarshal([]byte("preferences:\n  - type: Bogus\n"), &doc)
	assert.Error(t, err)
}
