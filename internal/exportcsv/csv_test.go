package exportcsv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j3soon/nurse-scheduling-go/internal/extract"
)

func TestWriteProducesCSVRows(t *testing.T) {
	table := extract.Table{
		Rows: [][]string{
			{"date", "alice", "bob"},
			{"2025-01-01", "AM", "OFF"},
			{"2025-01-02", "OFF", "PM"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	expected := "date,alice,bob\n2025-01-01,AM,OFF\n2025-01-02,OFF,PM\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, extract.Table{}))
	assert.Empty(t, buf.String())
}

func TestWriteQuotesFieldsContainingCommas(t *testing.T) {
	table := extract.Table{Rows: [][]string{{"a,b", "c"}}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))
	assert.Equal(t, "\"a,b\",c\n", buf.String())
}
