package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReservedDateTokenKeywordsAndWeekdays(t *testing.T) {
	assert.True(t, IsReservedDateToken(All))
	assert.True(t, IsReservedDateToken(KeywordFreedayLabor))
	assert.True(t, IsReservedDateToken("MONDAY"))
}

func TestIsReservedDateTokenLiteralShapes(t *testing.T) {
	assert.True(t, IsReservedDateToken("5"))
	assert.True(t, IsReservedDateToken("01-15"))
	assert.True(t, IsReservedDateToken("2025-01-15"))
	assert.True(t, IsReservedDateToken("2025-01-01~2025-01-07"))
}

func TestIsReservedDateTokenOrdinaryID(t *testing.T) {
	assert.False(t, IsReservedDateToken("payweek1"))
	assert.False(t, IsReservedDateToken("alice"))
}
