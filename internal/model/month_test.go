package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.March}, ym)
	assert.Equal(t, "2024-03", ym.String())

	_, err = ParseYearMonth("03/2024")
	assert.Error(t, err)
}

func TestYearMonthOrdering(t *testing.T) {
	jan := YearMonth{Year: 2024, Month: time.January}
	dec := YearMonth{Year: 2023, Month: time.December}
	assert.True(t, dec.Before(jan))
	assert.False(t, jan.Before(dec))
	assert.False(t, jan.Before(jan))
}

func TestYearMonthContains(t *testing.T) {
	ym := YearMonth{Year: 2024, Month: time.May}
	assert.True(t, ym.Contains(time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC), time.UTC))
	assert.False(t, ym.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.UTC))
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), ym.Start(time.UTC))
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 7)
	assert.Equal(t, DefaultCategory, Categories[0])
	assert.Equal(t, 6, CategoryOther.Index())
	assert.True(t, Category("Y tế").Valid())
	assert.False(t, Category("Du lịch").Valid())
	assert.Equal(t, -1, Category("").Index())

	d := NewDraft()
	assert.Equal(t, DefaultCategory, d.Category)
	assert.Empty(t, d.Name)
}
