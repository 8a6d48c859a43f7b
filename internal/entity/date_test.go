package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

func TestMonthWindow(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month time.Month
		first string
		last  string
	}{
		{"leap february", 2024, time.February, "2024-02-01", "2024-02-29"},
		{"plain february", 2023, time.February, "2023-02-01", "2023-02-28"},
		{"century non leap", 1900, time.February, "1900-02-01", "1900-02-28"},
		{"four hundred leap", 2000, time.February, "2000-02-01", "2000-02-29"},
		{"thirty days", 2024, time.April, "2024-04-01", "2024-04-30"},
		{"december rolls year", 2023, time.December, "2023-12-01", "2023-12-31"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := entity.MonthWindow(tc.year, tc.month)
			assert.Equal(t, tc.first, entity.FormatDate(first))
			assert.Equal(t, tc.last, entity.FormatDate(last))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := entity.ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", entity.FormatDate(d))

	for _, bad := range []string{"", "2024-3-5", "2024/03/05", "2023-02-29", "2024-13-01", "2024-03-05T00:00:00Z"} {
		_, err := entity.ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatDateIgnoresClock(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	d := time.Date(2024, time.March, 5, 23, 59, 0, 0, loc)

	assert.Equal(t, "2024-03-05", entity.FormatDate(d))
}
