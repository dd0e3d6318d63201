package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRentalDays(t *testing.T) {
	t.Run("Same day counts as one", func(t *testing.T) {
		assert.Equal(t, int32(1), RentalDays(date("2024-01-15"), date("2024-01-15")))
	})

	t.Run("Both ends inclusive", func(t *testing.T) {
		// Jan 1 through Jan 3 = 3 chargeable days
		assert.Equal(t, int32(3), RentalDays(date("2024-01-01"), date("2024-01-03")))
	})

	t.Run("Cross month boundary", func(t *testing.T) {
		assert.Equal(t, int32(12), RentalDays(date("2024-01-25"), date("2024-02-05")))
	})

	t.Run("Cross year boundary", func(t *testing.T) {
		assert.Equal(t, int32(17), RentalDays(date("2023-12-25"), date("2024-01-10")))
	})

	t.Run("Leap day counted", func(t *testing.T) {
		assert.Equal(t, int32(3), RentalDays(date("2024-02-28"), date("2024-03-01")))
	})

	t.Run("Inverted range floors at one", func(t *testing.T) {
		// Callers reject this before pricing; the floor is a last guard.
		assert.Equal(t, int32(1), RentalDays(date("2024-01-05"), date("2024-01-01")))
	})
}

func TestRentalCost(t *testing.T) {
	tests := []struct {
		name       string
		days       int32
		dailyPrice int64
		qty        int32
		expected   int64
	}{
		{"Single unit single day", 1, 10000, 1, 10000},
		{"Three days qty 2", 3, 10000, 2, 60000},
		{"Month-long rental", 30, 111692, 1, 3350760},
		{"Large quantity", 7, 45000, 12, 3780000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RentalCost(tt.days, tt.dailyPrice, tt.qty))
		})
	}
}

func TestRentalDaysMatchesCalendarDelta(t *testing.T) {
	// days == (end - start).days + 1 over a spread of ranges
	start := date("2024-01-01")
	for delta := 0; delta < 60; delta++ {
		end := start.AddDate(0, 0, delta)
		assert.Equal(t, int32(delta+1), RentalDays(start, end))
	}
}
