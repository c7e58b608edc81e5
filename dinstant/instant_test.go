package dinstant_test

import (
	"context"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/depoch/dinstant"
	"github.com/datawire/depoch/dtime"
)

func TestFields(t *testing.T) {
	// Tuesday, 2024-03-05 14:07:09.123 UTC
	in := dinstant.Date(2024, 3, 5, 14, 7, 9, 123)

	assert.Equal(t, 2024, in.Year())
	assert.Equal(t, 3, in.Month())
	assert.Equal(t, 5, in.DayOfMonth())
	assert.Equal(t, 2, in.DayOfWeek())
	assert.Equal(t, 14, in.Hour())
	assert.Equal(t, 7, in.Minute())
	assert.Equal(t, 9, in.Second())
	assert.Equal(t, 123, in.Millisecond())
	assert.Equal(t, time.Date(2024, 3, 5, 14, 7, 9, 123e6, time.UTC).UnixMilli(), in.EpochMillis())
	assert.Equal(t, "UTC", in.ZoneAbbrev())
	assert.Equal(t, 0, in.ZoneOffset())
}

func TestEpochMillisRoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 1, -1, 1709647629123, -62135596800000, 253402300799999} {
		in := dinstant.FromEpochMillis(ms)
		assert.Equal(t, ms, in.EpochMillis())
		// Reading fields must not disturb the absolute time.
		_ = in.Year()
		assert.Equal(t, ms, in.EpochMillis())
	}
}

func TestMonthRangeAndStability(t *testing.T) {
	for ms := int64(-5e12); ms < 5e12; ms += 7777777777 {
		in := dinstant.FromEpochMillis(ms)
		m := in.Month()
		assert.GreaterOrEqual(t, m, 1)
		assert.LessOrEqual(t, m, 12)
		assert.Equal(t, m, in.Month())
		assert.Equal(t, in.DayOfWeek(), in.DayOfWeek())
	}
}

func TestZone(t *testing.T) {
	// 2024-03-05T23:30:00Z is already the 6th in UTC+05:30.
	in := dinstant.FromTime(time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC), dinstant.InZone("IST", 5*3600+1800))
	assert.Equal(t, 6, in.DayOfMonth())
	assert.Equal(t, 5, in.Hour())
	assert.Equal(t, 0, in.Minute())
	assert.Equal(t, "IST", in.ZoneAbbrev())
	assert.Equal(t, 19800, in.ZoneOffset())

	loc := time.FixedZone("EST", -5*3600)
	in = dinstant.FromTime(time.Date(2024, 3, 5, 2, 0, 0, 0, time.UTC), dinstant.InLocation(loc))
	assert.Equal(t, 4, in.DayOfMonth())
	assert.Equal(t, 21, in.Hour())

	in = dinstant.FromEpochMillis(0, dinstant.InLocation(nil))
	assert.Equal(t, time.UTC, in.Location())
}

func TestInLocationDaylightSaving(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	testcases := map[string]struct {
		Month      int
		WantAbbrev string
		WantOffset int
	}{
		"winter": {Month: 1, WantAbbrev: "EST", WantOffset: -5 * 3600},
		"summer": {Month: 7, WantAbbrev: "EDT", WantOffset: -4 * 3600},
	}
	for name, tc := range testcases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			want := time.Date(2024, time.Month(tc.Month), 4, 12, 0, 0, 0, ny)

			in := dinstant.Date(2024, tc.Month, 4, 12, 0, 0, 0, dinstant.InLocation(ny))
			assert.Equal(t, want.UnixMilli(), in.EpochMillis())
			assert.Equal(t, 12, in.Hour())
			assert.Equal(t, tc.WantAbbrev, in.ZoneAbbrev())
			assert.Equal(t, tc.WantOffset, in.ZoneOffset())

			in = dinstant.FromTime(want, dinstant.InLocation(ny))
			assert.Equal(t, 12, in.Hour())
			assert.Equal(t, tc.WantOffset, in.ZoneOffset())
		})
	}

	// The offset is pinned at construction and does not follow later transitions.
	in := dinstant.Date(2024, 7, 4, 12, 0, 0, 0, dinstant.InLocation(ny))
	require.NoError(t, in.Add(dinstant.Month, 6))
	assert.Equal(t, 12, in.Hour())
	assert.Equal(t, -4*3600, in.ZoneOffset())
}

func TestNow(t *testing.T) {
	boot := time.Date(2024, 1, 1, 0, 0, 30, 0, time.UTC)
	ctx := dtime.WithClock(context.Background(), dtime.NewFakeClock(boot))
	in := dinstant.Now(ctx)
	assert.Equal(t, boot.UnixMilli(), in.EpochMillis())
	assert.Equal(t, 30, in.Second())
}

func TestIsLeapYear(t *testing.T) {
	testcases := map[int]bool{
		2000: true,
		1900: false,
		2024: true,
		2023: false,
		2100: false,
		2400: true,
	}
	for year, want := range testcases {
		assert.Equal(t, want, dinstant.IsLeapYear(year), "year %d", year)
	}
	assert.True(t, dinstant.Date(2024, 7, 1, 0, 0, 0, 0).IsLeapYear())
}

func TestDayOfYear(t *testing.T) {
	testcases := []struct {
		In   *dinstant.Instant
		Want int
	}{
		{dinstant.Date(2023, 1, 1, 0, 0, 0, 0), 1},
		{dinstant.Date(2023, 1, 1, 23, 59, 59, 999), 1},
		{dinstant.Date(2023, 2, 1, 12, 0, 0, 0), 32},
		{dinstant.Date(2023, 12, 31, 0, 0, 0, 0), 365},
		{dinstant.Date(2024, 12, 31, 6, 0, 0, 0), 366},
		{dinstant.Date(2024, 3, 5, 0, 0, 0, 0), 65},
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.Want, tc.In.DayOfYear(), tc.In.Time().String())
	}
}

func TestWeekOfYear(t *testing.T) {
	// (65 + 5 - (2 + 10)) / 7 = 58 / 7
	assert.Equal(t, 8, dinstant.Date(2024, 3, 5, 0, 0, 0, 0).WeekOfYear())
	// Early January goes negative and must floor, not truncate: (1 + 1 - (6 + 10)) / 7 = -14/7
	assert.Equal(t, -2, dinstant.Date(2022, 1, 1, 0, 0, 0, 0).WeekOfYear())
	// (2 + 2 - (0 + 10)) / 7 = -6/7
	assert.Equal(t, -1, dinstant.Date(2022, 1, 2, 0, 0, 0, 0).WeekOfYear())
}

func TestClone(t *testing.T) {
	in := dinstant.Date(2024, 3, 5, 0, 0, 0, 0, dinstant.InZone("X", 3600))
	cp := in.Clone()
	require.NoError(t, cp.Add(dinstant.Day, 1))
	assert.Equal(t, 5, in.DayOfMonth())
	assert.Equal(t, 6, cp.DayOfMonth())
	assert.Equal(t, "X", cp.ZoneAbbrev())
}

func TestConcurrentReads(t *testing.T) {
	in := dinstant.Date(2024, 3, 5, 14, 7, 9, 0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = in.Year() + in.Month() + in.DayOfYear()
				_ = in.Add(dinstant.Second, 0)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 9, in.Second())
}
