package dinstant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/depoch/dinstant"
)

func TestParseDelta(t *testing.T) {
	testcases := map[string]dinstant.Delta{
		"+3 days":        {Amount: 3, Unit: dinstant.UnitDay},
		"3 days":         {Amount: 3, Unit: dinstant.UnitDay},
		"-2 weeks":       {Amount: -2, Unit: dinstant.UnitWeek},
		"2 weeks ago":    {Amount: -2, Unit: dinstant.UnitWeek},
		"-2 weeks ago":   {Amount: 2, Unit: dinstant.UnitWeek},
		"next month":     {Amount: 1, Unit: dinstant.UnitMonth},
		"next month ago": {Amount: -1, Unit: dinstant.UnitMonth},
		"last year":      {Amount: -1, Unit: dinstant.UnitYear},
		"last year ago":  {Amount: -1, Unit: dinstant.UnitYear},
		"  1 Day ":       {Amount: 1, Unit: dinstant.UnitDay},
		"NEXT WEEK":      {Amount: 1, Unit: dinstant.UnitWeek},
	}
	for expr, want := range testcases {
		got, err := dinstant.ParseDelta(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, want, got, expr)
	}

	for _, expr := range []string{"", "soon", "3", "days", "3 fortnights", "+ 3 days", "3 days hence", "next"} {
		_, err := dinstant.ParseDelta(expr)
		assert.ErrorIs(t, err, dinstant.ErrInvalidExpression, "%q", expr)
	}
}

func TestModify(t *testing.T) {
	testcases := map[string]struct {
		Start *dinstant.Instant
		Expr  string
		Want  ymd
	}{
		"days":                {dinstant.Date(2024, 1, 30, 0, 0, 0, 0), "+3 days", ymd{2024, 2, 2}},
		"weeks are flat":      {dinstant.Date(2024, 1, 1, 0, 0, 0, 0), "2 weeks", ymd{2024, 1, 15}},
		"weeks ago":           {dinstant.Date(2024, 1, 1, 0, 0, 0, 0), "1 week ago", ymd{2023, 12, 25}},
		"month rolls over":    {dinstant.Date(2023, 1, 31, 0, 0, 0, 0), "next month", ymd{2023, 3, 3}},
		"last year from leap": {dinstant.Date(2024, 2, 29, 0, 0, 0, 0), "last year", ymd{2023, 3, 1}},
		"years":               {dinstant.Date(2020, 6, 15, 0, 0, 0, 0), "-20 years", ymd{2000, 6, 15}},
	}
	for name, tc := range testcases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			_ = dateOf(tc.Start)
			require.NoError(t, tc.Start.Modify(tc.Expr))
			assert.Equal(t, tc.Want, dateOf(tc.Start))
		})
	}

	in := dinstant.Date(2024, 1, 1, 0, 0, 0, 0)
	before := in.EpochMillis()
	require.NoError(t, in.Modify("+1 week"))
	assert.Equal(t, int64(604800000), in.EpochMillis()-before)

	assert.ErrorIs(t, in.Modify("whenever"), dinstant.ErrInvalidExpression)
	assert.ErrorIs(t, in.Apply(dinstant.Delta{Amount: 1, Unit: "fortnight"}), dinstant.ErrInvalidExpression)
}
