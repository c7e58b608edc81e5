package drelative_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/datawire/depoch/dinstant"
	"github.com/datawire/depoch/dlang"
	"github.com/datawire/depoch/drelative"
)

func TestDescribe(t *testing.T) {
	en := dlang.English()
	ref := dinstant.Date(2024, 3, 5, 12, 0, 0, 0)
	const day = 24 * time.Hour

	testcases := map[string]struct {
		Offset time.Duration
		Output string
	}{
		"same":              {0, "less than a minute ago"},
		"30s-later":         {30 * time.Second, "less than a minute ago"},
		"30s-earlier":       {-30 * time.Second, "less than a minute ago"},
		"1ms-earlier":       {-time.Millisecond, "less than a minute ago"},
		"59s-later":         {59 * time.Second, "less than a minute ago"},
		"1m-later":          {time.Minute, "in 1 minute"},
		"2m-earlier":        {-2 * time.Minute, "2 minutes ago"},
		"90m-later":         {90 * time.Minute, "in 1 hour"},
		"5h-earlier":        {-5*time.Hour - 59*time.Minute, "5 hours ago"},
		"3d-earlier":        {-3 * day, "3 days ago"},
		"29d-later":         {29 * day, "in 29 days"},
		"70d-later":         {70 * day, "in 2 months"},
		"355d-later":        {355 * day, "in 1 year"},
		"355d-earlier":      {-355 * day, "11 months ago"},
		"400d-earlier":      {-400 * day, "1 year ago"},
		"800d-later":        {800 * day, "in 2 years"},
		"800d-earlier":      {-800 * day, "2 years ago"},
		"elastic-threshold": {30304745 * time.Second, "in 1 year"},
		"below-elastic":     {30304744 * time.Second, "in 11 months"},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			target := dinstant.FromEpochMillis(ref.EpochMillis() + tcData.Offset.Milliseconds())
			assert.Equal(t, tcData.Output, drelative.Describe(ref, target, en))
		})
	}
}

func TestDescribeWords(t *testing.T) {
	en := dlang.English()
	ref := dinstant.Date(2024, 3, 5, 12, 0, 0, 0)
	later := dinstant.Date(2024, 3, 8, 12, 0, 0, 0)

	words := dlang.Direction{Future: "within", Past: "earlier"}
	assert.Equal(t, "within 3 days", drelative.Describe(ref, later, en, words))
	assert.Equal(t, "3 days earlier", drelative.Describe(later, ref, en, words))
	assert.Equal(t, "less than a minute earlier", drelative.Describe(ref, ref, en, words))

	// An empty word leaves no stray whitespace.
	bare := dlang.Direction{}
	assert.Equal(t, "3 days", drelative.Describe(ref, later, en, bare))
	assert.Equal(t, "3 days", drelative.Describe(later, ref, en, bare))
	assert.Equal(t, "less than a minute", drelative.Describe(ref, ref, en, bare))
}

func TestDescribeLanguage(t *testing.T) {
	nl := dlang.English()
	nl.Relative = dlang.Relative{
		Minute: "minuut", Hour: "uur", Day: "dag", Month: "maand", Year: "jaar",
		Less:      "minder dan een minuut",
		Direction: dlang.Direction{Future: "over", Past: "geleden"},
	}
	ref := dinstant.Date(2024, 3, 5, 12, 0, 0, 0)

	assert.Equal(t, "over 1 dag", drelative.Describe(ref, dinstant.Date(2024, 3, 6, 12, 0, 0, 0), nl))
	assert.Equal(t, "2 jaars geleden", drelative.Describe(ref, dinstant.Date(2022, 3, 5, 0, 0, 0, 0), nl))
	assert.Equal(t, "minder dan een minuut geleden", drelative.Describe(ref, ref, nl))
}

func TestBetween(t *testing.T) {
	ref := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "in 2 hours", drelative.Between(ref, ref.Add(150*time.Minute), dlang.English()))
	assert.Equal(t, "2 hours ago", drelative.Between(ref, ref.Add(-150*time.Minute), dlang.English()))
}
