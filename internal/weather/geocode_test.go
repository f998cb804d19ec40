package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPlaceCountryFilterBeatsEarlierForeignMatch(t *testing.T) {
	places := []Place{
		{Name: "Paris", Admin1: "Texas", CountryCode: "MX"},
		{Name: "Paris", Admin1: "Texas", CountryCode: "US"},
	}

	got, ok := SelectPlace(places, ResolveStateName("TX"))

	require.True(t, ok)
	assert.Equal(t, places[1], got)
}

func TestSelectPlaceSubstringBeatsUnrelatedUSCandidate(t *testing.T) {
	places := []Place{
		{Name: "Springfield", Admin1: "Illinois", CountryCode: "US"},
		{Name: "Springfield", Admin1: "Commonwealth of Massachusetts", CountryCode: "US"},
	}

	got, ok := SelectPlace(places, "Massachusetts")

	require.True(t, ok)
	assert.Equal(t, places[1], got)
}

func TestSelectPlaceFirstMatchWins(t *testing.T) {
	places := []Place{
		{Name: "A", Admin1: "oregon", CountryCode: "us", Latitude: 1},
		{Name: "B", Admin1: "Oregon", CountryCode: "US", Latitude: 2},
	}

	got, ok := SelectPlace(places, "Oregon")

	require.True(t, ok)
	assert.Equal(t, "A", got.Name)
}

func TestSelectPlaceFallsBackToFirstUSCandidate(t *testing.T) {
	places := []Place{
		{Name: "Foreign", Admin1: "Ontario", CountryCode: "CA"},
		{Name: "NoAdmin", CountryCode: "US"},
		{Name: "Other", Admin1: "Nevada", CountryCode: "US"},
	}

	got, ok := SelectPlace(places, "Utah")

	require.True(t, ok)
	assert.Equal(t, "NoAdmin", got.Name)
}

func TestSelectPlaceNoUSCandidate(t *testing.T) {
	_, ok := SelectPlace([]Place{{Name: "Toronto", CountryCode: "CA"}}, "Ontario")
	assert.False(t, ok)

	_, ok = SelectPlace(nil, "Ontario")
	assert.False(t, ok)
}
