package databrowser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryValuesDeterministic(t *testing.T) {
	q := Query{
		Year:    2019,
		States:  []string{"dc", "md"},
		Actions: []Action{ActionIncomplete, ActionDenied},
		Races:   []Race{RaceBlack, RaceWhite},
	}

	first, err := q.values()
	if err != nil {
		t.Fatal(err)
	}
	second, err := q.values()
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, first.Encode(), second.Encode())
}

func TestQueryValuesWireFormat(t *testing.T) {
	q := Query{
		Year:    2019,
		States:  []string{"dc"},
		Actions: []Action{ActionIncomplete},
		Races:   []Race{RaceBlack, RaceWhite},
	}

	params, err := q.values()
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "2019", params.Get("years"))
	require.Equal(t, "dc", params.Get("states"))
	require.Equal(t, "5", params.Get("actions_taken"))
	require.Equal(t, "Black or African American,White", params.Get("races"))
}

func TestQueryValuesOmitsEmptyFilters(t *testing.T) {
	q := Query{Year: 2020, States: []string{"dc", "md", "va"}}

	params, err := q.values()
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "dc,md,va", params.Get("states"))
	require.False(t, params.Has("actions_taken"))
	require.False(t, params.Has("races"))
}

func TestValidateYearRange(t *testing.T) {
	var invalid *InvalidParameterError

	for _, year := range []int{0, 1999, MinYear - 1, MaxYear + 1} {
		q := Query{Year: year, States: []string{"dc"}, Actions: []Action{ActionDenied}}
		err := q.validate(true)
		require.True(t, errors.As(err, &invalid), "year %d should be rejected", year)
		require.Equal(t, "years", invalid.Param)
	}

	q := Query{Year: MinYear, States: []string{"dc"}, Actions: []Action{ActionDenied}}
	require.NoError(t, q.validate(true))
}

func TestValidateStates(t *testing.T) {
	var invalid *InvalidParameterError

	for _, state := range []string{"", "XX", "District of Columbia", "d"} {
		q := Query{Year: 2019, States: []string{state}, Races: []Race{RaceJoint}}
		err := q.validate(true)
		require.True(t, errors.As(err, &invalid), "state %q should be rejected", state)
		require.Equal(t, "states", invalid.Param)
	}

	// case insensitive, stray spaces tolerated
	for _, state := range []string{"dc", "DC", " dc "} {
		q := Query{Year: 2019, States: []string{state}, Races: []Race{RaceJoint}}
		require.NoError(t, q.validate(true))
	}

	err := Query{Year: 2019, Races: []Race{RaceJoint}}.validate(true)
	require.True(t, errors.As(err, &invalid))
}

func TestValidateFilterGuard(t *testing.T) {
	q := Query{Year: 2019, States: []string{"dc"}}

	var invalid *InvalidParameterError
	err := q.validate(true)
	require.True(t, errors.As(err, &invalid))

	// institutions style endpoints don't need a filter
	require.NoError(t, q.validate(false))
}
