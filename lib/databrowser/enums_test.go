package databrowser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRaceWireTokens(t *testing.T) {
	for race := RaceAsian; race <= RaceJoint; race++ {
		token, err := race.WireToken()
		if err != nil {
			t.Fatal(err)
		}
		require.NotEmpty(t, token)
	}

	token, err := Race(99).WireToken()
	require.Empty(t, token)

	var invalid *InvalidParameterError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "races", invalid.Param)
}

func TestActionWireTokens(t *testing.T) {
	expected := map[Action]string{
		ActionOriginated:  "1",
		ActionApproved:    "2",
		ActionDenied:      "3",
		ActionWithdrawn:   "4",
		ActionIncomplete:  "5",
		ActionPurchased:   "6",
		ActionPredenied:   "7",
		ActionPreapproved: "8",
	}
	for action, want := range expected {
		token, err := action.WireToken()
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, want, token)
	}

	var invalid *InvalidParameterError
	_, err := Action(0).WireToken()
	require.True(t, errors.As(err, &invalid))
	_, err = Action(9).WireToken()
	require.True(t, errors.As(err, &invalid))
}

func TestParseEnums(t *testing.T) {
	race, err := ParseRace("pacific-islander")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, RacePacificIslander, race)

	action, err := ParseAction("preapproved")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, ActionPreapproved, action)

	var invalid *InvalidParameterError
	_, err = ParseRace("martian")
	require.True(t, errors.As(err, &invalid))
	_, err = ParseAction("shredded")
	require.True(t, errors.As(err, &invalid))
}
