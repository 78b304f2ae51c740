package databrowser

import "strconv"

// Race identifies one of the demographic categories the data browser
// accepts in its `races` filter. The zero value is RaceAsian, matching
// the upstream category ordering.
type Race int

const (
	RaceAsian Race = iota
	RacePacificIslander
	RaceFreeForm
	RaceUnavailable
	RaceNativeAmerican
	RaceBlack
	RaceMixedMinority
	RaceWhite
	RaceJoint
)

// the API matches races by their literal display strings, not codes
var raceTokens = map[Race]string{
	RaceAsian:           "Asian",
	RacePacificIslander: "Native Hawaiian or Other Pacific Islander",
	RaceFreeForm:        "Free Form Text Only",
	RaceUnavailable:     "Race Not Available",
	RaceNativeAmerican:  "American Indian or Alaska Native",
	RaceBlack:           "Black or African American",
	RaceMixedMinority:   "2 or more minority races",
	RaceWhite:           "White",
	RaceJoint:           "Joint",
}

var raceNames = map[string]Race{
	"asian":            RaceAsian,
	"pacific-islander": RacePacificIslander,
	"free-form":        RaceFreeForm,
	"unavailable":      RaceUnavailable,
	"native-american":  RaceNativeAmerican,
	"black":            RaceBlack,
	"mixed-minority":   RaceMixedMinority,
	"white":            RaceWhite,
	"joint":            RaceJoint,
}

// WireToken returns the query string value the remote API expects for r.
func (r Race) WireToken() (string, error) {
	token, ok := raceTokens[r]
	if !ok {
		return "", &InvalidParameterError{
			Param:  "races",
			Value:  strconv.Itoa(int(r)),
			Reason: "not a known race category",
		}
	}
	return token, nil
}

func (r Race) String() string {
	token, ok := raceTokens[r]
	if !ok {
		return "Race(" + strconv.Itoa(int(r)) + ")"
	}
	return token
}

// ParseRace maps a short flag-style name (e.g. "black", "pacific-islander")
// to its Race value.
func ParseRace(name string) (Race, error) {
	r, ok := raceNames[name]
	if !ok {
		return 0, &InvalidParameterError{
			Param:  "races",
			Value:  name,
			Reason: "not a known race category",
		}
	}
	return r, nil
}

// Action identifies the disposition of a loan or application, the
// `actions_taken` filter. Wire codes follow the HMDA action taken
// numbering, starting at 1.
type Action int

const (
	ActionOriginated Action = iota + 1
	ActionApproved
	ActionDenied
	ActionWithdrawn
	ActionIncomplete
	ActionPurchased
	ActionPredenied
	ActionPreapproved
)

var actionNames = map[string]Action{
	"originated":  ActionOriginated,
	"approved":    ActionApproved,
	"denied":      ActionDenied,
	"withdrawn":   ActionWithdrawn,
	"incomplete":  ActionIncomplete,
	"purchased":   ActionPurchased,
	"predenied":   ActionPredenied,
	"preapproved": ActionPreapproved,
}

// WireToken returns the numeric action taken code as a string.
func (a Action) WireToken() (string, error) {
	if a < ActionOriginated || a > ActionPreapproved {
		return "", &InvalidParameterError{
			Param:  "actions_taken",
			Value:  strconv.Itoa(int(a)),
			Reason: "not a known action taken code",
		}
	}
	return strconv.Itoa(int(a)), nil
}

func (a Action) String() string {
	for name, action := range actionNames {
		if action == a {
			return name
		}
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

// ParseAction maps a short flag-style name (e.g. "denied") to its
// Action value.
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[name]
	if !ok {
		return 0, &InvalidParameterError{
			Param:  "actions_taken",
			Value:  name,
			Reason: "not a known action taken name",
		}
	}
	return a, nil
}
