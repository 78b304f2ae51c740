package databrowser

import (
	"net/url"
	"strconv"
	"strings"
)

// the data browser publishes modified LAR data for these filing years
const (
	MinYear = 2018
	MaxYear = 2024
)

// two-letter USPS codes, includes DC and the territories the API covers
var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "DC": true, "FL": true,
	"GA": true, "HI": true, "ID": true, "IL": true, "IN": true,
	"IA": true, "KS": true, "KY": true, "LA": true, "ME": true,
	"MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true,
	"NJ": true, "NM": true, "NY": true, "NC": true, "ND": true,
	"OH": true, "OK": true, "OR": true, "PA": true, "RI": true,
	"SC": true, "SD": true, "TN": true, "TX": true, "UT": true,
	"VT": true, "VA": true, "WA": true, "WV": true, "WI": true,
	"WY": true, "AS": true, "GU": true, "MP": true, "PR": true,
	"VI": true, "UM": true, "FM": true, "MH": true, "PW": true,
}

// Query holds the filter parameters for a single data browser call.
// Build one per call, it is never mutated after construction.
type Query struct {
	Year    int
	States  []string
	Actions []Action
	Races   []Race
}

// validate checks the query before any request is built. requireFilter
// mirrors the upstream guard on the aggregation and loan endpoints:
// at least one of actions/races must be present.
func (q Query) validate(requireFilter bool) error {
	if q.Year < MinYear || q.Year > MaxYear {
		return &InvalidParameterError{
			Param:  "years",
			Value:  strconv.Itoa(q.Year),
			Reason: "data is only published for " + strconv.Itoa(MinYear) + " through " + strconv.Itoa(MaxYear),
		}
	}
	if len(q.States) == 0 {
		return &InvalidParameterError{
			Param:  "states",
			Value:  "",
			Reason: "at least one two-letter state abbreviation is required",
		}
	}
	for _, state := range q.States {
		trimmed := strings.ReplaceAll(state, " ", "")
		if !stateCodes[strings.ToUpper(trimmed)] {
			return &InvalidParameterError{
				Param:  "states",
				Value:  state,
				Reason: "not a two-letter state or territory abbreviation",
			}
		}
	}
	if requireFilter && len(q.Actions) == 0 && len(q.Races) == 0 {
		return &InvalidParameterError{
			Param:  "actions_taken,races",
			Value:  "",
			Reason: "at least one action or race filter is required for this endpoint",
		}
	}
	return nil
}

// values builds the query string parameters. Multi-value filters are
// comma joined in caller order; empty filters are omitted entirely so
// the remote API falls back to "all categories".
func (q Query) values() (url.Values, error) {
	params := url.Values{}
	params.Set("years", strconv.Itoa(q.Year))

	states := make([]string, len(q.States))
	for i, state := range q.States {
		states[i] = strings.ReplaceAll(state, " ", "")
	}
	params.Set("states", strings.Join(states, ","))

	if len(q.Actions) > 0 {
		tokens := make([]string, len(q.Actions))
		for i, action := range q.Actions {
			token, err := action.WireToken()
			if err != nil {
				return nil, err
			}
			tokens[i] = token
		}
		params.Set("actions_taken", strings.Join(tokens, ","))
	}

	if len(q.Races) > 0 {
		tokens := make([]string, len(q.Races))
		for i, race := range q.Races {
			token, err := race.WireToken()
			if err != nil {
				return nil, err
			}
			tokens[i] = token
		}
		params.Set("races", strings.Join(tokens, ","))
	}

	return params, nil
}
