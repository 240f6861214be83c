package gst

import (
	"strconv"
	"strings"
)

// Jurisdiction says whether the counterparty sits in the home state.
type Jurisdiction int

const (
	IntraState Jurisdiction = iota + 1
	InterState
)

func (j Jurisdiction) String() string {
	switch j {
	case IntraState:
		return "intra_state"
	case InterState:
		return "inter_state"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (j Jurisdiction) MarshalText() ([]byte, error) {
	if j != IntraState && j != InterState {
		return nil, invalid("unknown jurisdiction %d", int(j))
	}
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *Jurisdiction) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "intra_state", "intra", "intrastate":
		*j = IntraState
	case "inter_state", "inter", "interstate":
		*j = InterState
	default:
		return invalid("unknown jurisdiction %q", string(text))
	}
	return nil
}

// ResolveJurisdiction compares the home state with the counterparty's.
// Either side may be a 2-digit GST state code or a 15-character GSTIN,
// whose first two digits are the state code.
func ResolveJurisdiction(home, counterparty string) (Jurisdiction, error) {
	h, err := StateCode(home)
	if err != nil {
		return 0, err
	}
	c, err := StateCode(counterparty)
	if err != nil {
		return 0, err
	}
	if h == c {
		return IntraState, nil
	}
	return InterState, nil
}

// StateCode normalises a state code or GSTIN to its 2-digit state code.
// Codes 01-38 are states/UTs, 97 is "other territory".
func StateCode(v string) (string, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	if len(v) == 15 {
		v = v[:2]
	}
	if len(v) == 1 {
		v = "0" + v
	}
	if len(v) != 2 {
		return "", invalid("%q is neither a state code nor a GSTIN", v)
	}
	code, err := strconv.Atoi(v)
	if err != nil || !((code >= 1 && code <= 38) || code == 97) {
		return "", invalid("%q is not a valid GST state code", v)
	}
	return v, nil
}
