package peco

import "strings"

// County identifies one of the six counties in PECO's service territory.
// Outage data is reported per county using these exact codes.
type County string

const (
	Bucks        County = "BUCKS"
	Chester      County = "CHESTER"
	Delaware     County = "DELAWARE"
	Montgomery   County = "MONTGOMERY"
	Philadelphia County = "PHILADELPHIA"
	York         County = "YORK"
)

// counties is the closed set of valid county codes, in report order.
var counties = []County{
	Bucks,
	Chester,
	Delaware,
	Montgomery,
	Philadelphia,
	York,
}

// Counties returns all valid county codes.
func Counties() []County {
	out := make([]County, len(counties))
	copy(out, counties)
	return out
}

// ParseCounty converts a user-supplied name into a County. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseCounty(name string) (County, error) {
	c := County(strings.ToUpper(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", &InvalidCountyError{County: name}
	}
	return c, nil
}

// Valid reports whether c is one of the known county codes.
func (c County) Valid() bool {
	for _, known := range counties {
		if c == known {
			return true
		}
	}
	return false
}

func (c County) String() string {
	return string(c)
}
