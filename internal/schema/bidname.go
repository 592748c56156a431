package schema

import "strings"

// BidName holds the parts of a bid folder name.
type BidName struct {
	Day    string
	ID     string
	Portal string
	GP     bool
	CityUF string
}

// DefaultBidName carries the defaults offered for a new bid.
//
//nolint:gochecknoglobals // fixed domain data
var DefaultBidName = BidName{
	Day:    "01",
	ID:     "CE001",
	Portal: "BLL",
	CityUF: "Salvador-BA",
}

// String returns "{day}_{id}_{portal}[_GP]_{city}", each part trimmed.
// For example "18_CE004_BLL_GP_Salvador-BA".
func (b BidName) String() string {
	parts := []string{
		strings.TrimSpace(b.Day),
		strings.TrimSpace(b.ID),
		strings.TrimSpace(b.Portal),
	}

	if b.GP {
		parts = append(parts, "GP")
	}

	parts = append(parts, strings.TrimSpace(b.CityUF))

	return strings.Join(parts, "_")
}
