package suggestion

import (
	"fmt"
	"strconv"
	"strings"
)

// Navigation actions encoded in pager button custom IDs.
const (
	ActionPrev = "prev"
	ActionNext = "next"
)

// PageRequest is the typed form of the pager wire encoding
// "action|page|filter". The raw string is parsed once at the interaction
// boundary and never travels further.
type PageRequest struct {
	Action string
	Page   int
	Filter string
}

// ParsePageRequest decodes a pager custom ID. A malformed page falls back to
// 0 and a missing or unrecognized filter to "all".
func ParsePageRequest(customID string) PageRequest {
	parts := strings.Split(customID, "|")
	req := PageRequest{Action: parts[0], Filter: "all"}
	if len(parts) > 1 {
		if p, err := strconv.Atoi(parts[1]); err == nil && p > 0 {
			req.Page = p
		}
	}
	if len(parts) > 2 {
		req.Filter = NormalizeFilter(parts[2])
	}
	return req
}

// CustomID re-encodes the request for the next round trip.
func (r PageRequest) CustomID() string {
	return fmt.Sprintf("%s|%d|%s", r.Action, r.Page, r.Filter)
}

// Step applies the navigation action to the carried page index and clamps
// the result, so prev on page 0 and next on the last page stay in place.
func (r PageRequest) Step(totalRows, pageSize int) int {
	page := r.Page
	switch r.Action {
	case ActionPrev:
		page--
	case ActionNext:
		page++
	}
	return ClampPage(page, totalRows, pageSize)
}
