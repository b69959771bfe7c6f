package lead

import (
	"strings"

	"luxrealty_backend/internal/model"
)

// FilterAll disables the status or language predicate.
const FilterAll = "all"

// Filter is the client list view state: three independent predicates that are
// intersected. Empty or "all" fields are inactive.
type Filter struct {
	Search   string
	Status   string
	Language string
}

// Apply returns the clients matching every active predicate. The result keeps
// the relative order of the input; nothing is re-sorted.
func (f Filter) Apply(clients []model.Client) []model.Client {
	out := make([]model.Client, 0, len(clients))
	for _, c := range clients {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f Filter) matches(c model.Client) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(c.FullName), term) &&
			!strings.Contains(strings.ToLower(c.Email), term) &&
			!strings.Contains(strings.ToLower(c.Phone), term) {
			return false
		}
	}

	if f.Status != "" && f.Status != FilterAll && c.Status != f.Status {
		return false
	}

	if f.Language != "" && f.Language != FilterAll && c.Language != f.Language {
		return false
	}

	return true
}
