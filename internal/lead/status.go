// Package lead holds the lead pipeline rules shared by the CRM screens:
// the status taxonomy, the list filter engine and the CSV export.
package lead

// Status lifecycle stage of a lead.
type Status string

const (
	StatusNew           Status = "new"
	StatusContacted     Status = "contacted"
	StatusInProgress    Status = "in_progress"
	StatusSold          Status = "sold"
	StatusNotInterested Status = "not_interested"
)

// Pipeline returns the statuses in display order. The flow the UI implies is
// new -> contacted -> in_progress -> sold/not_interested, but transitions are
// not restricted: operators may move a lead to any stage at any time.
func Pipeline() []Status {
	return []Status{
		StatusNew,
		StatusContacted,
		StatusInProgress,
		StatusSold,
		StatusNotInterested,
	}
}

// ParseStatus validates raw input against the closed status set.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.Valid()
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusInProgress, StatusSold, StatusNotInterested:
		return true
	}
	return false
}

// Label human readable English label for the status.
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusContacted:
		return "Contacted"
	case StatusInProgress:
		return "In Progress"
	case StatusSold:
		return "Sold"
	case StatusNotInterested:
		return "Not Interested"
	}
	return string(s)
}
