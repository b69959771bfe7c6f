package lead

import "testing"

func TestParseStatus(t *testing.T) {
	for _, s := range Pipeline() {
		parsed, ok := ParseStatus(string(s))
		if !ok || parsed != s {
			t.Fatalf("ParseStatus(%q) = %q, %v", s, parsed, ok)
		}
	}

	for _, raw := range []string{"", "NEW", "closed", "qualified", "in progress"} {
		if _, ok := ParseStatus(raw); ok {
			t.Fatalf("ParseStatus(%q) should be rejected", raw)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	want := map[Status]string{
		StatusNew:           "New",
		StatusContacted:     "Contacted",
		StatusInProgress:    "In Progress",
		StatusSold:          "Sold",
		StatusNotInterested: "Not Interested",
	}
	for s, label := range want {
		if got := s.Label(); got != label {
			t.Fatalf("Label(%s) = %q, want %q", s, got, label)
		}
	}
}

func TestPipelineOrder(t *testing.T) {
	p := Pipeline()
	if len(p) != 5 {
		t.Fatalf("expected 5 statuses, got %d", len(p))
	}
	if p[0] != StatusNew || p[len(p)-1] != StatusNotInterested {
		t.Fatalf("unexpected pipeline order: %v", p)
	}
}
