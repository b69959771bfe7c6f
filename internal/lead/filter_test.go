package lead

import (
	"testing"

	"luxrealty_backend/internal/model"
)

func sampleClients() []model.Client {
	return []model.Client{
		{FullName: "John Doe", Email: "john@example.com", Phone: "+1234567890", Language: "en", Status: "new"},
		{FullName: "Marie Dupont", Email: "marie@example.com", Phone: "+33123456789", Language: "fr", Status: "contacted"},
		{FullName: "David Cohen", Email: "david@example.com", Phone: "+972501234567", Language: "he", Status: "in_progress"},
		{FullName: "Anna Volkov", Email: "anna@example.com", Phone: "+79123456789", Language: "ru", Status: "new"},
		{FullName: "John Smith", Email: "smith@example.com", Phone: "+44123456789", Language: "en", Status: "sold"},
	}
}

func names(clients []model.Client) []string {
	out := make([]string, len(clients))
	for i, c := range clients {
		out[i] = c.FullName
	}
	return out
}

func TestFilter_Intersection(t *testing.T) {
	clients := sampleClients()
	f := Filter{Search: "john", Status: "new", Language: "en"}

	got := f.Apply(clients)
	if len(got) != 1 || got[0].FullName != "John Doe" {
		t.Fatalf("expected [John Doe], got %v", names(got))
	}
}

func TestFilter_Commutativity(t *testing.T) {
	clients := sampleClients()
	f := Filter{Search: "o", Status: "new", Language: "all"}

	combined := f.Apply(clients)

	// Applying the predicates one at a time, in both orders, must agree
	// with the combined filter.
	bySearchFirst := Filter{Status: f.Status}.Apply(Filter{Search: f.Search}.Apply(clients))
	byStatusFirst := Filter{Search: f.Search}.Apply(Filter{Status: f.Status}.Apply(clients))

	if len(combined) != len(bySearchFirst) || len(combined) != len(byStatusFirst) {
		t.Fatalf("predicate order changed the result: %v vs %v vs %v",
			names(combined), names(bySearchFirst), names(byStatusFirst))
	}
	for i := range combined {
		if combined[i].FullName != bySearchFirst[i].FullName || combined[i].FullName != byStatusFirst[i].FullName {
			t.Fatalf("predicate order changed the result: %v vs %v vs %v",
				names(combined), names(bySearchFirst), names(byStatusFirst))
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	clients := sampleClients()
	got := Filter{Language: "en"}.Apply(clients)

	want := []string{"John Doe", "John Smith"}
	if len(got) != len(want) {
		t.Fatalf("expected %d clients, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].FullName != name {
			t.Fatalf("order not preserved: expected %v, got %v", want, names(got))
		}
	}
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	clients := sampleClients()

	for _, term := range []string{"MARIE", "marie", "MaRiE", "marie@example"} {
		got := Filter{Search: term}.Apply(clients)
		if len(got) != 1 || got[0].FullName != "Marie Dupont" {
			t.Fatalf("search %q: expected [Marie Dupont], got %v", term, names(got))
		}
	}
}

func TestFilter_SearchMatchesPhone(t *testing.T) {
	got := Filter{Search: "+9725"}.Apply(sampleClients())
	if len(got) != 1 || got[0].FullName != "David Cohen" {
		t.Fatalf("expected [David Cohen], got %v", names(got))
	}
}

func TestFilter_AllMeansInactive(t *testing.T) {
	clients := sampleClients()

	inactive := []Filter{
		{},
		{Status: FilterAll, Language: FilterAll},
		{Search: "  "},
	}
	for _, f := range inactive {
		if got := f.Apply(clients); len(got) != len(clients) {
			t.Fatalf("filter %+v should be inactive, got %d of %d", f, len(got), len(clients))
		}
	}
}

func TestFilter_NoMatch(t *testing.T) {
	got := Filter{Search: "nobody"}.Apply(sampleClients())
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", names(got))
	}
}
