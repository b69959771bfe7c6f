package store

import (
	"errors"
	"testing"
)

func TestClientInput_Validate(t *testing.T) {
	valid := ClientInput{FullName: "John Doe", Email: "john@example.com", Phone: "+1234567890", Language: "en"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name  string
		in    ClientInput
		field string
	}{
		{"empty name", ClientInput{Email: "a@b.c", Phone: "+1", Language: "en"}, "full_name"},
		{"blank name", ClientInput{FullName: "   ", Email: "a@b.c", Phone: "+1", Language: "en"}, "full_name"},
		{"empty email", ClientInput{FullName: "A", Phone: "+1", Language: "en"}, "email"},
		{"empty phone", ClientInput{FullName: "A", Email: "a@b.c", Language: "en"}, "phone"},
		{"bad language", ClientInput{FullName: "A", Email: "a@b.c", Phone: "+1", Language: "xx"}, "language"},
		{"empty language", ClientInput{FullName: "A", Email: "a@b.c", Phone: "+1"}, "language"},
	}

	for _, c := range cases {
		err := c.in.Validate()
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected ValidationError, got %v", c.name, err)
		}
		found := false
		for _, f := range vErr.Fields {
			if f == c.field {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: field %q not reported in %v", c.name, c.field, vErr.Fields)
		}
	}
}

func TestClientInput_ValidateCollectsAllFields(t *testing.T) {
	err := (&ClientInput{}).Validate()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 4 {
		t.Fatalf("expected 4 missing fields, got %v", vErr.Fields)
	}
}
