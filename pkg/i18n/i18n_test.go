package i18n

import "testing"

func TestTranslate_NonEmptyForAllKeysAndLanguages(t *testing.T) {
	for _, lang := range Languages() {
		for _, key := range Keys() {
			if got := Translate(key, lang); got == "" {
				t.Fatalf("Translate(%q, %s) is empty", key, lang)
			}
		}
	}
}

func TestTranslate_Fallbacks(t *testing.T) {
	// Missing in a non-English table falls back to English; missing
	// everywhere comes back verbatim.
	if got := Translate("no_such_key", LangFR); got != "no_such_key" {
		t.Fatalf("expected key echo, got %q", got)
	}
	if got := Translate("form_name", LangHE); got == "" || got == "form_name" {
		t.Fatalf("expected Hebrew label for form_name, got %q", got)
	}
}

func TestIsRTL(t *testing.T) {
	if !IsRTL(LangHE) {
		t.Fatal("Hebrew must be RTL")
	}
	for _, lang := range []Language{LangEN, LangFR, LangRU} {
		if IsRTL(lang) {
			t.Fatalf("%s must not be RTL", lang)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		raw  string
		want Language
		ok   bool
	}{
		{"en", LangEN, true},
		{"FR", LangFR, true},
		{"he", LangHE, true},
		{"ru-RU", LangRU, true},
		{"fr_CA", LangFR, true},
		{" en ", LangEN, true},
		{"de", DefaultLanguage, false},
		{"", DefaultLanguage, false},
		{"english", DefaultLanguage, false},
	}

	for _, c := range cases {
		got, ok := ParseLanguage(c.raw)
		if got != c.want || ok != c.ok {
			t.Fatalf("ParseLanguage(%q) = %s, %v; want %s, %v", c.raw, got, ok, c.want, c.ok)
		}
	}
}

func TestTable_CoversReferenceKeySet(t *testing.T) {
	for _, lang := range Languages() {
		table := Table(lang)
		for _, key := range Keys() {
			if table[key] == "" {
				t.Fatalf("Table(%s) missing %q", lang, key)
			}
		}
	}
}
