package catalog

import "testing"

func rec(code, name string) Record {
	return Record{"CODIGO": code, "NOMBRE": name}
}

var testMapping = Mapping{CodeCol: "CODIGO", NameCol: "NOMBRE"}

func codes(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r["CODIGO"]
	}
	return out
}

func TestSearchExactBeatsPrefix(t *testing.T) {
	cat := []Record{
		rec("100", "Aspirina"),
		rec("1000", "Ibuprofeno"),
	}
	got := Search("100", cat, testMapping)
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	if got[0]["CODIGO"] != "100" || got[1]["CODIGO"] != "1000" {
		t.Errorf("order = %v, want [100 1000]", codes(got))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	cat := []Record{rec("1", "Algo")}
	if got := Search("", cat, testMapping); got != nil {
		t.Errorf("empty query: got %v, want nil", got)
	}
	if got := Search("   ", cat, testMapping); got != nil {
		t.Errorf("blank query: got %v, want nil", got)
	}
}

func TestSearchDiacriticFolding(t *testing.T) {
	cat := []Record{rec("77", "Médico familiar")}
	got := Search("medico", cat, testMapping)
	if len(got) != 1 {
		t.Fatalf("diacritic query missed: %v", got)
	}
}

func TestSearchPrefixVsFuzzyTier(t *testing.T) {
	cat := []Record{rec("A1", "Aspirina")}

	// "asp" matches the name literally at the start: prefix tier
	if got := Search("asp", cat, testMapping); len(got) != 1 {
		t.Fatalf("prefix query missed")
	}

	// "arn" appears in Aspirina only as a subsequence (a..r..n): fuzzy tier
	if got := Search("arn", cat, testMapping); len(got) != 1 {
		t.Fatalf("fuzzy query missed")
	}

	// "nra" is not an ordered subsequence of aspirina: no match
	if got := Search("nra", cat, testMapping); len(got) != 0 {
		t.Fatalf("reversed subsequence should not match, got %v", got)
	}
}

func TestSearchNoAccumulationAcrossTiers(t *testing.T) {
	// "ASP" is both a code prefix and a name prefix; code tier (800) must
	// win over the lower name tier without summing.
	cat := []Record{
		rec("ASP100", "Paracetamol"), // code prefix: 800
		rec("X9", "Aspirina"),        // name prefix: 700
	}
	got := Search("asp", cat, testMapping)
	if len(got) != 2 || got[0]["CODIGO"] != "ASP100" {
		t.Errorf("order = %v, want ASP100 first", codes(got))
	}
}

func TestSearchLengthBonusWithinTier(t *testing.T) {
	// both are name-substring matches (tier 500); the shorter record wins
	cat := []Record{
		rec("L1", "Complejo vitamínico con aspirina añadida"),
		rec("S1", "Pura aspirina"),
	}
	got := Search("aspirina", cat, testMapping)
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	if got[0]["CODIGO"] != "S1" {
		t.Errorf("order = %v, want shorter record S1 first", codes(got))
	}
}

func TestSearchBonusNeverCrossesTiers(t *testing.T) {
	// a very long exact code match must still beat a tiny prefix match
	longCode := "100"
	cat := []Record{
		rec(longCode, "Producto con un nombre descomunalmente largo para la estanteria tres"),
		rec("1001", "X"),
	}
	got := Search("100", cat, testMapping)
	if got[0]["CODIGO"] != "100" {
		t.Errorf("order = %v, exact match must stay first", codes(got))
	}
}

func TestSearchStableTies(t *testing.T) {
	// identical code and name: equal scores keep catalog order
	cat := []Record{
		{"CODIGO": "A", "NOMBRE": "Gasas", "FILA": "1"},
		{"CODIGO": "A", "NOMBRE": "Gasas", "FILA": "2"},
	}
	got := Search("gasas", cat, testMapping)
	if len(got) != 2 || got[0]["FILA"] != "1" || got[1]["FILA"] != "2" {
		t.Errorf("tie order not stable: %v", got)
	}
}

func TestSearchNonMatchingExcluded(t *testing.T) {
	cat := []Record{rec("1", "Aspirina"), rec("2", "Vendas")}
	got := Search("zzz", cat, testMapping)
	if len(got) != 0 {
		t.Errorf("no-tier query returned %v", codes(got))
	}
}

func TestSubsequence(t *testing.T) {
	cases := []struct {
		q, t string
		want bool
	}{
		{"arn", "aspirina", true},
		{"asp", "aspirina", true},
		{"nra", "aspirina", false},
		{"", "aspirina", true},
		{"a", "", false},
		{"aspirina", "aspirina", true},
	}
	for _, c := range cases {
		if got := subsequence(c.q, c.t); got != c.want {
			t.Errorf("subsequence(%q, %q) = %v, want %v", c.q, c.t, got, c.want)
		}
	}
}
