package match

import "testing"

func TestScoreTiers(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		candidate string
		want      float64
	}{
		{name: "exact", query: "환불", candidate: "환불", want: 1.0},
		{name: "exact ignores spacing", query: "환 불", candidate: "환불", want: 1.0},
		{name: "exact ignores case and width", query: "Refund", candidate: "ｒｅｆｕｎｄ", want: 1.0},
		{name: "containment", query: "환불", candidate: "환불 방법", want: containmentScore},
		{name: "containment either direction", query: "환불 방법 안내", candidate: "환불 방법", want: containmentScore},
		{name: "shared bigram", query: "abcd", candidate: "abxy", want: 1.0 / 5.0},
		{name: "char fallback", query: "ax", candidate: "ay", want: 1.0 / 3.0},
		{name: "empty query", query: "", candidate: "환불", want: 0},
		{name: "empty candidate", query: "환불", candidate: "", want: 0},
		{name: "no overlap", query: "짐", candidate: "환불", want: 0},
	}

	for _, tc := range cases {
		if got := Score(tc.query, tc.candidate); got != tc.want {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	pairs := [][2]string{
		{"환불", "환불 정책"},
		{"abcdef", "defabc"},
		{"にもつ", "荷物預かり"},
		{"a", "b"},
		{"", ""},
	}
	for _, pair := range pairs {
		score := Score(pair[0], pair[1])
		if score < 0 || score > 1 {
			t.Fatalf("Score(%q,%q)=%v out of [0,1]", pair[0], pair[1], score)
		}
	}
}

func TestJaccardTiersSymmetric(t *testing.T) {
	// Containment is tested one-sided above; the set-overlap tiers must be
	// symmetric since they are pure Jaccard.
	pairs := [][2]string{
		{"abcd", "abxy"},
		{"ax", "ay"},
		{"환불정책", "정책변경"},
	}
	for _, pair := range pairs {
		left := Score(pair[0], pair[1])
		right := Score(pair[1], pair[0])
		if left != right {
			t.Fatalf("Score(%q,%q)=%v but reversed=%v", pair[0], pair[1], left, right)
		}
	}
}

func TestBigramsShortString(t *testing.T) {
	if set := bigrams("a"); len(set) != 0 {
		t.Fatalf("expected empty bigram set for single rune, got %v", set)
	}
	set := bigrams("환불중")
	if len(set) != 2 {
		t.Fatalf("expected 2 bigrams, got %v", set)
	}
	for _, want := range []string{"환불", "불중"} {
		if _, ok := set[want]; !ok {
			t.Fatalf("missing bigram %q in %v", want, set)
		}
	}
}
