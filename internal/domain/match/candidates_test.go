package match

import "testing"

func localizedEntry() *Entry {
	return &Entry{
		ID: "refund-policy",
		Question: NewLocalizedText(map[Lang]string{
			LangKorean:  "환불은 어떻게 하나요?",
			LangEnglish: "How do I get a refund?",
		}),
		Aliases: NewLocalizedList(map[Lang][]string{
			LangKorean:  {"환불 방법", "환불 신청"},
			LangEnglish: {"refund request"},
		}),
		KeywordsCore: NewLocalizedList(map[Lang][]string{
			LangKorean: {"환불", "취소"},
		}),
		KeywordsRelated: NewLocalizedList(map[Lang][]string{
			LangKorean: {"결제 취소"},
		}),
	}
}

func TestBuildCandidatesLocalized(t *testing.T) {
	got := BuildCandidates(localizedEntry(), LangKorean)

	want := []Candidate{
		{Text: "환불은 어떻게 하나요?", From: FromQuestion},
		{Text: "환불 방법", From: FromAlias},
		{Text: "환불 신청", From: FromAlias},
		{Text: "환불", From: FromCoreKeyword},
		{Text: "취소", From: FromCoreKeyword},
		{Text: "결제 취소", From: FromRelatedKeyword},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate %d: expected %v got %v", i, want[i], got[i])
		}
	}
}

func TestBuildCandidatesLanguageFallback(t *testing.T) {
	// Japanese has no values anywhere; the builder falls back through the
	// fixed priority order, landing on Korean.
	got := BuildCandidates(localizedEntry(), LangJapanese)
	if len(got) == 0 {
		t.Fatal("expected fallback candidates, got none")
	}
	if got[0].Text != "환불은 어떻게 하나요?" || got[0].From != FromQuestion {
		t.Fatalf("unexpected first candidate: %v", got[0])
	}
}

func TestBuildCandidatesFlatSchema(t *testing.T) {
	entry := &Entry{
		ID:           "opening-hours",
		Question:     NewTextField("영업시간이 어떻게 되나요?"),
		Aliases:      NewListField([]string{"영업시간", "opening hours"}),
		KeywordsCore: NewListField([]string{"영업"}),
	}

	// Flat fields ignore the requested language entirely.
	for _, lang := range []Lang{LangKorean, LangEnglish, LangTraditional} {
		got := BuildCandidates(entry, lang)
		if len(got) != 4 {
			t.Fatalf("lang %s: expected 4 candidates got %d", lang, len(got))
		}
	}
}

func TestBuildCandidatesDeduplicates(t *testing.T) {
	entry := &Entry{
		ID:           "dup",
		Question:     NewTextField("환불"),
		Aliases:      NewListField([]string{"환불", "환불"}),
		KeywordsCore: NewListField([]string{"환불"}),
	}
	got := BuildCandidates(entry, LangKorean)
	// Same text under different provenance survives; duplicates within one
	// provenance collapse.
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates got %d: %v", len(got), got)
	}
}

func TestBuildCandidatesEmptyEntry(t *testing.T) {
	if got := BuildCandidates(&Entry{ID: "bare"}, LangKorean); len(got) != 0 {
		t.Fatalf("expected no candidates got %v", got)
	}
	if got := BuildCandidates(nil, LangKorean); got != nil {
		t.Fatalf("expected nil for nil entry got %v", got)
	}
}
