package match

import "testing"

func TestPickAnswerRequestedLanguage(t *testing.T) {
	entry := &Entry{ID: "refund-policy"}
	entry.Answers.Set(LangKorean, "환불 안내")
	entry.Answers.Set(LangEnglish, "Refund guide")

	if got := PickAnswer(entry, LangEnglish); got != "Refund guide" {
		t.Fatalf("expected the English answer, got %q", got)
	}
	if got := PickAnswer(entry, LangKorean); got != "환불 안내" {
		t.Fatalf("expected the Korean answer, got %q", got)
	}
}

func TestPickAnswerFallbackChain(t *testing.T) {
	entry := &Entry{ID: "refund-policy"}
	entry.Answers.Set(LangEnglish, "Refund guide")
	entry.Answers.Set(LangJapanese, "返金のご案内")

	// Korean is missing; English is the first fallback after it.
	if got := PickAnswer(entry, LangKorean); got != "Refund guide" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	// Traditional Chinese is missing; Korean is tried first, then English.
	if got := PickAnswer(entry, LangTraditional); got != "Refund guide" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestPickAnswerLegacyDefault(t *testing.T) {
	entry := &Entry{ID: "opening-hours"}
	entry.Answers.SetDefault("매일 10:00-18:00")

	for _, lang := range []Lang{LangKorean, LangEnglish, LangSimplified} {
		if got := PickAnswer(entry, lang); got != "매일 10:00-18:00" {
			t.Fatalf("lang %s: expected the default answer, got %q", lang, got)
		}
	}
}

func TestPickAnswerChineseOnlyEntry(t *testing.T) {
	// Only Chinese answers exist; the fixed chain reaches Traditional before
	// Simplified for a Korean request.
	entry := &Entry{ID: "visa"}
	entry.Answers.Set(LangSimplified, "签证指南")
	entry.Answers.Set(LangTraditional, "簽證指南")

	if got := PickAnswer(entry, LangKorean); got != "簽證指南" {
		t.Fatalf("expected the Traditional fallback, got %q", got)
	}
}

func TestPickAnswerEmpty(t *testing.T) {
	if got := PickAnswer(&Entry{ID: "bare"}, LangKorean); got != "" {
		t.Fatalf("expected empty answer, got %q", got)
	}
	if got := PickAnswer(nil, LangKorean); got != "" {
		t.Fatalf("expected empty answer for nil entry, got %q", got)
	}
}

func TestAnswerSetFirstWriteWins(t *testing.T) {
	var answers AnswerSet
	answers.Set(LangTraditional, "簽證指南")
	answers.Set(LangTraditional, "later duplicate")

	if got, _ := answers.Get(LangTraditional); got != "簽證指南" {
		t.Fatalf("expected the first write to win, got %q", got)
	}
	if answers.First() != "簽證指南" {
		t.Fatalf("unexpected First(): %q", answers.First())
	}
}
