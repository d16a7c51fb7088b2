package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yanqian/faq-match/internal/domain/match"
	apperrors "github.com/yanqian/faq-match/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleYAML = `
entries:
  - id: refund-policy
    question:
      ko: "환불은 어떻게 하나요? "
      en: How do I get a refund?
    aliases:
      ko: ["환불 방법", " 환불 신청 ", ""]
      en: [refund request]
    keywords_core:
      ko: [환불]
    answers:
      KO: 환불 안내입니다.
      ZH_TW: 退款說明
      klingon: should be skipped
    url: https://example.com/refund
    url_title: Refund policy
  - id: opening-hours
    question: 영업시간이 어떻게 되나요?
    aliases: [영업시간, opening hours]
    answer_ko: 매일 10시부터 18시까지입니다.
    answer_en: Open daily from 10am to 6pm.
  - id: lost-and-found
    question: 분실물은 어디에 문의하나요?
    answer: 안내데스크로 문의해 주세요.
`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceLoadMixedSchemas(t *testing.T) {
	loader := NewLoader(match.LangSimplified, testLogger())
	source := NewFileSource([]string{writeCorpus(t, sampleYAML)}, loader, testLogger())

	entries, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	refund := entries[0]
	require.Equal(t, "refund-policy", refund.ID)
	require.Equal(t, "환불은 어떻게 하나요?", refund.Question.Resolve(match.LangKorean))
	require.Equal(t, "How do I get a refund?", refund.Question.Resolve(match.LangEnglish))
	require.Equal(t, []string{"환불 방법", "환불 신청"}, refund.Aliases.Resolve(match.LangKorean))
	require.Equal(t, "https://example.com/refund", refund.URL)
	require.Equal(t, "Refund policy", refund.URLTitle)

	// Loose answer keys normalize into canonical tags; unknown keys drop.
	ko, ok := refund.Answers.Get(match.LangKorean)
	require.True(t, ok)
	require.Equal(t, "환불 안내입니다.", ko)
	hant, ok := refund.Answers.Get(match.LangTraditional)
	require.True(t, ok)
	require.Equal(t, "退款說明", hant)
	_, ok = refund.Answers.Get(match.LangEnglish)
	require.False(t, ok)

	hours := entries[1]
	require.Equal(t, "영업시간이 어떻게 되나요?", hours.Question.Resolve(match.LangSimplified))
	require.Equal(t, []string{"영업시간", "opening hours"}, hours.Aliases.Resolve(match.LangJapanese))
	en, ok := hours.Answers.Get(match.LangEnglish)
	require.True(t, ok)
	require.Equal(t, "Open daily from 10am to 6pm.", en)

	lost := entries[2]
	require.False(t, lost.Answers.IsZero())
	require.Equal(t, "안내데스크로 문의해 주세요.", match.PickAnswer(&lost, match.LangKorean))
}

func TestFileSourceProbesPathsInOrder(t *testing.T) {
	loader := NewLoader(match.LangSimplified, testLogger())
	existing := writeCorpus(t, sampleYAML)
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	source := NewFileSource([]string{missing, existing}, loader, testLogger())
	entries, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestFileSourceNoCorpus(t *testing.T) {
	loader := NewLoader(match.LangSimplified, testLogger())
	source := NewFileSource([]string{filepath.Join(t.TempDir(), "absent.yaml")}, loader, testLogger())

	_, err := source.Load(context.Background())
	require.True(t, errors.Is(err, ErrNoCorpus))
}

func TestFileSourceMalformedYAML(t *testing.T) {
	loader := NewLoader(match.LangSimplified, testLogger())
	source := NewFileSource([]string{writeCorpus(t, "entries: [\n")}, loader, testLogger())

	_, err := source.Load(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "corpus_error"))
}

func TestRawEntryJSONDecode(t *testing.T) {
	payload := `{
		"id": "refund-policy",
		"question": {"ko": "환불은 어떻게 하나요?", "en": "How do I get a refund?"},
		"aliases": {"ko": ["환불 방법"]},
		"keywords_core": ["환불"],
		"answers": {"ko": "환불 안내입니다.", "zh-hant": "退款說明"},
		"url": "https://example.com/refund"
	}`

	var raw rawEntry
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	entry := NewLoader(match.LangSimplified, testLogger()).resolveEntry(raw)
	require.Equal(t, "refund-policy", entry.ID)
	require.Equal(t, "How do I get a refund?", entry.Question.Resolve(match.LangEnglish))
	require.Equal(t, []string{"환불"}, entry.KeywordsCore.Resolve(match.LangKorean))

	hant, ok := entry.Answers.Get(match.LangTraditional)
	require.True(t, ok)
	require.Equal(t, "退款說明", hant)
}

func TestRawAnswersPreserveDocumentOrder(t *testing.T) {
	var raw rawAnswers
	require.NoError(t, yaml.Unmarshal([]byte("en: first\nko: second\n"), &raw))
	require.Equal(t, []answerPair{{key: "en", text: "first"}, {key: "ko", text: "second"}}, raw.pairs)

	raw = rawAnswers{}
	require.NoError(t, json.Unmarshal([]byte(`{"ja":"a","en":"b"}`), &raw))
	require.Equal(t, []answerPair{{key: "ja", text: "a"}, {key: "en", text: "b"}}, raw.pairs)
}

func TestRawTextRejectsSequence(t *testing.T) {
	var raw rawText
	require.Error(t, yaml.Unmarshal([]byte("- one\n- two\n"), &raw))
}

func TestResolveEntryLegacyShadowedByStructured(t *testing.T) {
	raw := rawEntry{
		ID:       "refund-policy",
		Answers:  rawAnswers{pairs: []answerPair{{key: "ko", text: "구조화된 답변"}}},
		AnswerKo: "legacy answer",
	}
	entry := NewLoader(match.LangSimplified, testLogger()).resolveEntry(raw)

	ko, ok := entry.Answers.Get(match.LangKorean)
	require.True(t, ok)
	require.Equal(t, "구조화된 답변", ko)
}
