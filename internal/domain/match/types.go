package match

// Lang is a canonical language tag. Every inbound tag (query parameter,
// Accept-Language header, corpus schema key) is normalized into this closed
// set before use.
type Lang string

const (
	LangKorean      Lang = "ko"
	LangJapanese    Lang = "ja"
	LangEnglish     Lang = "en"
	LangSimplified  Lang = "zh-hans"
	LangTraditional Lang = "zh-hant"
)

// Valid reports whether l belongs to the canonical tag set.
func (l Lang) Valid() bool {
	switch l {
	case LangKorean, LangJapanese, LangEnglish, LangSimplified, LangTraditional:
		return true
	}
	return false
}

// Provenance identifies which entry field a candidate string came from.
type Provenance string

const (
	FromQuestion       Provenance = "question"
	FromAlias          Provenance = "alias"
	FromCoreKeyword    Provenance = "keyword_core"
	FromRelatedKeyword Provenance = "keyword_related"
)

// Candidate is a single matchable string extracted from an entry.
type Candidate struct {
	Text string
	From Provenance
}

// Entry is one FAQ unit of the immutable corpus. Optional fields are zero
// values; matching degrades to empty candidate sets rather than failing.
type Entry struct {
	ID              string
	Question        TextField
	Aliases         ListField
	KeywordsCore    ListField
	KeywordsRelated ListField
	Answers         AnswerSet
	URL             string
	URLTitle        string
}

// Result is the outcome of a successful corpus scan. A nil *Result signals
// that no entry cleared the effective threshold.
type Result struct {
	Score       float64
	Entry       *Entry
	MatchedText string
	MatchedFrom Provenance
}

// Hints carries the request metadata consulted during language resolution.
type Hints struct {
	ExplicitTag    string
	AcceptLanguage string
}

// Request encapsulates one FAQ match query as received by the transport.
type Request struct {
	Question       string `json:"question"`
	Lang           string `json:"lang"`
	AcceptLanguage string `json:"-"`
}

// Response is returned to the HTTP transport.
type Response struct {
	Matched     bool       `json:"matched"`
	Question    string     `json:"question"`
	Lang        Lang       `json:"lang"`
	Score       float64    `json:"score,omitempty"`
	EntryID     string     `json:"entryId,omitempty"`
	MatchedText string     `json:"matchedText,omitempty"`
	MatchedFrom Provenance `json:"matchedFrom,omitempty"`
	Answer      string     `json:"answer,omitempty"`
	URL         string     `json:"url,omitempty"`
	URLTitle    string     `json:"urlTitle,omitempty"`
	DurationMs  int64      `json:"durationMs,omitempty"`
}

// TrendingQuery represents a frequently seen question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// TrendingReport aggregates hit and miss statistics for the trending endpoint.
type TrendingReport struct {
	Queries []TrendingQuery `json:"queries"`
	Misses  []TrendingQuery `json:"misses"`
}
