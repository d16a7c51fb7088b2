package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The corpus survives in two historical shapes per field: a plain value or a
// per-language mapping. The raw types below absorb both shapes from YAML
// files and JSON payloads so the rest of the loader sees one representation.

type rawText struct {
	flat   string
	byLang map[string]string
}

func (t *rawText) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&t.flat)
	case yaml.MappingNode:
		return value.Decode(&t.byLang)
	default:
		return fmt.Errorf("text field: expected string or mapping, got %s", kindName(value.Kind))
	}
}

func (t *rawText) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		return json.Unmarshal(data, &t.flat)
	}
	return json.Unmarshal(data, &t.byLang)
}

type rawList struct {
	flat   []string
	byLang map[string][]string
}

func (l *rawList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		return value.Decode(&l.flat)
	case yaml.MappingNode:
		return value.Decode(&l.byLang)
	default:
		return fmt.Errorf("list field: expected sequence or mapping, got %s", kindName(value.Kind))
	}
}

func (l *rawList) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return json.Unmarshal(data, &l.flat)
	}
	return json.Unmarshal(data, &l.byLang)
}

type answerPair struct {
	key  string
	text string
}

// rawAnswers preserves document order, which backs the deterministic
// last-resort answer fallback.
type rawAnswers struct {
	pairs []answerPair
}

func (a *rawAnswers) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("answers: expected mapping, got %s", kindName(value.Kind))
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key, text string
		if err := value.Content[i].Decode(&key); err != nil {
			return err
		}
		if err := value.Content[i+1].Decode(&text); err != nil {
			return err
		}
		a.pairs = append(a.pairs, answerPair{key: key, text: text})
	}
	return nil
}

func (a *rawAnswers) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("answers: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var text string
		if err := dec.Decode(&text); err != nil {
			return err
		}
		a.pairs = append(a.pairs, answerPair{key: key, text: text})
	}
	return nil
}

// rawEntry is the on-disk / on-row FAQ entry shape, covering every schema
// revision the corpus accumulated: per-language or flat matching fields, a
// structured answers mapping, legacy answer_<lang> fields, and a single
// default answer.
type rawEntry struct {
	ID              string     `yaml:"id" json:"id"`
	Question        rawText    `yaml:"question" json:"question"`
	Aliases         rawList    `yaml:"aliases" json:"aliases"`
	KeywordsCore    rawList    `yaml:"keywords_core" json:"keywords_core"`
	KeywordsRelated rawList    `yaml:"keywords_related" json:"keywords_related"`
	Answers         rawAnswers `yaml:"answers" json:"answers"`
	AnswerKo        string     `yaml:"answer_ko" json:"answer_ko"`
	AnswerEn        string     `yaml:"answer_en" json:"answer_en"`
	AnswerJa        string     `yaml:"answer_ja" json:"answer_ja"`
	AnswerZhTw      string     `yaml:"answer_zh_tw" json:"answer_zh_tw"`
	AnswerZhCn      string     `yaml:"answer_zh_cn" json:"answer_zh_cn"`
	Answer          string     `yaml:"answer" json:"answer"`
	URL             string     `yaml:"url" json:"url"`
	URLTitle        string     `yaml:"url_title" json:"url_title"`
}

type corpusFile struct {
	Entries []rawEntry `yaml:"entries"`
}

func isJSONNull(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
