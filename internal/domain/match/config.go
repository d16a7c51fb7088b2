package match

// Config holds the matcher tuning knobs. Every value is overridable from the
// hosting configuration; the defaults below are the documented product choice.
type Config struct {
	// BaseThreshold is the baseline similarity a fuzzy match must reach.
	// Corpus revisions historically disagreed between 0.08 and 0.30; the
	// stricter 0.30 is the chosen default (see DESIGN.md).
	BaseThreshold float64
	// MinThreshold is a hard floor that no lax setting can undercut.
	MinThreshold float64
	// MinQueryChars rejects queries shorter than this rune count unless an
	// exact candidate match exists at that length.
	MinQueryChars int
	// DefaultLang is the resolution fallback when no hint decides.
	DefaultLang Lang
	// ChineseFallback decides ambiguous Chinese input. Simplified is the
	// chosen default; Traditional-region markers (tw/hk/mo/hant) always win.
	ChineseFallback Lang
	// TopStats bounds the trending/miss lists returned to the transport.
	TopStats int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		BaseThreshold:   0.30,
		MinThreshold:    0.25,
		MinQueryChars:   2,
		DefaultLang:     LangKorean,
		ChineseFallback: LangSimplified,
		TopStats:        10,
	}
}

// dynamicThreshold is strict for very short queries and relaxes toward the
// configured baseline as the query grows. Monotonically non-increasing in
// query length.
func dynamicThreshold(runeCount int, base float64) float64 {
	switch {
	case runeCount <= 1:
		return 1.0
	case runeCount == 2:
		return 0.65
	case runeCount == 3:
		return 0.50
	case runeCount == 4:
		return 0.40
	case runeCount == 5:
		return 0.35
	default:
		return base
	}
}

// effectiveThreshold combines the length-dependent curve with the configured
// floors. Taking the max of all three prevents any single lax setting from
// admitting noisy short-query matches.
func (c Config) effectiveThreshold(runeCount int) float64 {
	threshold := dynamicThreshold(runeCount, c.BaseThreshold)
	if c.BaseThreshold > threshold {
		threshold = c.BaseThreshold
	}
	if c.MinThreshold > threshold {
		threshold = c.MinThreshold
	}
	return threshold
}
