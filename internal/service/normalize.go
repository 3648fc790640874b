package service

import (
	"strings"

	"github.com/arbiterhq/arbiter/internal/domain"
)

// Normalize parses one succeeded backend text into the three expected
// sections. When none of the markers are present the whole text is
// wrapped as the interpretation section; this fallback never fails,
// whatever the backend produced.
func Normalize(backend, text string) domain.NormalizedOutput {
	out := domain.NormalizedOutput{Backend: backend}

	markers := []struct {
		label  string
		target *string
	}{
		{markerEvidence, &out.Evidence},
		{markerInterpretation, &out.Interpretation},
		{markerRecommendation, &out.Recommendation},
	}

	type span struct {
		start, contentStart int
		target              *string
	}
	var spans []span
	for _, m := range markers {
		idx := indexASCIIFold(text, m.label)
		if idx < 0 {
			continue
		}
		spans = append(spans, span{start: idx, contentStart: idx + len(m.label), target: m.target})
	}

	if len(spans) == 0 {
		out.Interpretation = strings.TrimSpace(text)
		return out
	}

	// Sections run from each marker to the next marker in text order.
	for i := range spans {
		end := len(text)
		for j := range spans {
			if spans[j].start > spans[i].start && spans[j].start < end {
				end = spans[j].start
			}
		}
		*spans[i].target = strings.TrimSpace(text[spans[i].contentStart:end])
	}

	return out
}

// indexASCIIFold returns the byte offset of the first occurrence of
// marker in text, ignoring ASCII case. The markers are pure ASCII, so
// offsets found this way index text directly; case-folding a copy of
// the text would shift byte offsets for some Unicode runes.
func indexASCIIFold(text, marker string) int {
	if len(marker) == 0 {
		return -1
	}
	for i := 0; i+len(marker) <= len(text); i++ {
		match := true
		for j := 0; j < len(marker); j++ {
			c := text[i+j]
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			if c != marker[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
