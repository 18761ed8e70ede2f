package extraction

// Two scores appear in the engine output. The score on each result object is
// the sentence score: how likely it is that this span of text CONTAINS the
// relevant information. The score on each extracted-value object is the
// extraction score: how likely it is that this candidate IS the right value.
// Results rank first by sentence score, then by extraction score; the
// extraction score never outranks a strictly greater sentence score.

const (
	// minResultScore is the minimum sentence score for a result to qualify.
	// These are relative scores, not calibrated confidences.
	minResultScore = 0.25
	// minValueScore is the minimum extraction score for a candidate value.
	minValueScore = 0.25
)

// Scan keys emitted by the engine for the spans this service consumes.
const (
	scanKeyPartyName = "PartyName"
	scanKeyTitle     = "ContractTitle"
	// scanKeyTitleV2 is the grouped-schema title key. V2 results carry no
	// usable sentence score; the engine pre-filters them upstream.
	scanKeyTitleV2 = "ContractTitle_V2"
)

// Payload is the decoded form of a raw scan result document.
type Payload struct {
	Results []Result `json:"results"`
}

// Result is one detected sentence or phrase span.
type Result struct {
	// ScanKey tags what this span is believed to represent.
	ScanKey string `json:"scan-key"`
	// Score is the sentence score. A nil score means the result never
	// qualifies; it is not defaulted to a passing value.
	Score *float64 `json:"score"`
	// ExtractedValues are the candidate extractions for this span, in the
	// order the engine emitted them.
	ExtractedValues []ExtractedValue `json:"extracted-values"`
}

// ExtractedValue is one candidate extraction within a span.
type ExtractedValue struct {
	// Score is the extraction score of this candidate.
	Score float64 `json:"score"`
	// NormalizedValue is the candidate's canonical textual form.
	NormalizedValue string `json:"normalized-value"`
}

// qualifies reports whether the result's sentence score is present and clears
// the result threshold. An absent score and a too-low score reject alike.
func (r Result) qualifies() bool {
	return r.Score != nil && *r.Score >= minResultScore
}

// qualifyingValues returns the extracted values clearing the value threshold.
// It is a pure filter: the parsed structure is never narrowed in place, so
// strategies sharing a payload cannot observe each other's filtering.
func (r Result) qualifyingValues() []ExtractedValue {
	var out []ExtractedValue
	for _, v := range r.ExtractedValues {
		if v.Score >= minValueScore {
			out = append(out, v)
		}
	}

	return out
}
