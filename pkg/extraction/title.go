package extraction

// The engine's title schema evolved: the flat v1 scheme attaches confidence
// at the sentence level with a per-result threshold, while the grouped v2
// scheme pre-filters sentences upstream and relies on the value scores alone.
// Both shapes appear in production payloads, so both strategies always run
// and the resolver max-selects between their candidates. Adding a future
// schema version means adding a strategy to the list, not branching on a
// version flag.

// titleCandidate is one strategy's proposed title with its ranking score.
type titleCandidate struct {
	score float64
	value string
}

// titleStrategy proposes the best title candidate a schema version can find
// in the parsed payload, or reports that it found none.
type titleStrategy interface {
	bestTitle(p *Payload) (titleCandidate, bool)
}

// titleStrategies is the fixed strategy list evaluated by bestTitle.
// Earlier entries win exact score ties.
var titleStrategies = []titleStrategy{titleV1{}, titleV2{}} //nolint: gochecknoglobals

// bestTitle evaluates every schema strategy against the same payload and
// returns the candidate with the greatest score. Strategies' outputs are
// never merged, only compared.
func bestTitle(p *Payload) (string, bool) {
	var best titleCandidate
	found := false
	for _, s := range titleStrategies {
		c, ok := s.bestTitle(p)
		if !ok {
			continue
		}
		if !found || c.score > best.score {
			best = c
			found = true
		}
	}

	return best.value, found
}

// titleV1 implements the flat schema: the sentence score ranks results, and
// the extraction score only breaks ties among values within the winning
// result.
type titleV1 struct{}

func (titleV1) bestTitle(p *Payload) (titleCandidate, bool) {
	var (
		bestResult Result
		bestValues []ExtractedValue
		found      bool
	)
	for _, res := range p.Results {
		if res.ScanKey != scanKeyTitle || !res.qualifies() {
			continue
		}
		values := res.qualifyingValues()
		if len(values) == 0 {
			// A result whose candidates all fail the value threshold has
			// nothing to propose and must not shadow a lower-scored result
			// that does.
			continue
		}
		if !found || *res.Score > *bestResult.Score {
			bestResult = res
			bestValues = values
			found = true
		}
	}
	if !found {
		return titleCandidate{}, false
	}

	best := bestValues[0]
	for _, v := range bestValues[1:] {
		if v.Score > best.Score {
			best = v
		}
	}

	return titleCandidate{score: *bestResult.Score, value: best.NormalizedValue}, true
}

// titleV2 implements the grouped schema: no sentence threshold, all
// qualifying values pooled across results, ranked by extraction score alone.
type titleV2 struct{}

func (titleV2) bestTitle(p *Payload) (titleCandidate, bool) {
	var (
		best  ExtractedValue
		found bool
	)
	for _, res := range p.Results {
		if res.ScanKey != scanKeyTitleV2 {
			continue
		}
		for _, v := range res.qualifyingValues() {
			if !found || v.Score > best.Score {
				best = v
				found = true
			}
		}
	}
	if !found {
		return titleCandidate{}, false
	}

	return titleCandidate{score: best.Score, value: best.NormalizedValue}, true
}
