package extraction

import "strings"

// partyNameDenylist holds normalized values that are never party names, no
// matter how confidently the engine scored them. Comparison downcases the
// candidate, so only lowercase forms belong here.
var partyNameDenylist = map[string]struct{}{ //nolint: gochecknoglobals
	"":          {},
	"signed":    {},
	"delivered": {},
}

// partyNames runs the party pipeline over the parsed payload: select
// PartyName results, drop those with absent or too-low sentence scores,
// flatten their values in order, drop too-low extraction scores, project to
// normalized values, de-duplicate case-sensitively keeping first occurrence,
// and drop denylisted names (matched case-insensitively). An empty result is
// a valid outcome and drives the completeness flag, not an error.
func partyNames(p *Payload) []string {
	seen := make(map[string]struct{})
	var parties []string
	for _, res := range p.Results {
		if res.ScanKey != scanKeyPartyName || !res.qualifies() {
			continue
		}
		for _, v := range res.ExtractedValues {
			if v.Score < minValueScore {
				continue
			}
			name := v.NormalizedValue
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			if _, denied := partyNameDenylist[strings.ToLower(name)]; denied {
				continue
			}
			parties = append(parties, name)
		}
	}

	return parties
}
