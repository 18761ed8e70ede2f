package extraction_test

import (
	"testing"

	"contractscan/pkg/extraction"

	"github.com/stretchr/testify/require"
)

func resolvedParties(t *testing.T, results ...extraction.Result) []string {
	t.Helper()

	parties, err := extraction.NewRecord(rawPayload(t, results...)).Parties()
	require.NoError(t, err)

	return parties
}

func TestParties_OrderPreserved(t *testing.T) {
	parties := resolvedParties(t,
		partyResult(score(0.5), value(0.9, "Zeta Corp."), value(0.8, "Alpha LLC")),
		partyResult(score(0.9), value(0.7, "Midway Inc.")),
	)
	// outer result order first, then inner value order; scores do not reorder
	require.Equal(t, []string{"Zeta Corp.", "Alpha LLC", "Midway Inc."}, parties)
}

func TestParties_CaseSensitiveDedup(t *testing.T) {
	parties := resolvedParties(t,
		partyResult(score(0.9),
			value(0.9, "NEWCO, INC."),
			value(0.8, "Newco, Inc."),
			value(0.7, "NEWCO, INC."),
		),
	)
	// identity is case-sensitive: differently-cased forms are distinct parties
	require.Equal(t, []string{"NEWCO, INC.", "Newco, Inc."}, parties)
}

func TestParties_DenylistCaseInsensitive(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{name: "lowercase", in: "signed"},
		{name: "capitalized", in: "Signed"},
		{name: "uppercase", in: "DELIVERED"},
		{name: "empty string", in: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parties := resolvedParties(t,
				partyResult(score(0.9), value(0.9, tc.in), value(0.8, "NEWCO, INC.")),
			)
			require.Equal(t, []string{"NEWCO, INC."}, parties)
		})
	}
}

func TestParties_ScoreFiltering(t *testing.T) {
	parties := resolvedParties(t,
		// absent sentence score: whole result out, regardless of value scores
		partyResult(nil, value(0.99, "Ghost Co.")),
		// zero score is below threshold, same as absent
		partyResult(score(0), value(0.99, "Zero Co.")),
		// qualifying result, but individual low-scored values drop out
		partyResult(score(0.9), value(0.1, "Weak Co."), value(0.9, "Strong Co.")),
	)
	require.Equal(t, []string{"Strong Co."}, parties)
}

func TestParties_ThresholdBoundary(t *testing.T) {
	// 0.25 is inclusive at both levels
	parties := resolvedParties(t,
		partyResult(score(0.25), value(0.25, "Boundary Co.")),
	)
	require.Equal(t, []string{"Boundary Co."}, parties)
}

func TestParties_OtherScanKeysIgnored(t *testing.T) {
	parties := resolvedParties(t,
		titleResult(score(0.9), value(0.9, "Non-Disclosure Agreement")),
		extraction.Result{ScanKey: "Signature", Score: score(0.9),
			ExtractedValues: []extraction.ExtractedValue{value(0.9, "John Hancock")}},
	)
	require.Empty(t, parties)
}
