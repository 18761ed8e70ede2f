// Package extraction turns raw scan engine output into a contract record.
// The engine emits noisy, multi-candidate results; this package applies the
// score thresholds, reconciles the two title schema versions, and filters and
// de-duplicates party names. It performs no I/O and holds no shared state:
// each Record is an independent, request-scoped view over one raw payload.
package extraction

import (
	"encoding/json"

	"contractscan/pkg/serrors"
)

// DefaultContractType is used when no title candidate clears the thresholds,
// so that a contract record is still created when parties were detected.
const DefaultContractType = "Contract"

// Record wraps one raw scan result payload and lazily derives the contract
// fields from it. Parsing and derivation happen once per instance and are
// cached; all derivations are pure functions of the raw payload, so the
// unsynchronized recompute-and-overwrite caching is benign even if two
// goroutines race on first access.
type Record struct {
	raw string

	parsed    *Payload
	parseErr  error
	parseDone bool

	contractType string
	parties      []string
	partiesDone  bool
}

// NewRecord creates a Record over the given raw payload text. The payload is
// not parsed until first access.
func NewRecord(raw string) *Record {
	return &Record{raw: raw}
}

// Parsed decodes the raw payload, caching both the result and any error for
// the lifetime of the Record. A payload that is not valid JSON or lacks the
// top-level results array yields serrors.ErrMalformed; every derived accessor
// propagates it, since nothing meaningful can be read from such a payload.
func (r *Record) Parsed() (*Payload, error) {
	if r.parseDone {
		return r.parsed, r.parseErr
	}
	r.parseDone = true

	var p Payload
	if err := json.Unmarshal([]byte(r.raw), &p); err != nil {
		r.parseErr = serrors.Wrap(serrors.ErrMalformed, err, "could not decode scan payload")

		return nil, r.parseErr
	}
	if p.Results == nil {
		r.parseErr = serrors.With(serrors.ErrMalformed, "scan payload has no results")

		return nil, r.parseErr
	}
	r.parsed = &p

	return r.parsed, nil
}

// Type returns the resolved contract title, falling back to
// DefaultContractType when no candidate clears the thresholds.
func (r *Record) Type() (string, error) {
	if r.contractType != "" {
		return r.contractType, nil
	}

	p, err := r.Parsed()
	if err != nil {
		return "", err
	}

	title, ok := bestTitle(p)
	if !ok {
		title = DefaultContractType
	}
	r.contractType = title

	return r.contractType, nil
}

// Parties returns the unique, denylist-filtered party names in
// first-occurrence order. An empty result is a valid outcome, not an error.
func (r *Record) Parties() ([]string, error) {
	if r.partiesDone {
		return r.parties, nil
	}

	p, err := r.Parsed()
	if err != nil {
		return nil, err
	}

	r.parties = partyNames(p)
	r.partiesDone = true

	return r.parties, nil
}

// Complete reports whether the record carries full contract info: a non-empty
// type and at least one party. Type always resolves to a non-empty string, so
// in practice completeness is gated on parties being present.
func (r *Record) Complete() (bool, error) {
	typ, err := r.Type()
	if err != nil {
		return false, err
	}
	parties, err := r.Parties()
	if err != nil {
		return false, err
	}

	return typ != "" && len(parties) > 0, nil
}
