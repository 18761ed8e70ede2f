// Package scanengine defines the abstraction for the external document
// scanning engine: submitting attachment content for analysis and retrieving
// the raw scan result payload once the engine has processed it.
package scanengine

import (
	"context"
	"time"
)

// RateLimitStatus describes the API rate-limit budget reported by the engine
// on every response.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Document is the content handed to the engine for scanning.
type Document struct {
	// Filename is the original attachment file name, passed through for the
	// engine's format detection.
	Filename string
	// ContentType is the MIME type of the content.
	ContentType string
	// Content is the raw document bytes.
	Content []byte
}

// SubmitRes represents the response of a successful document submission.
type SubmitRes struct {
	ID string // ID is the scan job identifier returned by the engine.
}

// Client is the abstraction for the scan engine. Implementations submit
// documents for scanning and later fetch the raw result payload. The payload
// is returned verbatim; decoding and scoring decisions belong to the
// extraction package.
//
//go:generate mockgen -package mockscanengine -source=interface.go -destination=mock/mockscanengine.go *
type Client interface {
	// SubmitDocument submits the document for scanning and returns the
	// engine's job ID plus the current rate-limit status.
	SubmitDocument(ctx context.Context, doc Document) (SubmitRes, RateLimitStatus, error)
	// Result retrieves the raw scan result payload for a previously submitted
	// job, along with the rate-limit status from the response. It returns
	// serrors.ErrNotFound while the result is not ready yet.
	Result(ctx context.Context, scanID string) (string, RateLimitStatus, error)
}
