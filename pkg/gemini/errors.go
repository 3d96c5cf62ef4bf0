package gemini

import "errors"

var (
	// ErrCallFailed reports a transport or API-level failure. Callers use it to
	// distinguish "the call itself failed" from "the call succeeded but the
	// content did not decode into what was expected".
	ErrCallFailed = errors.New("gemini: call failed")

	// ErrEmptyResponse reports a successful call that produced no candidates.
	ErrEmptyResponse = errors.New("gemini: no content generated")
)
