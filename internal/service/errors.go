package service

import "errors"

var (
	// ErrPhraseRequired is bad client input: missing, non-string, or empty
	// after trimming. Nothing downstream runs.
	ErrPhraseRequired = errors.New("phrase is required")
	// ErrRateLimited is an admission rejection. Recoverable by waiting out
	// the window.
	ErrRateLimited = errors.New("rate limited")
	// ErrConfigMissing means a required setting is absent. Fatal per
	// request; not recoverable without redeploy.
	ErrConfigMissing = errors.New("missing required configuration")
	// ErrEmptyCompletion means the provider answered but produced no usable
	// text. Surfaced as a dependency failure, never retried.
	ErrEmptyCompletion = errors.New("provider returned no usable completion")
)
