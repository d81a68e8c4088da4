// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the commit rule driver's operating parameters:
// the round parity anchors sit on, the log level a caller applies to
// the logger it gives the rule, the prometheus namespace its series register
// under, and the sink's async backlog size. None of these are safety
// parameters — the rule's only safety threshold, 2f+1 stake, is fixed
// and lives in epoch.Verifier, not here.
package config

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by Config.Valid.
var (
	ErrInvalidAnchorParity   = errors.New("config: anchor parity must be 0 or 1")
	ErrInvalidLogLevel       = errors.New("config: failed anchor log level is not a recognized slog level")
	ErrEmptyMetricsNamespace = errors.New("config: metrics namespace must not be empty")
	ErrInvalidSinkBacklog    = errors.New("config: sink backlog must be >= 1")
)

// Config holds the commit rule driver's operating parameters.
type Config struct {
	// AnchorParity is the round parity (0 or 1) anchor rounds sit on.
	// Every deployment in a given epoch must agree on this value; it is
	// not something an individual validator can choose independently.
	AnchorParity uint64 `json:"anchorParity"`

	// FailedAnchorLogLevel is a slog level name ("debug", "info",
	// "warn", "error") for the logger a caller hands to
	// commitrule.WithLogger; cmd/dagsim sets it as its logger's level.
	// commitrule.Rule always logs skipped anchors at debug, so a logger
	// set to a higher level drops that message.
	FailedAnchorLogLevel string `json:"failedAnchorLogLevel"`

	// MetricsNamespace prefixes the prometheus series commitrule.Rule
	// registers, e.g. "<namespace>_batch_size".
	MetricsNamespace string `json:"metricsNamespace"`

	// SinkBacklog is the buffer size of the channel orderedblocks.Channel
	// delivers on. Send never blocks; batches the consumer has not yet
	// taken wait in Channel's internal queue.
	SinkBacklog int `json:"sinkBacklog"`
}

// Default returns the configuration a production deployment starts
// from: anchor rounds on parity 0, failed anchors logged at debug, the
// package's own metrics namespace, and a generously sized backlog.
func Default() Config {
	return Config{
		AnchorParity:         0,
		FailedAnchorLogLevel: "debug",
		MetricsNamespace:     "commitrule",
		SinkBacklog:          4096,
	}
}

// Local returns a configuration suited to a single-process demo or
// test harness: a failed-anchor log level of info, which keeps the
// rule's debug-level skipped-anchor message out of the demo's output,
// and a small backlog, since a local run has no real backpressure to
// absorb.
func Local() Config {
	c := Default()
	c.FailedAnchorLogLevel = "info"
	c.SinkBacklog = 64
	return c
}

// Valid reports whether c is well-formed, returning the first sentinel
// error it finds.
func (c Config) Valid() error {
	if c.AnchorParity > 1 {
		return ErrInvalidAnchorParity
	}
	if _, err := ParseLevel(c.FailedAnchorLogLevel); err != nil {
		return err
	}
	if c.MetricsNamespace == "" {
		return ErrEmptyMetricsNamespace
	}
	if c.SinkBacklog < 1 {
		return ErrInvalidSinkBacklog
	}
	return nil
}

// ParseLevel converts a slog level name, one of "debug", "info", "warn",
// "error" (case insensitive, optionally with an offset such as
// "info+2"), to its slog.Level, or ErrInvalidLogLevel for anything else.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, ErrInvalidLogLevel
	}
	return level, nil
}
