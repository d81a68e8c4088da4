// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderHappyPath(t *testing.T) {
	require := require.New(t)

	cfg, err := NewBuilder().
		WithAnchorParity(1).
		WithFailedAnchorLogLevel("warn").
		WithMetricsNamespace("dagsim").
		WithSinkBacklog(128).
		Build()
	require.NoError(err)

	require.Equal(uint64(1), cfg.AnchorParity)
	require.Equal("warn", cfg.FailedAnchorLogLevel)
	require.Equal("dagsim", cfg.MetricsNamespace)
	require.Equal(128, cfg.SinkBacklog)
}

func TestBuilderStopsAtFirstError(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().
		WithAnchorParity(7).
		WithMetricsNamespace("never applied").
		Build()
	require.ErrorIs(err, ErrInvalidAnchorParity)
}

func TestBuilderRejectsInvalidLogLevel(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().WithFailedAnchorLogLevel("verbose").Build()
	require.ErrorIs(err, ErrInvalidLogLevel)
}

func TestBuilderRejectsEmptyNamespace(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().WithMetricsNamespace("").Build()
	require.ErrorIs(err, ErrEmptyMetricsNamespace)
}

func TestBuilderRejectsNonPositiveBacklog(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().WithSinkBacklog(0).Build()
	require.ErrorIs(err, ErrInvalidSinkBacklog)
}

func TestFromConfigSeedsBuilder(t *testing.T) {
	require := require.New(t)

	cfg, err := FromConfig(Local()).WithSinkBacklog(8).Build()
	require.NoError(err)
	require.Equal(8, cfg.SinkBacklog)
	require.Equal(Local().FailedAnchorLogLevel, cfg.FailedAnchorLogLevel)
}
