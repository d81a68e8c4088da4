// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultAndLocalAreValid(t *testing.T) {
	require.NoError(t, Default().Valid())
	require.NoError(t, Local().Valid())
}

func TestConfigValid(t *testing.T) {
	tests := []struct {
		name          string
		config        Config
		expectedError error
	}{
		{
			name:   "default",
			config: Default(),
		},
		{
			name: "anchor parity 1 is allowed",
			config: Config{
				AnchorParity:         1,
				FailedAnchorLogLevel: "info",
				MetricsNamespace:     "x",
				SinkBacklog:          1,
			},
		},
		{
			name: "anchor parity 2 is invalid",
			config: Config{
				AnchorParity:         2,
				FailedAnchorLogLevel: "info",
				MetricsNamespace:     "x",
				SinkBacklog:          1,
			},
			expectedError: ErrInvalidAnchorParity,
		},
		{
			name: "unrecognized log level",
			config: Config{
				FailedAnchorLogLevel: "verbose",
				MetricsNamespace:     "x",
				SinkBacklog:          1,
			},
			expectedError: ErrInvalidLogLevel,
		},
		{
			name: "empty metrics namespace",
			config: Config{
				FailedAnchorLogLevel: "info",
				MetricsNamespace:     "",
				SinkBacklog:          1,
			},
			expectedError: ErrEmptyMetricsNamespace,
		},
		{
			name: "zero sink backlog",
			config: Config{
				FailedAnchorLogLevel: "info",
				MetricsNamespace:     "x",
				SinkBacklog:          0,
			},
			expectedError: ErrInvalidSinkBacklog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Valid()
			if tt.expectedError == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestParseLevel(t *testing.T) {
	_, err := ParseLevel("debug")
	require.NoError(t, err)

	_, err = ParseLevel("not-a-level")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}
