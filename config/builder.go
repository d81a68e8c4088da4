// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

// Builder provides a fluent interface for constructing a Config. Each
// With method records its first error and becomes a no-op afterward,
// so a chain can be built without checking every intermediate step.
type Builder struct {
	config Config
	err    error
}

// NewBuilder returns a Builder seeded with Default.
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// FromConfig seeds the builder from an existing Config, e.g. Local(),
// instead of Default().
func FromConfig(c Config) *Builder {
	return &Builder{config: c}
}

// WithAnchorParity sets the round parity anchor rounds sit on.
func (b *Builder) WithAnchorParity(parity uint64) *Builder {
	if b.err != nil {
		return b
	}
	if parity > 1 {
		b.err = ErrInvalidAnchorParity
		return b
	}
	b.config.AnchorParity = parity
	return b
}

// WithFailedAnchorLogLevel sets Config.FailedAnchorLogLevel.
func (b *Builder) WithFailedAnchorLogLevel(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.config.FailedAnchorLogLevel = level
	return b
}

// WithMetricsNamespace sets the prefix the rule's prometheus series
// register under.
func (b *Builder) WithMetricsNamespace(namespace string) *Builder {
	if b.err != nil {
		return b
	}
	if namespace == "" {
		b.err = ErrEmptyMetricsNamespace
		return b
	}
	b.config.MetricsNamespace = namespace
	return b
}

// WithSinkBacklog sets the buffer size of the channel the sink
// delivers on.
func (b *Builder) WithSinkBacklog(backlog int) *Builder {
	if b.err != nil {
		return b
	}
	if backlog < 1 {
		b.err = ErrInvalidSinkBacklog
		return b
	}
	b.config.SinkBacklog = backlog
	return b
}

// Build validates the accumulated configuration and returns it.
func (b *Builder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}
	if err := b.config.Valid(); err != nil {
		return Config{}, err
	}
	return b.config, nil
}
