// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package anchor provides the pluggable leader-election capability the
// commit rule consults to decide which author is the anchor of a given
// round: a single-method, stateless capability object in the same
// shape as the validator set's own accessors.
package anchor

import "github.com/luxfi/dagcommit/dag"

// Election is a pure, stateless function from round to the author
// elected to propose that round's anchor. It must return the same
// author for the same round on every validator and must be defined for
// every round, including rounds whose elected author never actually
// proposed a node (a "silent" anchor).
//
// Any internal state an implementation keeps (e.g. reputation scores)
// must be driven by externally-ordered inputs, never by the commit
// rule's own callbacks — otherwise two validators observing the same
// DAG in different orders could elect different anchors and fork the
// chain.
type Election interface {
	GetAnchor(round dag.Round) dag.Author
}

// RoundRobin is the simplest Election: authors cycle through a fixed,
// epoch-ordered validator list, one per anchor round.
type RoundRobin struct {
	validators []dag.Author
}

// NewRoundRobin builds a round-robin election over validators, in the
// order given. The order must be identical across validators — callers
// typically derive it from the epoch's validator set in a canonical
// (e.g. sorted-by-NodeID) order.
func NewRoundRobin(validators []dag.Author) *RoundRobin {
	cp := make([]dag.Author, len(validators))
	copy(cp, validators)
	return &RoundRobin{validators: cp}
}

// GetAnchor implements Election.
func (r *RoundRobin) GetAnchor(round dag.Round) dag.Author {
	n := uint64(len(r.validators))
	if n == 0 {
		var zero dag.Author
		return zero
	}
	// Anchors only ever fall on anchor-parity rounds, but
	// get_anchor must still answer for every round so the backfill
	// parity check can evaluate it against any ancestor.
	return r.validators[(round/2)%n]
}

var _ Election = (*RoundRobin)(nil)
