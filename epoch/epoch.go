// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package epoch

import (
	"github.com/luxfi/dagcommit/dag"
	"github.com/luxfi/log"
)

// State bundles the immutable per-epoch facts the commit rule reads:
// the validator set, its stake weights, and the quorum verifier built
// from them. An epoch transition replaces the
// whole State, and with it the whole commit-rule instance.
type State struct {
	Validators *Set
	Verifier   *Verifier
}

// NewState builds an EpochState from stake weights.
func NewState(weights map[dag.Author]uint64, logger log.Logger) (*State, error) {
	set, err := NewSet(weights)
	if err != nil {
		return nil, err
	}
	return &State{
		Validators: set,
		Verifier:   NewVerifier(set, logger),
	}, nil
}
