// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package epoch holds the immutable per-epoch state the commit rule
// consults but never mutates: the validator set, stake weights, and the
// 2f+1 quorum verifier. It follows the stake-weighted Manager/Set shape
// in validators/validators.go, trimmed to the single operation the
// commit rule needs — see DESIGN.md for why the deprecated dual
// Light/Weight API and the connector/callback-listener machinery were
// left behind rather than copied.
package epoch

import (
	"fmt"

	"github.com/luxfi/dagcommit/dag"
	"github.com/luxfi/dagcommit/utils/math"
	"github.com/luxfi/dagcommit/utils/set"
	"github.com/luxfi/dagcommit/utils/wrappers"
)

// Set is the stake-weighted validator set for one epoch. It is
// immutable once built: an epoch transition replaces the entire
// commit-rule instance rather than mutating a live set.
type Set struct {
	weights map[dag.Author]uint64
	total   uint64
	members set.Set[dag.Author]
}

// NewSet builds an epoch's validator set from stake weights. It
// collects every malformed entry via utils/wrappers.Errs rather than
// failing on the first one, so a caller validating a config file sees
// every problem at once.
func NewSet(weights map[dag.Author]uint64) (*Set, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyValidatorSet
	}

	errs := &wrappers.Errs{}
	var total uint64
	members := set.NewSet[dag.Author](len(weights))

	for author, w := range weights {
		if w == 0 {
			errs.Add(fmt.Errorf("%w: %s", ErrZeroStake, author))
			continue
		}
		sum, err := math.Add64(total, w)
		if err != nil {
			errs.Add(fmt.Errorf("%w: at validator %s", ErrStakeOverflow, author))
			continue
		}
		total = sum
		members.Add(author)
	}

	if errs.Errored() {
		return nil, errs.Err()
	}

	return &Set{weights: weights, total: total, members: members}, nil
}

// Has reports whether author is a member of this epoch's validator set.
func (s *Set) Has(author dag.Author) bool {
	return s.members.Contains(author)
}

// Weight returns the author's stake, or zero if they are not a member.
func (s *Set) Weight(author dag.Author) uint64 {
	return s.weights[author]
}

// TotalStake returns the sum of every member's stake.
func (s *Set) TotalStake() uint64 {
	return s.total
}

// Authors returns the validator set's members in no particular order.
// Callers that need a deterministic order (e.g. anchor.NewRoundRobin)
// must sort the result themselves.
func (s *Set) Authors() []dag.Author {
	return s.members.List()
}

// Len returns the number of validators in the set.
func (s *Set) Len() int {
	return s.members.Len()
}
