// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package epoch

import (
	"github.com/luxfi/dagcommit/dag"
	dlog "github.com/luxfi/dagcommit/log"
	"github.com/luxfi/dagcommit/utils/math"
	"github.com/luxfi/log"
)

// Verifier checks the 2f+1 stake-weighted quorum threshold: the
// smallest fraction of stake that guarantees any two quorums overlap
// in at least one honest validator, even with f Byzantine. It
// implements dag.Verifier, so dag.Store.CheckVoteQuorum never needs to
// import this package.
type Verifier struct {
	set *Set
	log log.Logger
}

// NewVerifier wraps a validator set. A nil logger becomes a discard logger.
func NewVerifier(set *Set, logger log.Logger) *Verifier {
	if logger == nil {
		logger = dlog.NewDiscard()
	}
	return &Verifier{set: set, log: logger}
}

// StakeOf implements dag.Verifier.
func (v *Verifier) StakeOf(author dag.Author) uint64 {
	return v.set.Weight(author)
}

// HasQuorum implements dag.Verifier: stake carries a quorum iff it is
// at least 2f+1 out of the epoch's total stake, where total = 3f+1 (or
// more, for weighted stake that does not divide evenly by validator
// count).
func (v *Verifier) HasQuorum(stake uint64) bool {
	ok := stake >= quorumThreshold(v.set.TotalStake())
	v.log.Debug("evaluated vote quorum", "stake", stake, "total", v.set.TotalStake(), "quorum", ok)
	return ok
}

// quorumThreshold returns the minimum stake for 2f+1 given a total
// stake T assumed to represent 3f+1 (or more) voting power, computed as
// floor(2T/3)+1 without overflowing T*2 when T is astronomically large.
func quorumThreshold(total uint64) uint64 {
	doubled, err := math.Mul64(total, 2)
	if err != nil {
		return total/3*2 + 1
	}
	return doubled/3 + 1
}

var _ dag.Verifier = (*Verifier)(nil)
