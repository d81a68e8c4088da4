// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commitrule

import "github.com/luxfi/dagcommit/dag"

// defaultAnchorParity is the round parity anchor rounds sit on when a
// Rule is built without an explicit WithAnchorParity option.
// lowest_unordered_round sits one past a committed anchor and so
// normally has the opposite parity; at epoch genesis, with no anchor
// committed yet, it may already sit on anchor parity.
const defaultAnchorParity = 0

// alignToAnchorParity rounds round up to the nearest round on the
// rule's anchor parity. This is needed whenever lowest_unordered_round
// is not itself on anchor parity — without it, stepping by 2 from an
// off-parity cursor would check only the wrong parity forever and
// never find an anchor again.
func (r *Rule) alignToAnchorParity(round dag.Round) dag.Round {
	if round%2 != r.anchorParity {
		return round + 1
	}
	return round
}

// findFirstAnchorWithEnoughVotes scans the anchor rounds from the
// cursor (rounded up to anchor parity) up to but not including
// targetRound, stepping by 2, and returns the first one whose node
// exists and carries a 2f+1-stake vote quorum.
func (r *Rule) findFirstAnchorWithEnoughVotes(targetRound dag.Round) *dag.CertifiedNode {
	for round := r.alignToAnchorParity(r.cursor.LowestUnorderedRound); round < targetRound; round += 2 {
		author := r.election.GetAnchor(round)
		node, ok := r.dagView.GetNode(round, author)
		if !ok {
			continue
		}
		if r.dagView.CheckVoteQuorum(node.Metadata(), r.epoch.Verifier) {
			return node
		}
	}
	return nil
}
