// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commitrule

import (
	"github.com/luxfi/dagcommit/anchor"
	"github.com/luxfi/dagcommit/dag"
)

// findFirstAnchorToCommit walks the causal ancestors of a known-
// committable direct anchor to find the earliest anchor it transitively
// subsumes. Each round narrows the floor to the cursor, so
// the loop strictly decreases current's round every iteration and
// terminates.
func (r *Rule) findFirstAnchorToCommit(direct *dag.CertifiedNode) *dag.CertifiedNode {
	current := direct
	for {
		floor := r.cursor.LowestUnorderedRound
		ancestors := r.dagView.Reachable(current.Digest(), &floor)

		var earliest *dag.CertifiedNode
		for _, status := range ancestors {
			node := status.Node()
			if node.Round() >= current.Round() {
				continue
			}
			if !isAnchorCandidate(node, current.Round(), r.election) {
				continue
			}
			if earliest == nil || node.Round() < earliest.Round() {
				earliest = node
			}
		}
		if earliest == nil {
			return current
		}
		current = earliest
	}
}

// isAnchorCandidate reports whether node sits at an anchor-parity round
// relative to anchorRound and was actually elected to propose that
// round. The XOR test makes the parity check
// explicit: a voting-round ancestor must never be mistaken for an
// anchor to commit.
func isAnchorCandidate(node *dag.CertifiedNode, anchorRound dag.Round, election anchor.Election) bool {
	if (node.Round()^anchorRound)&1 != 0 {
		return false
	}
	return node.Author() == election.GetAnchor(node.Round())
}
