// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commitrule

import (
	"fmt"

	"github.com/luxfi/dagcommit/dag"
	"github.com/luxfi/dagcommit/orderedblocks"
)

// finalizeOrder commits anchor: it records the anchors skipped since the
// cursor, advances the cursor, marks the anchor's entire unordered
// causal closure as ordered, and returns the batch to deliver. The
// cursor advance happens before the closure is collected; both happen
// while NewNode holds r.mu, so no other NewNode call observes one
// without the other. The DAG's exclusive lock is held only while
// ReachableMut walks the closure; the ordered flags are flipped
// afterwards through the returned statuses, outside that lock.
func (r *Rule) finalizeOrder(anchor *dag.CertifiedNode) orderedblocks.OrderedBlocks {
	if anchor.Round()%2 != r.anchorParity {
		panic(&InvariantError{Msg: fmt.Sprintf("anchor %s is not on anchor parity", anchor.Metadata())})
	}

	var failedAnchors []dag.Author
	for round := r.alignToAnchorParity(r.cursor.LowestUnorderedRound); round < anchor.Round(); round += 2 {
		failedAnchors = append(failedAnchors, r.election.GetAnchor(round))
	}

	r.cursor.LowestUnorderedRound = anchor.Round() + 1
	r.cursor.OrderedBlockID = anchor.Metadata()

	statuses := r.dagView.ReachableMut(anchor.Digest(), nil)
	blocks := make([]dag.Digest, 0, len(statuses))
	for _, status := range statuses {
		if status.Ordered() {
			panic(&InvariantError{Msg: fmt.Sprintf("node %s reached twice by finalize", status.Node().Digest())})
		}
		if err := status.MarkOrdered(); err != nil {
			panic(&InvariantError{Msg: err.Error()})
		}
		blocks = append(blocks, status.Node().Digest())
	}

	r.metrics.observeCommit(len(blocks), len(failedAnchors))
	if len(failedAnchors) > 0 {
		r.log.Debug("anchors skipped before commit", "count", len(failedAnchors), "anchor", anchor.Metadata())
	}

	return orderedblocks.OrderedBlocks{
		AnchorMetadata: anchor.Metadata(),
		Blocks:         blocks,
		FailedAnchors:  failedAnchors,
	}
}
