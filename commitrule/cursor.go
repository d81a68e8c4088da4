// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commitrule

import "github.com/luxfi/dagcommit/dag"

// Cursor is the commit rule's only persistent state: the last committed
// anchor's identity and the smallest round not yet considered ordered.
// It advances monotonically and is owned exclusively by Rule; nothing
// outside this package ever mutates it.
type Cursor struct {
	OrderedBlockID       dag.NodeMetadata
	LowestUnorderedRound dag.Round
}

// CommittedAnchor is the minimal fact a collaborator's
// LedgerInfoWithSignatures-equivalent must supply to resume the commit
// rule after a restart or at epoch start.
type CommittedAnchor struct {
	Metadata dag.NodeMetadata
}

// cursorFrom derives the initial cursor from the last committed anchor.
// With no prior commit (epoch genesis), the cursor starts at round 0:
// round 0 is itself an anchor round, so the very first search considers
// it a candidate, matching a validator that has run since epoch start.
func cursorFrom(last *CommittedAnchor) Cursor {
	if last == nil {
		return Cursor{}
	}
	return Cursor{
		OrderedBlockID:       last.Metadata,
		LowestUnorderedRound: last.Metadata.Round() + 1,
	}
}
