// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dag

// Verifier checks whether a set of votes for an anchor carries enough
// stake to be irreversibly linked. commitrule wires epoch.Verifier in
// here; Store never imports epoch so the two packages cannot cycle —
// View depends only on this small interface.
type Verifier interface {
	// StakeOf returns the author's voting stake for the current epoch,
	// or zero if the author is not a member of the validator set.
	StakeOf(author Author) uint64
	// HasQuorum reports whether stake meets the epoch's 2f+1 threshold.
	HasQuorum(stake uint64) bool
}

// NodeStatus is a read-only observation of a node yielded by Reachable:
// the node itself, plus whether it has already been ordered.
type NodeStatus struct {
	node    *CertifiedNode
	ordered bool
}

func (s NodeStatus) Node() *CertifiedNode { return s.node }
func (s NodeStatus) Ordered() bool        { return s.ordered }

// MutableNodeStatus is the same observation yielded by ReachableMut,
// additionally capable of flipping the node's ordered flag exactly
// once.
type MutableNodeStatus struct {
	entry *nodeEntry
}

func (s *MutableNodeStatus) Node() *CertifiedNode { return s.entry.node }
func (s *MutableNodeStatus) Ordered() bool        { return s.entry.ordered }

// MarkOrdered flips the node's ordered flag from false to true. It
// returns ErrAlreadyOrdered if the flag was already set — the caller
// (commitrule's order finalizer) must treat that as an invariant
// violation, not a retryable error.
func (s *MutableNodeStatus) MarkOrdered() error {
	if s.entry.ordered {
		return ErrAlreadyOrdered
	}
	s.entry.ordered = true
	return nil
}

// View is the read/mutate contract a DAG store must offer the commit rule.
// Store implements it; commitrule.Rule depends only on View so it can
// be driven against a fake in tests.
type View interface {
	// GetNode looks up a certified node by (round, author). O(1).
	GetNode(round Round, author Author) (*CertifiedNode, bool)

	// CheckVoteQuorum reports whether the nodes at anchor.Round()+1
	// whose parents include anchor's digest carry stake >= the
	// verifier's 2f+1 threshold.
	CheckVoteQuorum(anchor NodeMetadata, verifier Verifier) bool

	// Reachable yields every still-unordered node reachable from start
	// via parent edges whose round is >= floor (all rounds if floor is
	// nil), in an order that respects topological order and is
	// otherwise a fixed deterministic total order on (round, author,
	// digest). Traversal stops at any already-ordered node — by
	// invariant its whole ancestry is ordered too, so there is nothing
	// further to find past it.
	Reachable(start Digest, floor *Round) []NodeStatus

	// ReachableMut is Reachable, but each yielded status also permits
	// marking the node ordered. Used only by the order finalizer.
	// Store holds its exclusive lock only for the walk itself;
	// MarkOrdered on a returned status does not take that lock.
	ReachableMut(start Digest, floor *Round) []*MutableNodeStatus
}
