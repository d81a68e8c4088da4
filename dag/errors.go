// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dag

import "errors"

var (
	// ErrDuplicateNode is returned by Store.Insert when a certified node
	// already exists for the node's (round, author) pair. The
	// certification layer is supposed to make this impossible for
	// honest validators; seeing it here means upstream let a Byzantine
	// equivocation through.
	ErrDuplicateNode = errors.New("dag: duplicate node for round/author")

	// ErrMissingParent is returned by Store.Insert when a node names a
	// parent digest that does not resolve to a certified node at
	// round-1.
	ErrMissingParent = errors.New("dag: parent not found at round-1")

	// ErrAlreadyOrdered is returned by MutableNodeStatus.MarkOrdered
	// when the node's ordered flag is already true. This is an
	// invariant violation: the commit rule must never
	// request that the same node be collected into two OrderedBlocks
	// batches.
	ErrAlreadyOrdered = errors.New("dag: node already marked ordered")
)
