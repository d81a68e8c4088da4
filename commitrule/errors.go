// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commitrule

import (
	"errors"
	"fmt"
)

// ErrSinkClosed is returned by Rule.NewNode when the downstream sink
// rejects delivery. The caller's runtime is expected to tear the epoch
// down rather than retry.
var ErrSinkClosed = errors.New("commitrule: downstream sink closed")

// InvariantError reports a corrupted DAG or a programming error: a node
// reached twice by the same commit, or an anchor-parity check that
// never should have passed. The rule halts loudly rather than emit an
// ambiguous order.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("commitrule: invariant violation: %s", e.Msg)
}
