// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package commitrule implements the deterministic DAG commit rule: it
// converts the partially-ordered DAG of certified nodes into a totally-
// ordered sequence of OrderedBlocks batches, identically on every
// honest validator. It is grounded directly on Aptos's
// consensus/src/dag/commit_rule.rs, translated into Go's interface and
// error-handling idiom: a rejected downstream send is returned as an
// error, while an invariant violation still panics with an
// *InvariantError.
package commitrule

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/dagcommit/anchor"
	"github.com/luxfi/dagcommit/dag"
	dlog "github.com/luxfi/dagcommit/log"
	"github.com/luxfi/dagcommit/epoch"
	"github.com/luxfi/dagcommit/orderedblocks"
	"github.com/luxfi/log"
)

// Rule is the commit rule for one epoch. It is logically single-
// threaded: NewNode serializes concurrent callers behind mu, matching
// the DAG driver's own serialization of upcalls.
type Rule struct {
	mu sync.Mutex

	epoch    *epoch.State
	dagView  dag.View
	election anchor.Election
	sink     orderedblocks.Sink
	metrics  *Metrics
	log      log.Logger

	cursor       Cursor
	anchorParity dag.Round
}

// New builds a Rule for a fresh epoch with no prior commit: the cursor
// starts at round 0.
func New(epochState *epoch.State, dagView dag.View, election anchor.Election, sink orderedblocks.Sink, opts ...Opt) *Rule {
	return NewFromLastCommit(nil, epochState, dagView, election, sink, opts...)
}

// NewFromLastCommit builds a Rule resuming from the last anchor a
// collaborator's LedgerInfoWithSignatures-equivalent reports committed.
// Because anchor election is a pure function of round alone, no extra
// replay state is needed to reproduce the decisions a validator running
// since epoch start would have made.
func NewFromLastCommit(last *CommittedAnchor, epochState *epoch.State, dagView dag.View, election anchor.Election, sink orderedblocks.Sink, opts ...Opt) *Rule {
	r := &Rule{
		epoch:        epochState,
		dagView:      dagView,
		election:     election,
		sink:         sink,
		cursor:       cursorFrom(last),
		log:          dlog.NewDiscard(),
		anchorParity: defaultAnchorParity,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics, _ = NewMetrics(nil, "")
	}
	return r
}

// Opt configures optional Rule dependencies.
type Opt func(*Rule)

// WithLogger overrides the discard logger New installs by default.
func WithLogger(logger log.Logger) Opt {
	return func(r *Rule) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithMetricsRegistry registers the rule's series against reg, under
// namespace (or the package default if namespace is empty).
// Construction panics on registration failure since it only happens
// from a misconfigured caller (duplicate metric names), never from
// runtime DAG state.
func WithMetricsRegistry(reg prometheus.Registerer, namespace string) Opt {
	return func(r *Rule) {
		m, err := NewMetrics(reg, namespace)
		if err != nil {
			panic(fmt.Sprintf("commitrule: failed to register metrics: %v", err))
		}
		r.metrics = m
	}
}

// WithAnchorParity overrides the round parity anchor rounds sit on.
// The default (0) matches every other package in this module; this
// only exists so a deployment's genesis round can be pinned to 1
// without renumbering every round it certifies.
func WithAnchorParity(parity dag.Round) Opt {
	return func(r *Rule) {
		r.anchorParity = parity % 2
	}
}

// Cursor returns a snapshot of the rule's current commit cursor.
func (r *Rule) Cursor() Cursor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

// NewNode is the DAG layer's upcall whenever it admits a new certified
// node. It repeatedly advances the cursor until no further
// anchor below node's round can be committed.
func (r *Rule) NewNode(node *dag.CertifiedNode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.cursor.LowestUnorderedRound <= node.Round() {
		direct := r.findFirstAnchorWithEnoughVotes(node.Round())
		if direct == nil {
			return nil
		}

		commitAnchor := r.findFirstAnchorToCommit(direct)
		batch := r.finalizeOrder(commitAnchor)

		if err := r.sink.Send(batch); err != nil {
			r.log.Error("downstream sink rejected ordered blocks, treating as shutdown", "error", err)
			return fmt.Errorf("%w: %v", ErrSinkClosed, err)
		}
	}
	return nil
}
