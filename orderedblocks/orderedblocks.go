// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package orderedblocks is the downstream sink the commit rule emits
// to. It is grounded on commit_rule.rs's
// futures_channel::mpsc::UnboundedSender<OrderedBlocks> idiom: an
// unbounded channel so the driver's send can never block on execution
// backpressure, wrapped in a Sink interface so tests can substitute a
// synchronous collector.
package orderedblocks

import (
	"sync"

	"github.com/luxfi/dagcommit/dag"
	"github.com/luxfi/log"
)

// OrderedBlocks bundles one commit's causal closure plus the
// failed-anchor list for observability.
type OrderedBlocks struct {
	// AnchorMetadata is the committed anchor's identity; it becomes the
	// new ordered_block_id.
	AnchorMetadata dag.NodeMetadata

	// Blocks is the ordered list of node digests in the batch, in the
	// deterministic topological order from dag.Store.Reachable.
	Blocks []dag.Digest

	// FailedAnchors lists the authors elected for anchor rounds between
	// the previous cursor and this anchor that were not committed
	// directly — surfaced for leader-reputation feedback rather than
	// dropped; see DESIGN.md.
	FailedAnchors []dag.Author
}

// Sink is where the commit rule delivers OrderedBlocks. Delivery must
// be exactly-once and in order.
type Sink interface {
	Send(OrderedBlocks) error
}

// Channel is an unbounded Sink backed by a Go channel. Bounding, if a
// collaborator wants it, is the collaborator's responsibility — Channel
// never blocks a sender. A single forwarder goroutine is the only
// writer to ch, so batches always reach the consumer in the order Send
// was called, even past the point the buffer fills up.
type Channel struct {
	ch      chan OrderedBlocks
	log     log.Logger
	mu      sync.Mutex
	pending []OrderedBlocks
	wake    chan struct{}
}

// NewChannel returns a Channel and the receive-only end downstream
// consumers read from. backlog sizes ch's buffer. Send never blocks: it
// always appends the batch to an internal queue, which the forwarder
// goroutine drains into ch one batch at a time, in arrival order,
// waiting whenever ch's buffer is full. backlog <= 0 falls back to
// defaultBacklog.
func NewChannel(logger log.Logger, backlog int) (*Channel, <-chan OrderedBlocks) {
	if backlog <= 0 {
		backlog = defaultBacklog
	}
	c := &Channel{
		ch:   make(chan OrderedBlocks, backlog),
		log:  logger,
		wake: make(chan struct{}, 1),
	}
	go c.forward()
	return c, c.ch
}

// defaultBacklog is used by NewChannel when given a non-positive size.
const defaultBacklog = 4096

// Send implements Sink. It never blocks: the batch is appended to the
// pending queue under lock, and the forwarder goroutine is nudged to
// drain it.
func (c *Channel) Send(batch OrderedBlocks) error {
	c.mu.Lock()
	c.pending = append(c.pending, batch)
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
	return nil
}

// forward is the only goroutine that ever writes to ch, so concurrent
// Sends can never overtake one another between the queue and ch.
func (c *Channel) forward() {
	for range c.wake {
		for {
			c.mu.Lock()
			if len(c.pending) == 0 {
				c.mu.Unlock()
				break
			}
			batch := c.pending[0]
			c.pending = c.pending[1:]
			c.mu.Unlock()

			c.ch <- batch
		}
	}
}

var _ Sink = (*Channel)(nil)
