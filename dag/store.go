// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dag

import (
	"fmt"
	"sort"
	"sync"

	"github.com/luxfi/dagcommit/utils/bag"
	"github.com/luxfi/dagcommit/utils/math"
)

var _ View = (*Store)(nil)

// nodeEntry is a certified node plus its mutable ordered flag. Entries
// are never removed within an epoch.
type nodeEntry struct {
	node    *CertifiedNode
	ordered bool
}

// Store is an in-memory Dag: a mapping (round, author) -> CertifiedNode
// plus parent edges, guarded by a single reader/writer lock — anchor
// search and backfill take the shared lease, finalize takes the
// exclusive one via ReachableMut.
type Store struct {
	mu            sync.RWMutex
	byDigest      map[Digest]*nodeEntry
	byRoundAuthor map[Round]map[Author]*nodeEntry
}

// NewStore returns an empty Dag.
func NewStore() *Store {
	return &Store{
		byDigest:      make(map[Digest]*nodeEntry),
		byRoundAuthor: make(map[Round]map[Author]*nodeEntry),
	}
}

// Insert admits a certified node into the DAG. It enforces the two
// structural invariants a Dag must hold: no two certified nodes
// for the same (round, author), and every parent digest resolves to a
// certified node at round-1. Byzantine equivocation past certification
// is not this package's concern to detect beyond these checks — the
// certification layer is assumed to have already rejected it.
func (s *Store) Insert(node *CertifiedNode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := node.Metadata()
	if authors, ok := s.byRoundAuthor[meta.round]; ok {
		if _, exists := authors[meta.author]; exists {
			return fmt.Errorf("%w: round %d author %s", ErrDuplicateNode, meta.round, meta.author)
		}
	}

	if meta.round > 0 {
		parentRound := meta.round - 1
		for _, p := range node.Parents() {
			pe, ok := s.byDigest[p]
			if !ok || pe.node.Round() != parentRound {
				return fmt.Errorf("%w: node %s wants parent %s at round %d", ErrMissingParent, meta.digest, p, parentRound)
			}
		}
	}

	e := &nodeEntry{node: node}
	s.byDigest[meta.digest] = e
	if s.byRoundAuthor[meta.round] == nil {
		s.byRoundAuthor[meta.round] = make(map[Author]*nodeEntry)
	}
	s.byRoundAuthor[meta.round][meta.author] = e
	return nil
}

// GetNode implements View.
func (s *Store) GetNode(round Round, author Author) (*CertifiedNode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors, ok := s.byRoundAuthor[round]
	if !ok {
		return nil, false
	}
	e, ok := authors[author]
	if !ok {
		return nil, false
	}
	return e.node, true
}

// CheckVoteQuorum implements View. A vote for anchor A is any certified
// node at A.Round()+1 whose parent set includes A's digest.
func (s *Store) CheckVoteQuorum(anchor NodeMetadata, verifier Verifier) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	voters, ok := s.byRoundAuthor[anchor.round+1]
	if !ok {
		return false
	}

	votes := bag.New[Author]()
	for author, e := range voters {
		if hasParent(e.node, anchor.digest) {
			votes.Add(author)
		}
	}

	var support uint64
	for _, author := range votes.List() {
		sum, err := math.Add64(support, verifier.StakeOf(author))
		if err != nil {
			// Stake overflowed uint64; any realistic epoch is nowhere
			// near this, so treat it as an unambiguous quorum.
			return true
		}
		support = sum
	}
	return verifier.HasQuorum(support)
}

func hasParent(node *CertifiedNode, digest Digest) bool {
	for _, p := range node.Parents() {
		if p == digest {
			return true
		}
	}
	return false
}

// Reachable implements View.
func (s *Store) Reachable(start Digest, floor *Round) []NodeStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.collectReachable(start, floor)
	out := make([]NodeStatus, len(entries))
	for i, e := range entries {
		out[i] = NodeStatus{node: e.node, ordered: e.ordered}
	}
	return out
}

// ReachableMut implements View. It holds the store's exclusive lock
// while it walks the closure and releases it on return; the ordered
// flags are flipped later, through the returned statuses' MarkOrdered,
// without that lock.
func (s *Store) ReachableMut(start Digest, floor *Round) []*MutableNodeStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.collectReachable(start, floor)
	out := make([]*MutableNodeStatus, len(entries))
	for i, e := range entries {
		out[i] = &MutableNodeStatus{entry: e}
	}
	return out
}

// collectReachable walks causal ancestors of start (inclusive) via
// parent edges, stopping at any node whose round is below floor (every
// further ancestor would be too, since rounds strictly decrease along
// parent edges) and stopping at any node already marked ordered: by
// invariant an ordered node's entire ancestry is ordered too, so there
// is nothing further to find past it, and not pruning there is what
// would let finalize re-collect the same node twice: the ordered flag,
// not the floor, is what prevents double inclusion across successive
// commits. The result is sorted by (round, author, digest) so every
// validator produces byte-identical linearizations from the same DAG
// contents. Callers must hold s.mu.
func (s *Store) collectReachable(start Digest, floor *Round) []*nodeEntry {
	seen := map[Digest]bool{start: true}
	queue := []Digest{start}
	var included []*nodeEntry

	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]

		e, ok := s.byDigest[d]
		if !ok {
			continue
		}
		if e.ordered {
			continue
		}
		if floor != nil && e.node.Round() < *floor {
			continue
		}
		included = append(included, e)

		for _, p := range e.node.Parents() {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}

	sort.Slice(included, func(i, j int) bool {
		a, b := included[i].node.Metadata(), included[j].node.Metadata()
		if a.round != b.round {
			return a.round < b.round
		}
		if a.author != b.author {
			return a.author.String() < b.author.String()
		}
		return a.digest.String() < b.digest.String()
	})
	return included
}
