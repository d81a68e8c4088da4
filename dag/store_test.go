// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"
)

func testAuthor(n byte) Author {
	var id ids.NodeID
	id[0] = n
	return id
}

func testDigest(n byte) Digest {
	var id ids.ID
	id[0] = n
	return id
}

// fakeVerifier assigns stake 1 to every author and declares quorum at
// quorumStake or more, avoiding a dependency on package epoch.
type fakeVerifier struct {
	quorumStake uint64
}

func (f fakeVerifier) StakeOf(Author) uint64   { return 1 }
func (f fakeVerifier) HasQuorum(s uint64) bool { return s >= f.quorumStake }

func mkNode(round Round, author byte, digest byte, parents ...byte) *CertifiedNode {
	ps := make([]Digest, len(parents))
	for i, p := range parents {
		ps[i] = testDigest(p)
	}
	meta := NewMetadata(round, testAuthor(author), testDigest(digest))
	return NewCertifiedNode(meta, ps, Certificate{})
}

func TestInsertGenesisNoParents(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	require.NoError(s.Insert(mkNode(0, 1, 1)))

	node, ok := s.GetNode(0, testAuthor(1))
	require.True(ok)
	require.Equal(testDigest(1), node.Digest())
}

func TestInsertRejectsDuplicate(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	require.NoError(s.Insert(mkNode(0, 1, 1)))
	err := s.Insert(mkNode(0, 1, 2))
	require.ErrorIs(err, ErrDuplicateNode)
}

func TestInsertRejectsMissingParent(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	err := s.Insert(mkNode(1, 1, 1, 9))
	require.ErrorIs(err, ErrMissingParent)
}

func TestGetNodeMissing(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	_, ok := s.GetNode(0, testAuthor(1))
	require.False(ok)
}

func TestCheckVoteQuorum(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	anchor := mkNode(0, 1, 1)
	require.NoError(s.Insert(anchor))
	require.NoError(s.Insert(mkNode(1, 1, 11, 1)))
	require.NoError(s.Insert(mkNode(1, 2, 12, 1)))
	require.NoError(s.Insert(mkNode(1, 3, 13)))

	// two voters point at the anchor's digest, one doesn't.
	require.False(s.CheckVoteQuorum(anchor.Metadata(), fakeVerifier{quorumStake: 3}))
	require.True(s.CheckVoteQuorum(anchor.Metadata(), fakeVerifier{quorumStake: 2}))
}

func TestCheckVoteQuorumNoVotersAtAll(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	anchor := mkNode(0, 1, 1)
	require.NoError(s.Insert(anchor))

	require.False(s.CheckVoteQuorum(anchor.Metadata(), fakeVerifier{quorumStake: 1}))
}

func TestReachableIsDeterministicallyOrdered(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	require.NoError(s.Insert(mkNode(0, 1, 1)))
	require.NoError(s.Insert(mkNode(0, 2, 2)))
	require.NoError(s.Insert(mkNode(1, 1, 11, 1, 2)))

	got := s.Reachable(testDigest(11), nil)
	require.Len(got, 3)
	// round 0 entries precede round 1, and within round 0 author 1 < author 2.
	require.Equal(Round(0), got[0].Node().Round())
	require.Equal(Round(0), got[1].Node().Round())
	require.Equal(Round(1), got[2].Node().Round())
	require.True(got[0].Node().Author().String() < got[1].Node().Author().String())
}

func TestReachableRespectsFloor(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	require.NoError(s.Insert(mkNode(0, 1, 1)))
	require.NoError(s.Insert(mkNode(1, 1, 11, 1)))
	require.NoError(s.Insert(mkNode(2, 1, 21, 11)))

	floor := Round(1)
	got := s.Reachable(testDigest(21), &floor)
	require.Len(got, 2)
}

func TestReachableMutMarksOrdered(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	require.NoError(s.Insert(mkNode(0, 1, 1)))
	require.NoError(s.Insert(mkNode(1, 1, 11, 1)))

	mutStatuses := s.ReachableMut(testDigest(11), nil)
	require.Len(mutStatuses, 2)
	for _, ms := range mutStatuses {
		require.False(ms.Ordered())
		require.NoError(ms.MarkOrdered())
	}

	statuses := s.Reachable(testDigest(11), nil)
	require.Empty(statuses, "Reachable yields only still-unordered nodes")
	for _, ms := range mutStatuses {
		require.True(ms.Ordered())
	}
}

func TestMarkOrderedTwiceFails(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	require.NoError(s.Insert(mkNode(0, 1, 1)))

	mutStatuses := s.ReachableMut(testDigest(1), nil)
	require.Len(mutStatuses, 1)
	require.NoError(mutStatuses[0].MarkOrdered())
	require.ErrorIs(mutStatuses[0].MarkOrdered(), ErrAlreadyOrdered)
}
