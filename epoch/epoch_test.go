// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package epoch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/dagcommit/dag"
	"github.com/luxfi/ids"
)

func authorN(n byte) dag.Author {
	var id ids.NodeID
	id[0] = n
	return id
}

func fourValidatorWeights() map[dag.Author]uint64 {
	return map[dag.Author]uint64{
		authorN(1): 1,
		authorN(2): 1,
		authorN(3): 1,
		authorN(4): 1,
	}
}

func TestNewSetRejectsEmpty(t *testing.T) {
	require := require.New(t)

	_, err := NewSet(nil)
	require.ErrorIs(err, ErrEmptyValidatorSet)
}

func TestNewSetRejectsZeroStake(t *testing.T) {
	require := require.New(t)

	weights := fourValidatorWeights()
	weights[authorN(5)] = 0

	_, err := NewSet(weights)
	require.ErrorIs(err, ErrZeroStake)
}

func TestNewSetRejectsOverflow(t *testing.T) {
	require := require.New(t)

	weights := map[dag.Author]uint64{
		authorN(1): math.MaxUint64,
		authorN(2): 1,
	}

	_, err := NewSet(weights)
	require.ErrorIs(err, ErrStakeOverflow)
}

func TestSetAccessors(t *testing.T) {
	require := require.New(t)

	set, err := NewSet(fourValidatorWeights())
	require.NoError(err)

	require.True(set.Has(authorN(1)))
	require.False(set.Has(authorN(9)))
	require.Equal(uint64(1), set.Weight(authorN(1)))
	require.Equal(uint64(0), set.Weight(authorN(9)))
	require.Equal(uint64(4), set.TotalStake())
	require.Equal(4, set.Len())
	require.Len(set.Authors(), 4)
}

// TestQuorumBoundary exercises the quorum boundary: with total
// stake 4 (f=1, 3f+1=4), 2f+1=3 votes commit, 2f=2 votes do not.
func TestQuorumBoundary(t *testing.T) {
	require := require.New(t)

	set, err := NewSet(fourValidatorWeights())
	require.NoError(err)
	verifier := NewVerifier(set, nil)

	require.False(verifier.HasQuorum(2))
	require.True(verifier.HasQuorum(3))
	require.True(verifier.HasQuorum(4))
}

func TestNewStateWiresVerifierToSet(t *testing.T) {
	require := require.New(t)

	state, err := NewState(fourValidatorWeights(), nil)
	require.NoError(err)
	require.Equal(state.Validators.TotalStake(), state.Verifier.StakeOf(authorN(1))+
		state.Verifier.StakeOf(authorN(2))+
		state.Verifier.StakeOf(authorN(3))+
		state.Verifier.StakeOf(authorN(4)))
}

func TestNewStatePropagatesSetError(t *testing.T) {
	require := require.New(t)

	_, err := NewState(nil, nil)
	require.ErrorIs(err, ErrEmptyValidatorSet)
}
