// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package epoch

import "errors"

var (
	// ErrEmptyValidatorSet is returned by NewSet when given no validators.
	ErrEmptyValidatorSet = errors.New("epoch: validator set is empty")

	// ErrZeroStake is returned by NewSet for a validator with zero weight.
	ErrZeroStake = errors.New("epoch: validator has zero stake")

	// ErrStakeOverflow is returned by NewSet when total stake overflows uint64.
	ErrStakeOverflow = errors.New("epoch: total stake overflows uint64")
)
