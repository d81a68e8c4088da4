// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dag is the read/mutate contract the DAG commit rule needs
// against a round-based certified-block graph: point lookups by
// (round, author), a stake-weighted vote-quorum check, and a
// deterministic topological walk of causal ancestors.
//
// This package owns none of certificate verification, reliable
// broadcast or persistence — those belong to the collaborator that
// constructs and gossips the DAG. Store here is an in-memory reference
// implementation of the View contract, sufficient to drive and test the
// commit rule in commitrule.
package dag
