// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command dagsim builds a small hand-wired DAG, drives commitrule.Rule
// across it round by round, and prints every OrderedBlocks batch the
// rule emits. It exists to exercise the whole stack end to end: the DAG
// includes one silent anchor, so the printed output shows a first
// commit with no failed anchors and a second commit whose batch lists
// the silent round's elected author among its failed anchors.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/dagcommit/anchor"
	"github.com/luxfi/dagcommit/commitrule"
	dagconfig "github.com/luxfi/dagcommit/config"
	"github.com/luxfi/dagcommit/dag"
	"github.com/luxfi/dagcommit/epoch"
	"github.com/luxfi/dagcommit/orderedblocks"
)

func main() {
	preset := flag.String("preset", "local", "operating parameters: \"local\" or \"default\"")
	flag.Parse()

	cfg, err := loadPreset(*preset)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dagsim:", err)
		os.Exit(1)
	}

	logger := log.NewLogger("dagsim")
	if level, err := dagconfig.ParseLevel(cfg.FailedAnchorLogLevel); err == nil {
		logger.SetLevel(level)
	}

	validators := make([]dag.Author, 4)
	weights := make(map[dag.Author]uint64, 4)
	for i := range validators {
		var id ids.NodeID
		id[0] = byte(i + 1)
		validators[i] = id
		weights[id] = 1
	}

	epochState, err := epoch.NewState(weights, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dagsim:", err)
		os.Exit(1)
	}
	election := anchor.NewRoundRobin(validators)
	store := dag.NewStore()
	sink, ch := orderedblocks.NewChannel(logger, cfg.SinkBacklog)

	rule := commitrule.New(epochState, store, election, sink,
		commitrule.WithLogger(logger),
		commitrule.WithAnchorParity(cfg.AnchorParity),
		commitrule.WithMetricsRegistry(prometheus.NewRegistry(), cfg.MetricsNamespace),
	)

	drain := func() {
		for {
			select {
			case batch := <-ch:
				printBatch(batch)
			default:
				return
			}
		}
	}

	insert := func(round dag.Round, author dag.Author, tag byte, parents ...dag.Digest) *dag.CertifiedNode {
		digest := ids.ID{}
		digest[0] = byte(round)
		digest[1] = author[0]
		digest[2] = tag
		node := dag.NewCertifiedNode(dag.NewMetadata(round, author, digest), parents, dag.Certificate{Signers: validators})
		if err := store.Insert(node); err != nil {
			fmt.Fprintln(os.Stderr, "dagsim: insert failed:", err)
			os.Exit(1)
		}
		if err := rule.NewNode(node); err != nil {
			fmt.Fprintln(os.Stderr, "dagsim: commit rule rejected node:", err)
			os.Exit(1)
		}
		drain()
		return node
	}

	// Round 0: the elected anchor proposes with no parents.
	anchor0Author := election.GetAnchor(0)
	anchor0 := insert(0, anchor0Author, 0)

	// Round 1: three of four validators vote for it, enough for direct
	// commit the moment the third vote lands.
	var lastVoter dag.Digest
	for i, voter := range validators[:3] {
		voteNode := insert(1, voter, byte(i), anchor0.Digest())
		lastVoter = voteNode.Digest()
	}

	// Round 2's elected anchor never proposes: a "silent" round.
	silentAuthor := election.GetAnchor(2)
	connectorAuthor := pickOtherThan(validators, silentAuthor)
	r2 := insert(2, connectorAuthor, 0, lastVoter)

	// Round 3 carries the causal chain forward to round 4's real anchor.
	r3Author := pickOtherThan(validators, silentAuthor)
	r3 := insert(3, r3Author, 0, r2.Digest())

	// Round 4: the real anchor, parented on round 3's connector.
	anchor4Author := election.GetAnchor(4)
	anchor4 := insert(4, anchor4Author, 0, r3.Digest())

	// Round 5: three votes commit it, with round 2's silent anchor
	// surfacing in the batch's FailedAnchors.
	for i, voter := range validators[:3] {
		insert(5, voter, byte(i), anchor4.Digest())
	}

	fmt.Println("final cursor:", rule.Cursor().LowestUnorderedRound)
}

func loadPreset(name string) (dagconfig.Config, error) {
	switch name {
	case "local":
		return dagconfig.Local(), nil
	case "default":
		return dagconfig.Default(), nil
	default:
		return dagconfig.Config{}, fmt.Errorf("unknown preset %q", name)
	}
}

func pickOtherThan(validators []dag.Author, excluded dag.Author) dag.Author {
	for _, v := range validators {
		if v != excluded {
			return v
		}
	}
	panic("dagsim: validator set has only one member")
}

func printBatch(batch orderedblocks.OrderedBlocks) {
	fmt.Printf("committed anchor round=%d author=%s blocks=%d failed_anchors=%v\n",
		batch.AnchorMetadata.Round(), batch.AnchorMetadata.Author(), len(batch.Blocks), batch.FailedAnchors)
}
