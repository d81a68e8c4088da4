// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dag

import (
	"fmt"

	"github.com/luxfi/ids"
)

// Round is a non-negative DAG round number. Even rounds are anchor
// rounds; odd rounds are voting rounds (see anchor.Election).
type Round = uint64

// Author identifies a validator within the current epoch.
type Author = ids.NodeID

// Digest uniquely identifies the contents of a certified node.
type Digest = ids.ID

// NodeMetadata is the identity of a certified node, independent of its
// payload: the triple (round, author, digest).
type NodeMetadata struct {
	round  Round
	author Author
	digest Digest
}

// NewMetadata builds a NodeMetadata triple.
func NewMetadata(round Round, author Author, digest Digest) NodeMetadata {
	return NodeMetadata{round: round, author: author, digest: digest}
}

func (m NodeMetadata) Round() Round   { return m.round }
func (m NodeMetadata) Author() Author { return m.author }
func (m NodeMetadata) Digest() Digest { return m.digest }

func (m NodeMetadata) String() string {
	return fmt.Sprintf("(round=%d author=%s digest=%s)", m.round, m.author, m.digest)
}

// Certificate attests that a node's content and parents were verified
// by a quorum of the epoch's validators. The commit rule does not read
// it; signature verification itself is a collaborator's responsibility.
type Certificate struct {
	Signers []Author
}

// CertifiedNode is a block of transactions proposed by an author at a
// round, whose parents and contents have already been certified.
type CertifiedNode struct {
	metadata NodeMetadata
	parents  []Digest
	cert     Certificate
}

// NewCertifiedNode builds a certified node. Parents must all belong to
// round-1; Store.Insert enforces this when the node is added to a Dag.
func NewCertifiedNode(metadata NodeMetadata, parents []Digest, cert Certificate) *CertifiedNode {
	return &CertifiedNode{metadata: metadata, parents: parents, cert: cert}
}

func (n *CertifiedNode) Metadata() NodeMetadata   { return n.metadata }
func (n *CertifiedNode) Round() Round             { return n.metadata.round }
func (n *CertifiedNode) Author() Author           { return n.metadata.author }
func (n *CertifiedNode) Digest() Digest           { return n.metadata.digest }
func (n *CertifiedNode) Parents() []Digest        { return n.parents }
func (n *CertifiedNode) Certificate() Certificate { return n.cert }
