// Package soundness implements the soundness driver (C6): it glues
// cryptographic verification, JSON-LD expansion, translation (C2), and
// proof validation (C5) into the two calls a verifier or a holder
// actually makes: CheckSoundness and ProveComposite.
package soundness

import (
	"github.com/dock-labs/rdf2020soundness/reify"
)

// Presentation is the raw, not-yet-verified, not-yet-expanded input to
// CheckSoundness and ProveComposite. Its shape is deliberately opaque to
// this package: Verifier and Expander are the only things that interpret
// it, matching spec.md §1's treatment of signature suites and JSON-LD
// expansion as external collaborators reached only through interfaces.
type Presentation = []byte

// VerifyResult is the oracle's report on a presentation's cryptographic
// validity.
type VerifyResult struct {
	Verified bool
	Results  any
}

// Verifier is the external `verify(presentation) → {verified, error,
// results}` oracle from spec.md §6. A real implementation wraps a
// signature-suite library (Ed25519, Sr25519, ECDSA, ...); this package
// never inspects a signature itself.
type Verifier interface {
	Verify(p Presentation) (VerifyResult, error)
}

// Expanded is the already-expanded form of a presentation: its
// credentials reduced to (issuer, claims) pairs ready for C2, plus the
// raw bytes of whatever sits at the logicV1 property (the attached
// proof), if any. Producing this from raw JSON-LD — including RDF
// dataset canonicalization — is the external expand() oracle's job; this
// package treats that internal walk as out of scope, per spec.md's
// Non-goals.
type Expanded struct {
	Presentation reify.ExpandedPresentation
	Proof        []byte
}

// Expander is the external `expand(jsonld) → expanded_jsonld` oracle from
// spec.md §6, specialized to return the shape C2 and C6 need directly
// rather than a generic expanded JSON-LD tree this package would then have
// to walk itself.
type Expander interface {
	Expand(p Presentation) (Expanded, error)
}
