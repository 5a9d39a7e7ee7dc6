// Package reify implements the presentation-to-claim-graph translator
// (C2): it converts an already-expanded JSON-LD verifiable presentation
// into an explicit-ethos claim graph, where every triple a credential
// asserts is reified as "the issuer claims this triple" rather than taken
// as an absolute fact.
package reify

import (
	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/term"
)

// ExpandedPresentation is the already-expanded JSON-LD form this package
// consumes. Expansion itself (including RDF dataset canonicalization) is
// an external collaborator (spec.md §1); this type only names the shape
// the translator walks.
type ExpandedPresentation struct {
	Credentials []ExpandedCredential
}

// ExpandedCredential is one verifiable credential's content, already
// flattened to its asserted RDF triples with its issuer and proof block
// separated out.
type ExpandedCredential struct {
	// Issuer is the credential's issuer, treated as an opaque IRI string;
	// the core never resolves or interprets it (spec.md §3).
	Issuer string

	// Claims are the triples asserted by this credential, excluding its
	// own proof subgraph and the presentation wrapper.
	Claims []term.Triple
}

// Translate converts p into a claim graph under the explicit-ethos
// reification: for every triple (s, p, o) a credential asserts, with
// issuer I, it emits
//
//	(I, claimsProperty, b)
//	(b, rdf:subject, s)
//	(b, rdf:predicate, p)
//	(b, rdf:object, o)
//
// for a fresh blank node b, so that rules see "issuer asserts ⟨s,p,o⟩"
// rather than ⟨s,p,o⟩ itself. claimsProperty is the reification
// predicate IRI; an empty string uses term.ClaimsV1, the spec.md
// default. This is the one override spec.md's claimsV1 Open Question
// calls for (config.Config.Logic.ClaimsProperty); the logicV1 property
// under which a presentation carries its proof has no analogous knob
// here, since extracting that property from a JSON-LD document is
// entirely the external Expander's job, not this package's.
//
// Each credential's triples get their own claim graph first, then the
// per-credential graphs are unioned with blank-node freshening, which
// keeps two credentials' reification blanks from colliding even if they
// happened to generate the same label.
func Translate(p ExpandedPresentation, claimsProperty string) (term.ClaimGraph, error) {
	if claimsProperty == "" {
		claimsProperty = term.ClaimsV1
	}

	out := term.NewClaimGraph()
	for i, cred := range p.Credentials {
		if cred.Issuer == "" {
			return term.ClaimGraph{}, errors.Newf("credential %d has no issuer", i)
		}
		credGraph := translateCredential(cred, claimsProperty)
		out = out.Union(credGraph)
	}
	return out, nil
}

func translateCredential(cred ExpandedCredential, claimsProperty string) term.ClaimGraph {
	issuer := term.Iri(cred.Issuer)
	cg := term.NewClaimGraph()

	for _, claim := range cred.Claims {
		b := term.FreshBlank()
		cg = cg.Add(term.Triple{Subject: issuer, Predicate: term.Iri(claimsProperty), Object: b})
		cg = cg.Add(term.Triple{Subject: b, Predicate: term.Iri(term.RDFSubject), Object: claim.Subject})
		cg = cg.Add(term.Triple{Subject: b, Predicate: term.Iri(term.RDFPredicate), Object: claim.Predicate})
		cg = cg.Add(term.Triple{Subject: b, Predicate: term.Iri(term.RDFObject), Object: claim.Object})
	}
	return cg
}
