package reify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dock-labs/rdf2020soundness/term"
)

func claimTriples(cg term.ClaimGraph, issuer term.Iri) []term.Triple {
	var out []term.Triple
	for _, t := range cg.Triples() {
		if t.Predicate == term.Term(term.Iri(term.ClaimsV1)) && t.Subject == term.Term(issuer) {
			out = append(out, t)
		}
	}
	return out
}

func TestTranslateReifiesEachClaim(t *testing.T) {
	issuer := term.Iri("https://example.com/issuers/FAA")
	claim := term.Triple{
		Subject:   term.Iri("http://example.com/joe"),
		Predicate: term.Iri("https://example.com/Ability"),
		Object:    term.Iri("https://example.com/Flight"),
	}

	cg, err := Translate(ExpandedPresentation{
		Credentials: []ExpandedCredential{{Issuer: string(issuer), Claims: []term.Triple{claim}}},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 4, cg.Len(), "one claimsV1 triple plus three rdf-reification triples")

	claimsTriples := claimTriples(cg, issuer)
	require.Len(t, claimsTriples, 1)
	blank := claimsTriples[0].Object

	assert.True(t, cg.Contains(term.Triple{Subject: blank, Predicate: term.Iri(term.RDFSubject), Object: claim.Subject}))
	assert.True(t, cg.Contains(term.Triple{Subject: blank, Predicate: term.Iri(term.RDFPredicate), Object: claim.Predicate}))
	assert.True(t, cg.Contains(term.Triple{Subject: blank, Predicate: term.Iri(term.RDFObject), Object: claim.Object}))
}

func TestTranslatePreservesLanguageTaggedLiterals(t *testing.T) {
	issuer := term.Iri("https://example.com/issuers/FAA")
	lit := term.Literal{Value: "hola", Datatype: term.XSDString, Language: "es"}
	claim := term.Triple{
		Subject:   term.Iri("http://example.com/joe"),
		Predicate: term.Iri("https://example.com/greeting"),
		Object:    lit,
	}

	cg, err := Translate(ExpandedPresentation{
		Credentials: []ExpandedCredential{{Issuer: string(issuer), Claims: []term.Triple{claim}}},
	}, "")
	require.NoError(t, err)

	found := false
	for _, tr := range cg.Triples() {
		if l, ok := tr.Object.(term.Literal); ok && l == lit {
			found = true
		}
	}
	assert.True(t, found, "language tag must survive reification")
}

func TestTranslateRejectsMissingIssuer(t *testing.T) {
	_, err := Translate(ExpandedPresentation{
		Credentials: []ExpandedCredential{{Issuer: "", Claims: nil}},
	}, "")
	assert.Error(t, err)
}

func TestTranslateBlankScopingAcrossCredentials(t *testing.T) {
	claim := term.Triple{Subject: term.Iri("s"), Predicate: term.Iri("p"), Object: term.Iri("o")}

	cg, err := Translate(ExpandedPresentation{
		Credentials: []ExpandedCredential{
			{Issuer: "https://example.com/issuers/c1", Claims: []term.Triple{claim}},
			{Issuer: "https://example.com/issuers/c2", Claims: []term.Triple{claim}},
		},
	}, "")
	require.NoError(t, err)

	// Two credentials asserting the identical triple still produce distinct
	// reification blanks: 2 claimsV1 triples with distinct blank objects.
	c1Blanks := claimTriples(cg, term.Iri("https://example.com/issuers/c1"))
	c2Blanks := claimTriples(cg, term.Iri("https://example.com/issuers/c2"))
	require.Len(t, c1Blanks, 1)
	require.Len(t, c2Blanks, 1)
	assert.NotEqual(t, c1Blanks[0].Object, c2Blanks[0].Object)
}

func TestTranslateHonorsClaimsPropertyOverride(t *testing.T) {
	issuer := term.Iri("https://example.com/issuers/FAA")
	claim := term.Triple{
		Subject:   term.Iri("http://example.com/joe"),
		Predicate: term.Iri("https://example.com/Ability"),
		Object:    term.Iri("https://example.com/Flight"),
	}
	const customProperty = "https://example.com/customClaimsProperty"

	cg, err := Translate(ExpandedPresentation{
		Credentials: []ExpandedCredential{{Issuer: string(issuer), Claims: []term.Triple{claim}}},
	}, customProperty)
	require.NoError(t, err)

	found := false
	for _, tr := range cg.Triples() {
		assert.NotEqual(t, term.Term(term.Iri(term.ClaimsV1)), tr.Predicate, "default claimsV1 predicate must not appear when overridden")
		if tr.Subject == term.Term(issuer) && tr.Predicate == term.Term(term.Iri(customProperty)) {
			found = true
		}
	}
	assert.True(t, found, "expected a triple under the overridden claims property")
}
