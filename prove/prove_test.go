package prove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/rule"
	"github.com/dock-labs/rdf2020soundness/term"
)

func TestProveEmptyInput(t *testing.T) {
	p := New(nil)
	proof, err := p.Prove(term.NewClaimGraph(), term.NewClaimGraph(), nil)
	require.NoError(t, err)
	assert.Empty(t, proof)
}

func TestProveUnconditionalAxiom(t *testing.T) {
	a := term.Iri("https://example.com/a")
	frobs := term.Iri("https://example.com/frobs")
	b := term.Iri("https://example.com/b")

	axiom := rule.Rule{
		Then: []rule.Atom{rule.NewAtom(rule.Bound{Term: a}, rule.Bound{Term: frobs}, rule.Bound{Term: b})},
	}

	p := New(nil)
	goal := term.NewClaimGraph(term.Triple{Subject: a, Predicate: frobs, Object: b})

	proof, err := p.Prove(term.NewClaimGraph(), goal, []rule.Rule{axiom})
	require.NoError(t, err)
	require.Len(t, proof, 1)
	assert.Equal(t, uint32(0), proof[0].RuleIndex)
	assert.Empty(t, proof[0].Instantiations)
}

func TestProveFailsWithCannotProve(t *testing.T) {
	p := New(nil)
	goal := term.NewClaimGraph(term.Triple{
		Subject:   term.Iri("a"),
		Predicate: term.Iri("p"),
		Object:    term.Iri("b"),
	})

	_, err := p.Prove(term.NewClaimGraph(), goal, nil)
	require.Error(t, err)
	assert.Equal(t, errors.KindCannotProve, errors.KindOf(err))
}

func TestProveChainsRules(t *testing.T) {
	pig := term.Iri("http://example.com/joeThePig")
	ability := term.Iri("https://example.com/Ability")
	flight := term.Iri("https://example.com/Flight")
	pigType := term.Iri("https://example.com/Pig")
	bddap := term.Iri("did:dock:bddap")
	firstName := term.Iri("https://example.com/firstName")
	gorgadon := term.Literal{Value: "Gorgadon", Datatype: term.RDFNamespace + "PlainLiteral"}

	premises := term.NewClaimGraph(
		term.Triple{Subject: pig, Predicate: ability, Object: flight},
		term.Triple{Subject: pig, Predicate: term.Iri(term.RDFType), Object: pigType},
	)

	gorgRule := rule.Rule{
		IfAll: []rule.Atom{
			rule.NewAtom(rule.Unbound{Name: "pig"}, rule.Bound{Term: ability}, rule.Bound{Term: flight}),
			rule.NewAtom(rule.Unbound{Name: "pig"}, rule.Bound{Term: term.Iri(term.RDFType)}, rule.Bound{Term: pigType}),
		},
		Then: []rule.Atom{
			rule.NewAtom(rule.Bound{Term: bddap}, rule.Bound{Term: firstName}, rule.Bound{Term: gorgadon}),
		},
	}

	goal := term.NewClaimGraph(term.Triple{Subject: bddap, Predicate: firstName, Object: gorgadon})

	p := New(nil)
	proof, err := p.Prove(premises, goal, []rule.Rule{gorgRule})
	require.NoError(t, err)
	require.Len(t, proof, 1)
	assert.Equal(t, []term.Term{pig}, proof[0].Instantiations)
}

func TestProveOnStepReceivesEachAppliedStep(t *testing.T) {
	a := term.Iri("https://example.com/a")
	frobs := term.Iri("https://example.com/frobs")
	b := term.Iri("https://example.com/b")

	axiom := rule.Rule{
		Then: []rule.Atom{rule.NewAtom(rule.Bound{Term: a}, rule.Bound{Term: frobs}, rule.Bound{Term: b})},
	}

	var seen []ProofStep
	p := New(nil)
	p.OnStep = func(s ProofStep) { seen = append(seen, s) }

	goal := term.NewClaimGraph(term.Triple{Subject: a, Predicate: frobs, Object: b})
	proof, err := p.Prove(term.NewClaimGraph(), goal, []rule.Rule{axiom})
	require.NoError(t, err)
	assert.Equal(t, proof, Proof(seen))
}
