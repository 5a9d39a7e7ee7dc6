package rule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dock-labs/rdf2020soundness/term"
)

func TestVarsFirstOccurrenceOrder(t *testing.T) {
	r := Rule{
		IfAll: []Atom{
			NewAtom(Unbound{"pig"}, Bound{term.Iri("ability")}, Bound{term.Iri("flight")}),
			NewAtom(Unbound{"pig"}, Bound{term.Iri(term.RDFType)}, Unbound{"kind"}),
		},
		Then: []Atom{
			NewAtom(Unbound{"kind"}, Bound{term.Iri("says")}, Unbound{"pig"}),
		},
	}

	assert.Equal(t, []string{"pig", "kind"}, Vars(r))
}

func TestApplySubstFailsOnUnboundVariable(t *testing.T) {
	atom := NewAtom(Unbound{"x"}, Bound{term.Iri("p")}, Bound{term.Iri("o")})
	_, ok := ApplySubst(atom, Substitution{})
	assert.False(t, ok)
}

func TestApplySubstGrounds(t *testing.T) {
	atom := NewAtom(Unbound{"x"}, Bound{term.Iri("p")}, Bound{term.Iri("o")})
	tr, ok := ApplySubst(atom, Substitution{"x": term.Iri("s")})
	require.True(t, ok)
	assert.Equal(t, term.Triple{Subject: term.Iri("s"), Predicate: term.Iri("p"), Object: term.Iri("o")}, tr)
}

func TestUnifyBindsAndChecksConsistency(t *testing.T) {
	atom := NewAtom(Unbound{"x"}, Bound{term.Iri("p")}, Unbound{"x"})
	tr := term.Triple{Subject: term.Iri("a"), Predicate: term.Iri("p"), Object: term.Iri("a")}

	subst, ok := Unify(atom, tr, Substitution{})
	require.True(t, ok)
	assert.Equal(t, term.Iri("a"), subst["x"])

	inconsistent := term.Triple{Subject: term.Iri("a"), Predicate: term.Iri("p"), Object: term.Iri("b")}
	_, ok = Unify(atom, inconsistent, Substitution{})
	assert.False(t, ok, "the same variable in two slots must bind to the same term")
}

func TestUnifyRejectsMismatchedBoundSlot(t *testing.T) {
	atom := NewAtom(Bound{term.Iri("s")}, Bound{term.Iri("p")}, Unbound{"x"})
	tr := term.Triple{Subject: term.Iri("wrong"), Predicate: term.Iri("p"), Object: term.Iri("o")}

	_, ok := Unify(atom, tr, Substitution{})
	assert.False(t, ok)
}

func TestValidateRejectsUnboundHeadVariable(t *testing.T) {
	r := Rule{
		IfAll: []Atom{},
		Then:  []Atom{NewAtom(Unbound{"x"}, Bound{term.Iri("p")}, Bound{term.Iri("o")})},
	}
	assert.Error(t, Validate(r))
}

func TestValidateAcceptsAxiom(t *testing.T) {
	r := Rule{
		IfAll: nil,
		Then:  []Atom{NewAtom(Bound{term.Iri("a")}, Bound{term.Iri("p")}, Bound{term.Iri("b")})},
	}
	assert.NoError(t, Validate(r))
}

func TestInstantiateRoundTrip(t *testing.T) {
	r := Rule{
		IfAll: []Atom{NewAtom(Unbound{"x"}, Bound{term.Iri("p")}, Unbound{"y"})},
		Then:  []Atom{NewAtom(Unbound{"y"}, Bound{term.Iri("q")}, Unbound{"x"})},
	}
	subst := Substitution{"x": term.Iri("a"), "y": term.Iri("b")}

	inst, ok := Instantiate(r, subst)
	require.True(t, ok)
	assert.Equal(t, []term.Term{term.Iri("a"), term.Iri("b")}, inst)

	back, ok := SubstitutionFromInstantiation(r, inst)
	require.True(t, ok)
	assert.Equal(t, subst, back)

	_, ok = SubstitutionFromInstantiation(r, inst[:1])
	assert.False(t, ok, "arity mismatch must be reported")
}

func TestAtomJSONRoundTrip(t *testing.T) {
	atom := NewAtom(Unbound{"pig"}, Bound{term.Iri("ability")}, Bound{term.Iri("flight")})

	data, err := json.Marshal(atom)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"Unbound":"pig"},{"Bound":{"Iri":"ability"}},{"Bound":{"Iri":"flight"}}]`, string(data))

	var decoded Atom
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, atom, decoded)
}

func TestRuleJSONRoundTrip(t *testing.T) {
	r := Rule{
		IfAll: []Atom{NewAtom(Unbound{"x"}, Bound{term.Iri("p")}, Bound{term.Iri("o")})},
		Then:  []Atom{NewAtom(Bound{term.Iri("a")}, Bound{term.Iri("q")}, Unbound{"x"})},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded Rule
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r, decoded)
}
