package rule

import (
	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/term"
)

// Rule is a Horn clause over atoms: IfAll is the body, Then is the head.
// Any variable in Then must also appear in IfAll (Validate checks this);
// an empty IfAll encodes an axiom whose Then atoms are unconditional facts.
type Rule struct {
	IfAll []Atom `json:"if_all"`
	Then  []Atom `json:"then"`
}

// Validate reports an error if r violates the invariant that every
// variable in the head also appears in the body.
func Validate(r Rule) error {
	bodyVars := make(map[string]struct{})
	for _, atom := range r.IfAll {
		for _, name := range atomVarNames(atom) {
			bodyVars[name] = struct{}{}
		}
	}
	for _, atom := range r.Then {
		for _, name := range atomVarNames(atom) {
			if _, ok := bodyVars[name]; !ok {
				return errors.Newf("head variable %q does not appear in the rule body", name)
			}
		}
	}
	return nil
}

func atomVarNames(a Atom) []string {
	var names []string
	for _, s := range []Slot{a.Subject, a.Predicate, a.Object} {
		if u, ok := s.(Unbound); ok {
			names = append(names, u.Name)
		}
	}
	return names
}

// Vars returns r's variables in canonical first-occurrence order: scanning
// IfAll then Then, left to right, subject/predicate/object within each
// atom. This is the order instantiations lists use on the wire.
func Vars(r Rule) []string {
	seen := make(map[string]struct{})
	var order []string
	record := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			order = append(order, name)
		}
	}
	for _, atom := range r.IfAll {
		record(atomVarNames(atom))
	}
	for _, atom := range r.Then {
		record(atomVarNames(atom))
	}
	return order
}

// Substitution maps a rule's variable names to terms.
type Substitution map[string]term.Term

// ApplySubst resolves every slot of atom against subst, returning the
// grounded triple. ok is false if some Unbound slot's variable has no
// binding in subst, in which case the returned triple is meaningless.
func ApplySubst(atom Atom, subst Substitution) (term.Triple, bool) {
	resolve := func(s Slot) (term.Term, bool) {
		switch v := s.(type) {
		case Bound:
			return v.Term, true
		case Unbound:
			t, ok := subst[v.Name]
			return t, ok
		default:
			return nil, false
		}
	}
	s, ok1 := resolve(atom.Subject)
	p, ok2 := resolve(atom.Predicate)
	o, ok3 := resolve(atom.Object)
	if !ok1 || !ok2 || !ok3 {
		return term.Triple{}, false
	}
	return term.Triple{Subject: s, Predicate: p, Object: o}, true
}

// Unify matches atom against triple, extending subst. A Bound slot must
// equal the triple's corresponding term; an Unbound slot either binds its
// variable in the returned substitution or, if already bound, must agree
// with the existing binding. Returns the extended substitution and true on
// success, or (nil, false) on mismatch. subst is never mutated.
func Unify(atom Atom, triple term.Triple, subst Substitution) (Substitution, bool) {
	out := make(Substitution, len(subst)+3)
	for k, v := range subst {
		out[k] = v
	}

	unifySlot := func(s Slot, t term.Term) bool {
		switch v := s.(type) {
		case Bound:
			return term.Equal(v.Term, t)
		case Unbound:
			if existing, ok := out[v.Name]; ok {
				return term.Equal(existing, t)
			}
			out[v.Name] = t
			return true
		default:
			return false
		}
	}

	if !unifySlot(atom.Subject, triple.Subject) {
		return nil, false
	}
	if !unifySlot(atom.Predicate, triple.Predicate) {
		return nil, false
	}
	if !unifySlot(atom.Object, triple.Object) {
		return nil, false
	}
	return out, true
}

// Instantiate converts subst into the positional instantiation list for r,
// in canonical variable order. Every variable in Vars(r) must be bound.
func Instantiate(r Rule, subst Substitution) ([]term.Term, bool) {
	vars := Vars(r)
	out := make([]term.Term, len(vars))
	for i, v := range vars {
		t, ok := subst[v]
		if !ok {
			return nil, false
		}
		out[i] = t
	}
	return out, true
}

// SubstitutionFromInstantiation is the inverse of Instantiate: it builds a
// Substitution from a positional instantiation list, binding r's variables
// in canonical order. ok is false if the list's length doesn't match
// Vars(r).
func SubstitutionFromInstantiation(r Rule, instantiations []term.Term) (Substitution, bool) {
	vars := Vars(r)
	if len(instantiations) != len(vars) {
		return nil, false
	}
	subst := make(Substitution, len(vars))
	for i, v := range vars {
		subst[v] = instantiations[i]
	}
	return subst, true
}
