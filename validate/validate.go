// Package validate implements the proof validator (C5): it replays a
// witness against a rule set without access to the premise set, and
// partitions every triple the witness touches into the facts it assumed
// as premises and the facts it implied as conclusions.
package validate

import (
	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/prove"
	"github.com/dock-labs/rdf2020soundness/rule"
	"github.com/dock-labs/rdf2020soundness/term"
)

// Result is the validator's partition of a proof's referenced triples.
type Result struct {
	Assumed term.ClaimGraph
	Implied term.ClaimGraph
}

// Validate replays proof against rules. It never sees the premise set: a
// triple is recorded as Assumed the first time the proof needs it as a
// body fact not already established as Implied by an earlier step, and as
// Implied whenever a step's head produces it.
//
// A malformed step short-circuits with an error wrapping
// errors.BadRuleIndex or errors.BadRuleApplication, rather than silently
// producing a partial result: the soundness theorem this validator backs
// only holds if every step actually replayed cleanly.
func Validate(rules []rule.Rule, p prove.Proof) (Result, error) {
	assumed := term.NewClaimGraph()
	implied := term.NewClaimGraph()

	for stepIndex, step := range p {
		if int(step.RuleIndex) < 0 || int(step.RuleIndex) >= len(rules) {
			return Result{}, errors.BadRuleIndex(stepIndex, step.RuleIndex, len(rules))
		}
		r := rules[step.RuleIndex]

		subst, ok := rule.SubstitutionFromInstantiation(r, step.Instantiations)
		if !ok {
			return Result{}, errors.BadRuleApplication(stepIndex,
				"instantiation count does not match the rule's variable count")
		}

		body := make([]term.Triple, 0, len(r.IfAll))
		for _, atom := range r.IfAll {
			t, ok := rule.ApplySubst(atom, subst)
			if !ok {
				return Result{}, errors.BadRuleApplication(stepIndex, "body atom left an unbound variable")
			}
			body = append(body, t)
		}

		head := make([]term.Triple, 0, len(r.Then))
		for _, atom := range r.Then {
			t, ok := rule.ApplySubst(atom, subst)
			if !ok {
				return Result{}, errors.BadRuleApplication(stepIndex, "head atom left an unbound variable")
			}
			head = append(head, t)
		}

		for _, b := range body {
			if !implied.Contains(b) {
				assumed = assumed.Add(b)
			}
		}
		for _, h := range head {
			implied = implied.Add(h)
		}
	}

	return Result{Assumed: assumed, Implied: implied}, nil
}
