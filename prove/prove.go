// Package prove implements the forward-chaining prover (C4): given a
// premise fact set, a goal fact set, and a rule set, it saturates the
// premises under the rules and, if the goals are reached, returns a
// compact witness recording which rule instantiations produced them.
package prove

import (
	"go.uber.org/zap"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/logger"
	"github.com/dock-labs/rdf2020soundness/rule"
	"github.com/dock-labs/rdf2020soundness/term"
)

// ProofStep records one rule application during saturation: the index of
// the rule applied and its instantiation, in canonical variable order.
type ProofStep struct {
	RuleIndex      uint32      `json:"rule_index"`
	Instantiations []term.Term `json:"instantiations"`
}

// Proof is the ordered witness a Prove call produces.
type Proof []ProofStep

// Prover runs semi-naive forward-chaining saturation. The zero value is
// ready to use; Prover holds no per-call state.
type Prover struct {
	log *zap.SugaredLogger

	// OnStep, if set, is called synchronously with each ProofStep as it
	// is appended to the witness, letting a caller stream saturation
	// progress (e.g. over a websocket) without waiting for Prove to
	// return.
	OnStep func(ProofStep)
}

// New returns a Prover that logs saturation progress through log. A nil
// log disables logging.
func New(log *zap.SugaredLogger) *Prover {
	return &Prover{log: log}
}

// index groups a claim graph's triples by predicate, so that matching a
// body atom against known facts doesn't require a full scan per atom.
type index struct {
	byPredicate map[term.Term][]term.Triple
}

func buildIndex(cg term.ClaimGraph) *index {
	idx := &index{byPredicate: make(map[term.Term][]term.Triple)}
	for _, t := range cg.Triples() {
		idx.byPredicate[t.Predicate] = append(idx.byPredicate[t.Predicate], t)
	}
	return idx
}

func (idx *index) add(t term.Triple) {
	idx.byPredicate[t.Predicate] = append(idx.byPredicate[t.Predicate], t)
}

// candidates returns known triples a Bound-predicate atom could unify
// against; for an Unbound predicate it has to return everything.
func (idx *index) candidates(atom rule.Atom) []term.Triple {
	if b, ok := atom.Predicate.(rule.Bound); ok {
		return idx.byPredicate[b.Term]
	}
	var all []term.Triple
	for _, ts := range idx.byPredicate {
		all = append(all, ts...)
	}
	return all
}

// Prove saturates premises under rules and returns a witness that derives
// goals, if reachable. It never mutates premises or goals.
func (p *Prover) Prove(premises, goals term.ClaimGraph, rules []rule.Rule) (Proof, error) {
	known := premises
	idx := buildIndex(known)
	var witness Proof

	for {
		if goals.Subset(known) {
			p.logf("saturation reached goals", known.Len(), len(witness))
			return witness, nil
		}

		progressed := false
		for i, r := range rules {
			for _, subst := range matchBody(r.IfAll, idx, rule.Substitution{}) {
				addedAny := false
				for _, headAtom := range r.Then {
					head, ok := rule.ApplySubst(headAtom, subst)
					if !ok {
						continue
					}
					if known.Contains(head) {
						continue
					}
					known = known.Add(head)
					idx.add(head)
					addedAny = true
				}
				if addedAny {
					progressed = true
					inst, ok := rule.Instantiate(r, subst)
					if ok {
						step := ProofStep{RuleIndex: uint32(i), Instantiations: inst}
						witness = append(witness, step)
						if p.OnStep != nil {
							p.OnStep(step)
						}
					}
				}
			}
		}

		if !progressed {
			if goals.Subset(known) {
				p.logf("saturation reached goals", known.Len(), len(witness))
				return witness, nil
			}
			return nil, errors.CannotProve(countMissing(goals, known))
		}
	}
}

func (p *Prover) logf(msg string, tripleCount, stepCount int) {
	if p.log == nil {
		return
	}
	p.log.Debugw(msg,
		logger.FieldTripleCount, tripleCount,
		logger.FieldStepIndex, stepCount,
	)
}

func countMissing(goals, known term.ClaimGraph) int {
	missing := 0
	for _, t := range goals.Triples() {
		if !known.Contains(t) {
			missing++
		}
	}
	return missing
}

// matchBody finds every consistent substitution that unifies every atom in
// body against idx, extending base. An empty body yields exactly the base
// substitution once (so axiomatic rules fire exactly once per call).
func matchBody(body []rule.Atom, idx *index, base rule.Substitution) []rule.Substitution {
	if len(body) == 0 {
		return []rule.Substitution{base}
	}

	first, rest := body[0], body[1:]
	var out []rule.Substitution
	for _, candidate := range idx.candidates(first) {
		subst, ok := rule.Unify(first, candidate, base)
		if !ok {
			continue
		}
		out = append(out, matchBody(rest, idx, subst)...)
	}
	return out
}
