package term

// ClaimGraph is a set of triples with a blank-node namespace scoped to
// this graph alone. Two ClaimGraphs built independently may reuse the
// same blank label to mean different anonymous entities; Union renames
// one side's blanks to fresh labels before merging so that never happens
// by accident.
type ClaimGraph struct {
	triples map[Triple]struct{}
}

// NewClaimGraph builds a ClaimGraph from the given triples, collapsing
// duplicates.
func NewClaimGraph(triples ...Triple) ClaimGraph {
	cg := ClaimGraph{triples: make(map[Triple]struct{}, len(triples))}
	for _, t := range triples {
		cg.triples[t] = struct{}{}
	}
	return cg
}

// Len returns the number of distinct triples in the graph.
func (cg ClaimGraph) Len() int {
	return len(cg.triples)
}

// Contains reports whether t is a member of the graph.
func (cg ClaimGraph) Contains(t Triple) bool {
	_, ok := cg.triples[t]
	return ok
}

// Add returns a new ClaimGraph with t inserted. The receiver is left
// unmodified.
func (cg ClaimGraph) Add(t Triple) ClaimGraph {
	out := cg.clone()
	out.triples[t] = struct{}{}
	return out
}

// Triples returns the graph's triples in no particular order.
func (cg ClaimGraph) Triples() []Triple {
	out := make([]Triple, 0, len(cg.triples))
	for t := range cg.triples {
		out = append(out, t)
	}
	return out
}

// Subset reports whether every triple in cg also appears in other.
func (cg ClaimGraph) Subset(other ClaimGraph) bool {
	for t := range cg.triples {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// Union returns the set union of cg and other. Blank nodes appearing in
// other are renamed to fresh labels first, so a Union never silently
// identifies two claim graphs' anonymous entities.
func (cg ClaimGraph) Union(other ClaimGraph) ClaimGraph {
	renamed := other.freshenBlanks()
	out := cg.clone()
	for t := range renamed.triples {
		out.triples[t] = struct{}{}
	}
	return out
}

// freshenBlanks returns a copy of cg with every distinct Blank replaced by
// a freshly generated one, preserving which triples shared a blank.
func (cg ClaimGraph) freshenBlanks() ClaimGraph {
	rename := make(map[Blank]Blank)
	out := ClaimGraph{triples: make(map[Triple]struct{}, len(cg.triples))}

	fresh := func(t Term) Term {
		b, ok := t.(Blank)
		if !ok {
			return t
		}
		if r, ok := rename[b]; ok {
			return r
		}
		r := FreshBlank()
		rename[b] = r
		return r
	}

	for t := range cg.triples {
		renamed := Triple{
			Subject:   fresh(t.Subject),
			Predicate: fresh(t.Predicate),
			Object:    fresh(t.Object),
		}
		out.triples[renamed] = struct{}{}
	}
	return out
}

func (cg ClaimGraph) clone() ClaimGraph {
	out := ClaimGraph{triples: make(map[Triple]struct{}, len(cg.triples))}
	for t := range cg.triples {
		out.triples[t] = struct{}{}
	}
	return out
}
