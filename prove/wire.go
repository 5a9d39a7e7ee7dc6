package prove

import (
	"encoding/json"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/term"
)

// proofStepWire is ProofStep's wire shape: the instantiation list is
// decoded element-by-element through term.Decode, since Term is an
// interface encoding/json cannot unmarshal into directly.
type proofStepWire struct {
	RuleIndex      uint32            `json:"rule_index"`
	Instantiations []json.RawMessage `json:"instantiations"`
}

// MarshalJSON encodes a ProofStep per the wire shape in spec.md §6.
func (s ProofStep) MarshalJSON() ([]byte, error) {
	insts := make([]json.RawMessage, len(s.Instantiations))
	for i, t := range s.Instantiations {
		data, err := json.Marshal(t)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal instantiation %d", i)
		}
		insts[i] = data
	}
	return json.Marshal(proofStepWire{RuleIndex: s.RuleIndex, Instantiations: insts})
}

// UnmarshalJSON decodes a ProofStep from its wire shape.
func (s *ProofStep) UnmarshalJSON(data []byte) error {
	var wire proofStepWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Wrap(err, "decode proof step")
	}

	insts := make([]term.Term, len(wire.Instantiations))
	for i, raw := range wire.Instantiations {
		t, err := term.Decode(raw)
		if err != nil {
			return errors.Wrapf(err, "decode instantiation %d", i)
		}
		insts[i] = t
	}

	s.RuleIndex = wire.RuleIndex
	s.Instantiations = insts
	return nil
}
