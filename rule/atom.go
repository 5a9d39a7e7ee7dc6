// Package rule implements the Horn-clause rule model: atoms whose slots
// are either bound to a concrete term or left as a rule-local variable,
// substitution and unification over those atoms, and the canonical
// variable ordering that makes a rule's instantiations wire-representable
// without naming variables.
package rule

import (
	"encoding/json"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/term"
)

// Slot is one position of an Atom: either Bound to a concrete term or
// Unbound, naming a rule-local variable.
type Slot interface {
	isSlot()
}

// Bound is a Slot holding a concrete term.
type Bound struct {
	Term term.Term
}

func (Bound) isSlot() {}

// Unbound is a Slot naming a rule-local variable.
type Unbound struct {
	Name string
}

func (Unbound) isSlot() {}

// Atom is a triple template: three slots, each Bound or Unbound.
type Atom struct {
	Subject   Slot
	Predicate Slot
	Object    Slot
}

// NewAtom builds an Atom from its three slots, in subject/predicate/object
// order.
func NewAtom(subject, predicate, object Slot) Atom {
	return Atom{Subject: subject, Predicate: predicate, Object: object}
}

// slotEnvelope is the tagged-by-sole-key wire form of a Slot.
type slotEnvelope struct {
	Bound   json.RawMessage `json:"Bound,omitempty"`
	Unbound *string         `json:"Unbound,omitempty"`
}

func marshalSlot(s Slot) (json.RawMessage, error) {
	switch v := s.(type) {
	case Bound:
		termJSON, err := json.Marshal(v.Term)
		if err != nil {
			return nil, errors.Wrap(err, "marshal bound slot term")
		}
		return json.Marshal(slotEnvelope{Bound: termJSON})
	case Unbound:
		return json.Marshal(slotEnvelope{Unbound: &v.Name})
	default:
		return nil, errors.Newf("unknown slot type %T", s)
	}
}

func unmarshalSlot(data []byte) (Slot, error) {
	var env slotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "decode slot")
	}
	switch {
	case env.Bound != nil:
		t, err := term.Decode(env.Bound)
		if err != nil {
			return nil, errors.Wrap(err, "decode bound slot term")
		}
		return Bound{Term: t}, nil
	case env.Unbound != nil:
		return Unbound{Name: *env.Unbound}, nil
	default:
		return nil, errors.Newf("slot has no recognized variant key: %s", string(data))
	}
}

// MarshalJSON encodes an Atom as a 3-element array of slots, per the wire
// shape in spec.md §6.
func (a Atom) MarshalJSON() ([]byte, error) {
	slots := make([]json.RawMessage, 3)
	for i, s := range []Slot{a.Subject, a.Predicate, a.Object} {
		encoded, err := marshalSlot(s)
		if err != nil {
			return nil, err
		}
		slots[i] = encoded
	}
	return json.Marshal(slots)
}

// UnmarshalJSON decodes a 3-element array of slots into an Atom.
func (a *Atom) UnmarshalJSON(data []byte) error {
	var raw [3]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode atom")
	}
	slots := make([]Slot, 3)
	for i, r := range raw {
		s, err := unmarshalSlot(r)
		if err != nil {
			return err
		}
		slots[i] = s
	}
	a.Subject, a.Predicate, a.Object = slots[0], slots[1], slots[2]
	return nil
}
