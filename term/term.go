// Package term implements the RDF-style term and triple model the rule
// engine operates over: tagged-variant terms (IRI, blank node, literal),
// triples built from them, and claim graphs as sets of triples with a
// locally scoped blank-node namespace.
package term

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/dock-labs/rdf2020soundness/errors"
)

// Term is the tagged-variant sum type of the data model: an Iri, a Blank,
// or a Literal. The three concrete types are the only implementations;
// callers should type-switch exhaustively rather than duck-type on
// interface methods.
type Term interface {
	isTerm()
	String() string
}

// Iri is an absolute IRI term.
type Iri string

func (Iri) isTerm()          {}
func (i Iri) String() string { return string(i) }

// MarshalJSON encodes an Iri as {"Iri": "<value>"}, per the wire shape.
func (i Iri) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Iri string `json:"Iri"`
	}{string(i)})
}

// Blank is a blank-node label. Blank labels are opaque identifiers scoped
// to the claim graph they appear in; they are never interpreted as IRIs,
// and equality between two Blanks from different claim graphs is
// meaningless until the graphs are merged (see ClaimGraph.Union).
type Blank string

func (Blank) isTerm()          {}
func (b Blank) String() string { return "_:" + string(b) }

// MarshalJSON encodes a Blank as {"Blank": "<label>"}.
func (b Blank) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Blank string `json:"Blank"`
	}{string(b)})
}

// FreshBlank returns a Blank with a label guaranteed not to collide with
// any previously generated label.
func FreshBlank() Blank {
	return Blank(uuid.NewString())
}

// Literal is an RDF literal: a lexical value, a datatype IRI, and an
// optional language tag. A plain string literal has Datatype
// "http://www.w3.org/2001/XMLSchema#string" and empty Language.
type Literal struct {
	Value    string
	Datatype string
	Language string
}

func (Literal) isTerm() {}

func (l Literal) String() string {
	if l.Language != "" {
		return "\"" + l.Value + "\"@" + l.Language
	}
	return "\"" + l.Value + "\"^^" + l.Datatype
}

// MarshalJSON encodes a Literal as {"Literal": {"value":..., "datatype":...,
// "language":...}}, omitting language when absent.
func (l Literal) MarshalJSON() ([]byte, error) {
	type body struct {
		Value    string `json:"value"`
		Datatype string `json:"datatype"`
		Language string `json:"language,omitempty"`
	}
	return json.Marshal(struct {
		Literal body `json:"Literal"`
	}{body{l.Value, l.Datatype, l.Language}})
}

// Equal reports whether two terms have the same variant and payload.
func Equal(a, b Term) bool {
	return a == b
}

// envelope mirrors the tagged-by-sole-key wire encoding for decoding.
type envelope struct {
	Iri     *string          `json:"Iri,omitempty"`
	Blank   *string          `json:"Blank,omitempty"`
	Literal *literalEnvelope `json:"Literal,omitempty"`
}

type literalEnvelope struct {
	Value    string `json:"value"`
	Datatype string `json:"datatype"`
	Language string `json:"language,omitempty"`
}

// Decode parses a single wire-encoded Term.
func Decode(data []byte) (Term, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "decode term")
	}
	switch {
	case env.Iri != nil:
		return Iri(*env.Iri), nil
	case env.Blank != nil:
		return Blank(*env.Blank), nil
	case env.Literal != nil:
		return Literal{
			Value:    env.Literal.Value,
			Datatype: env.Literal.Datatype,
			Language: env.Literal.Language,
		}, nil
	default:
		return nil, errors.Newf("term has no recognized variant key: %s", string(data))
	}
}
