package term

import "encoding/json"

// Triple is an ordered (subject, predicate, object) fact. The core does
// not enforce that predicate is an Iri, to stay permissive toward rule
// authors who may write atoms binding any slot to any term variant.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

func (t Triple) String() string {
	return "(" + t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String() + ")"
}

// UnmarshalJSON decodes a Triple's three term slots. Term has no
// concrete static type for encoding/json to target, so each slot is
// decoded through Decode rather than left to the default struct path.
func (t *Triple) UnmarshalJSON(data []byte) error {
	var raw struct {
		Subject   json.RawMessage
		Predicate json.RawMessage
		Object    json.RawMessage
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	subject, err := Decode(raw.Subject)
	if err != nil {
		return err
	}
	predicate, err := Decode(raw.Predicate)
	if err != nil {
		return err
	}
	object, err := Decode(raw.Object)
	if err != nil {
		return err
	}

	t.Subject, t.Predicate, t.Object = subject, predicate, object
	return nil
}
