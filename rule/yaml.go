package rule

import (
	"gopkg.in/yaml.v3"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/term"
)

// yamlSlot is the YAML-authoring counterpart of Slot: exactly one of Var
// or one of the term fields is set.
type yamlSlot struct {
	Var      string `yaml:"var,omitempty"`
	Iri      string `yaml:"iri,omitempty"`
	Blank    string `yaml:"blank,omitempty"`
	Literal  string `yaml:"literal,omitempty"`
	Datatype string `yaml:"datatype,omitempty"`
	Language string `yaml:"language,omitempty"`
}

func (s yamlSlot) toSlot() (Slot, error) {
	switch {
	case s.Var != "":
		return Unbound{Name: s.Var}, nil
	case s.Iri != "":
		return Bound{Term: term.Iri(s.Iri)}, nil
	case s.Blank != "":
		return Bound{Term: term.Blank(s.Blank)}, nil
	case s.Literal != "":
		datatype := s.Datatype
		if datatype == "" {
			datatype = term.XSDString
		}
		return Bound{Term: term.Literal{Value: s.Literal, Datatype: datatype, Language: s.Language}}, nil
	default:
		return nil, errors.New("yaml slot specifies neither var nor a term")
	}
}

type yamlAtom struct {
	Subject   yamlSlot `yaml:"subject"`
	Predicate yamlSlot `yaml:"predicate"`
	Object    yamlSlot `yaml:"object"`
}

func (a yamlAtom) toAtom() (Atom, error) {
	s, err := a.Subject.toSlot()
	if err != nil {
		return Atom{}, errors.Wrap(err, "subject")
	}
	p, err := a.Predicate.toSlot()
	if err != nil {
		return Atom{}, errors.Wrap(err, "predicate")
	}
	o, err := a.Object.toSlot()
	if err != nil {
		return Atom{}, errors.Wrap(err, "object")
	}
	return NewAtom(s, p, o), nil
}

type yamlRule struct {
	Label string     `yaml:"label"`
	IfAll []yamlAtom `yaml:"if_all"`
	Then  []yamlAtom `yaml:"then"`
}

// yamlRuleSet is the root document shape accepted by ParseYAML.
type yamlRuleSet struct {
	Rules []yamlRule `yaml:"rules"`
}

// ParseYAML parses a rule bundle authored in the YAML form
// (rules: [{label, if_all: [...], then: [...]}]) into Rules, an
// alternative to constructing the JSON wire shape by hand. Labels are
// returned alongside the rules for diagnostics; they have no effect on
// prover or validator semantics.
func ParseYAML(data []byte) (rules []Rule, labels []string, err error) {
	var doc yamlRuleSet
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, errors.Wrap(err, "parse rule yaml")
	}

	rules = make([]Rule, 0, len(doc.Rules))
	labels = make([]string, 0, len(doc.Rules))
	for i, yr := range doc.Rules {
		ifAll := make([]Atom, 0, len(yr.IfAll))
		for _, ya := range yr.IfAll {
			atom, err := ya.toAtom()
			if err != nil {
				return nil, nil, errors.Wrapf(err, "rule %d (%s) if_all", i, yr.Label)
			}
			ifAll = append(ifAll, atom)
		}

		then := make([]Atom, 0, len(yr.Then))
		for _, ya := range yr.Then {
			atom, err := ya.toAtom()
			if err != nil {
				return nil, nil, errors.Wrapf(err, "rule %d (%s) then", i, yr.Label)
			}
			then = append(then, atom)
		}

		r := Rule{IfAll: ifAll, Then: then}
		if err := Validate(r); err != nil {
			return nil, nil, errors.Wrapf(err, "rule %d (%s)", i, yr.Label)
		}

		rules = append(rules, r)
		labels = append(labels, yr.Label)
	}
	return rules, labels, nil
}
