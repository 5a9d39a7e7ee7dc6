package external

import (
	"encoding/json"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/reify"
	"github.com/dock-labs/rdf2020soundness/soundness"
)

// presentationDoc is the demo presentation's envelope, carrying the
// already-expanded credential set and the raw logicV1 proof bytes
// directly, instead of a JSON-LD document a real Expander would walk
// and canonicalize. Producing this from a signed VP is explicitly out
// of the core's scope, so this is a stand-in good enough to drive the
// CLI and server end to end.
type presentationDoc struct {
	Holder      string                     `json:"holder"`
	ProofJWT    string                     `json:"proof_jwt"`
	Credentials []reify.ExpandedCredential `json:"credentials"`
	Logic       json.RawMessage            `json:"logic,omitempty"`
}

// PassthroughExpander implements soundness.Expander by decoding a
// presentationDoc directly out of the raw presentation bytes. Real
// deployments would expand and canonicalize a signed JSON-LD document
// here; this one assumes that work already happened.
type PassthroughExpander struct{}

func (PassthroughExpander) Expand(p soundness.Presentation) (soundness.Expanded, error) {
	var doc presentationDoc
	if err := json.Unmarshal(p, &doc); err != nil {
		return soundness.Expanded{}, errors.Wrap(err, "parse presentation document")
	}
	return soundness.Expanded{
		Presentation: reify.ExpandedPresentation{Credentials: doc.Credentials},
		Proof:        []byte(doc.Logic),
	}, nil
}
