package prove

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dock-labs/rdf2020soundness/term"
)

func TestProofStepJSONRoundTrip(t *testing.T) {
	step := ProofStep{RuleIndex: 3, Instantiations: []term.Term{term.Iri("a"), term.Blank("b0")}}

	data, err := json.Marshal(step)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rule_index":3,"instantiations":[{"Iri":"a"},{"Blank":"b0"}]}`, string(data))

	var decoded ProofStep
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, step, decoded)
}

func TestProofJSONRoundTrip(t *testing.T) {
	p := Proof{
		{RuleIndex: 0, Instantiations: []term.Term{}},
		{RuleIndex: 1, Instantiations: []term.Term{term.Iri("x")}},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded Proof
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)
}
