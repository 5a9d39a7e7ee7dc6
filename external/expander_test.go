package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassthroughExpanderParsesCredentialsAndLogic(t *testing.T) {
	doc := []byte(`{
		"holder": "did:key:zExample",
		"proof_jwt": "x.y.z",
		"credentials": [
			{"issuer": "https://example.com/issuers/c1", "claims": []}
		],
		"logic": [{"rule_index": 0, "instantiations": []}]
	}`)

	expanded, err := PassthroughExpander{}.Expand(doc)
	require.NoError(t, err)
	require.Len(t, expanded.Presentation.Credentials, 1)
	assert.Equal(t, "https://example.com/issuers/c1", expanded.Presentation.Credentials[0].Issuer)
	assert.NotEmpty(t, expanded.Proof)
}

func TestPassthroughExpanderRejectsMalformedJSON(t *testing.T) {
	_, err := PassthroughExpander{}.Expand([]byte(`not json`))
	assert.Error(t, err)
}
