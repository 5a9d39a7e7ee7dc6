package mcptool

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dock-labs/rdf2020soundness/rule"
	"github.com/dock-labs/rdf2020soundness/soundness"
)

type acceptAllVerifier struct{}

func (acceptAllVerifier) Verify(soundness.Presentation) (soundness.VerifyResult, error) {
	return soundness.VerifyResult{Verified: true}, nil
}

type emptyExpander struct{}

func (emptyExpander) Expand(soundness.Presentation) (soundness.Expanded, error) {
	return soundness.Expanded{}, nil
}

func toolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestHandleCheckSoundnessAcceptsEmptyPresentation(t *testing.T) {
	driver := soundness.New(acceptAllVerifier{}, emptyExpander{}, nil)
	s := New(driver, nil)

	result, err := s.handleCheckSoundness(context.Background(), toolRequest("check_soundness", map[string]any{
		"presentation": `{}`,
	}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
}

func TestHandleCheckSoundnessMissingArgument(t *testing.T) {
	driver := soundness.New(acceptAllVerifier{}, emptyExpander{}, nil)
	s := New(driver, nil)

	result, err := s.handleCheckSoundness(context.Background(), toolRequest("check_soundness", map[string]any{}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleProveCompositeParsesGoals(t *testing.T) {
	driver := soundness.New(nil, emptyExpander{}, nil)
	s := New(driver, []rule.Rule{})

	result, err := s.handleProveComposite(context.Background(), toolRequest("prove_composite", map[string]any{
		"presentation": `{}`,
		"goals":        `[]`,
	}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
}
