package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTriple string

func (f fakeTriple) String() string { return string(f) }

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindVerificationFailed, KindOf(VerificationFailed(New("sig invalid"))))
	assert.Equal(t, KindBadRuleIndex, KindOf(BadRuleIndex(0, 7, 3)))
	assert.Equal(t, KindBadRuleApplication, KindOf(BadRuleApplication(0, "arity mismatch")))
	assert.Equal(t, KindUnverifiedAssumption, KindOf(UnverifiedAssumption(fakeTriple("(a p b)"))))
	assert.Equal(t, KindCannotProve, KindOf(CannotProve(2)))
	assert.Equal(t, KindNone, KindOf(New("plain error")))
}

func TestKindOfWrapped(t *testing.T) {
	err := Wrap(BadRuleIndex(1, 9, 2), "replay failed")
	assert.Equal(t, KindBadRuleIndex, KindOf(err))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "VerificationFailed", KindVerificationFailed.String())
	assert.Equal(t, "InvalidProof(BadRuleIndex)", KindBadRuleIndex.String())
	assert.Equal(t, "InvalidProof(BadRuleApplication)", KindBadRuleApplication.String())
	assert.Equal(t, "UnverifiedAssumption", KindUnverifiedAssumption.String())
	assert.Equal(t, "CannotProve", KindCannotProve.String())
	assert.Equal(t, "none", KindNone.String())
}
