package external

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDIDKeyRoundTrip(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	did := EncodeDIDKey(pub)
	assert.Contains(t, did, "did:key:z")

	decoded, err := DecodeDIDKey(did)
	require.NoError(t, err)
	assert.Equal(t, pub, decoded)
}

func TestDecodeDIDKeyRejectsBadPrefix(t *testing.T) {
	_, err := DecodeDIDKey("did:web:example.com")
	assert.Error(t, err)
}

func TestJWTVerifierAcceptsValidSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	holder := EncodeDIDKey(pub)

	env, err := SignEnvelope(holder, priv, "deadbeef")
	require.NoError(t, err)

	result, err := JWTVerifier{}.Verify(env)
	require.NoError(t, err)
	assert.True(t, result.Verified)
}

func TestJWTVerifierRejectsTamperedSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	holder := EncodeDIDKey(pub)

	env, err := SignEnvelope(holder, priv, "deadbeef")
	require.NoError(t, err)

	var decoded envelope
	require.NoError(t, json.Unmarshal(env, &decoded))
	// Flip the last base64url character of the JWT's signature segment,
	// corrupting the signature without breaking JSON or JWT structure.
	proofBytes := []byte(decoded.Proof)
	last := proofBytes[len(proofBytes)-1]
	if last == 'A' {
		proofBytes[len(proofBytes)-1] = 'B'
	} else {
		proofBytes[len(proofBytes)-1] = 'A'
	}
	decoded.Proof = string(proofBytes)

	tampered, err := json.Marshal(decoded)
	require.NoError(t, err)

	result, err := JWTVerifier{}.Verify(tampered)
	require.NoError(t, err)
	assert.False(t, result.Verified)
}

func TestJWTVerifierRejectsMismatchedSigner(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	otherPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	wrongHolder := EncodeDIDKey(otherPub)

	env, err := SignEnvelope(wrongHolder, priv, "deadbeef")
	require.NoError(t, err)

	result, err := JWTVerifier{}.Verify(env)
	require.NoError(t, err)
	assert.False(t, result.Verified)
}
