package external

import (
	"crypto/ed25519"
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/soundness"
)

// envelope is the demo presentation's wire shape: a holder DID and a
// detached JWT whose signature the holder's did:key public key must
// verify. This is not part of the core's wire format — spec.md treats
// presentation verification as an external oracle — it's just the
// shape this demo Verifier happens to expect.
type envelope struct {
	Holder string `json:"holder"`
	Proof  string `json:"proof_jwt"`
}

// presentationClaims is the JWT's body. PresentationHash carries
// whatever hash string the signer passed in; Verify checks only the
// signature and does not compare pH with the presentation's content.
type presentationClaims struct {
	jwt.RegisteredClaims
	PresentationHash string `json:"pH"`
}

// JWTVerifier implements soundness.Verifier by treating a
// presentation's detached proof as an EdDSA-signed JWT over the
// holder's did:key identity. It is a demo oracle, not part of the
// core: any Verifier implementation satisfying the same interface
// works identically with CheckSoundness.
type JWTVerifier struct{}

// Verify decodes p as an envelope, recovers the holder's Ed25519
// public key from its did:key, and checks the embedded JWT's
// signature and issuer claim against it.
func (JWTVerifier) Verify(p soundness.Presentation) (soundness.VerifyResult, error) {
	var env envelope
	if err := json.Unmarshal(p, &env); err != nil {
		return soundness.VerifyResult{}, errors.Wrap(err, "parse presentation envelope")
	}

	pub, err := DecodeDIDKey(env.Holder)
	if err != nil {
		return soundness.VerifyResult{Verified: false}, nil
	}

	token, err := jwt.ParseWithClaims(env.Proof, &presentationClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, errors.Newf("unexpected signing method %v", t.Header["alg"])
		}
		return pub, nil
	}, jwt.WithValidMethods([]string{"EdDSA"}))
	if err != nil {
		return soundness.VerifyResult{Verified: false, Results: err.Error()}, nil
	}

	claims, ok := token.Claims.(*presentationClaims)
	if !ok || !token.Valid || claims.Issuer != env.Holder {
		return soundness.VerifyResult{Verified: false}, nil
	}

	return soundness.VerifyResult{Verified: true}, nil
}

// SignEnvelope is the inverse of Verify, used by tests and demo
// tooling to produce a presentation envelope a JWTVerifier accepts.
func SignEnvelope(holder string, priv ed25519.PrivateKey, presentationHash string) ([]byte, error) {
	claims := presentationClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: holder},
		PresentationHash: presentationHash,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(priv)
	if err != nil {
		return nil, errors.Wrap(err, "sign presentation envelope")
	}
	return json.Marshal(envelope{Holder: holder, Proof: signed})
}
