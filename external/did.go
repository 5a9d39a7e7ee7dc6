// Package external holds demo, non-core implementations of the
// Verifier and Expander oracles spec.md §6 names as external
// collaborators. Nothing here changes the core's semantics: swap in
// a different Verifier/Expander and CheckSoundness/ProveComposite
// behave identically. It exists so the repository has a runnable
// end-to-end example.
package external

import (
	"crypto/ed25519"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/dock-labs/rdf2020soundness/errors"
)

// ed25519MulticodecPrefix is the multicodec varint for an Ed25519
// public key (0xed, 0x01), per the did:key method spec.
var ed25519MulticodecPrefix = [2]byte{0xed, 0x01}

// DecodeDIDKey decodes a did:key:z... identifier into its raw Ed25519
// public key. The core itself never calls this — it treats issuer
// IRIs as opaque (spec.md §3) — but the demo verifier uses it to
// recover the key that should have signed a presentation's proof.
func DecodeDIDKey(did string) (ed25519.PublicKey, error) {
	const prefix = "did:key:z"
	if !strings.HasPrefix(did, prefix) {
		return nil, errors.Newf("%q is not a did:key identifier", did)
	}

	raw, err := base58.Decode(strings.TrimPrefix(did, prefix))
	if err != nil {
		return nil, errors.Wrapf(err, "base58-decode did:key %q", did)
	}

	if len(raw) != 2+ed25519.PublicKeySize {
		return nil, errors.Newf("did:key %q decodes to %d bytes, want %d", did, len(raw), 2+ed25519.PublicKeySize)
	}
	if raw[0] != ed25519MulticodecPrefix[0] || raw[1] != ed25519MulticodecPrefix[1] {
		return nil, errors.Newf("did:key %q is not an Ed25519 key (multicodec %x%x)", did, raw[0], raw[1])
	}

	return ed25519.PublicKey(raw[2:]), nil
}

// EncodeDIDKey is DecodeDIDKey's inverse, used by tests and by tools
// that mint demo issuer identities.
func EncodeDIDKey(pub ed25519.PublicKey) string {
	buf := make([]byte, 2+len(pub))
	buf[0] = ed25519MulticodecPrefix[0]
	buf[1] = ed25519MulticodecPrefix[1]
	copy(buf[2:], pub)
	return "did:key:z" + base58.Encode(buf)
}
