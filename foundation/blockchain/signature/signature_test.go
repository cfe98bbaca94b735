package signature_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
	"github.com/ethereum/go-ethereum/crypto"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

const pkHexKey = "fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959"

// =============================================================================

func Test_Signing(t *testing.T) {
	t.Log("Given the need to sign and verify a digest.")
	{
		kp, err := signature.HexToKeyPair(pkHexKey)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to load a private key: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to load a private key.", success)

		pk, err := crypto.HexToECDSA(pkHexKey)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to parse the private key: %s", failed, err)
		}

		exp := hex.EncodeToString(crypto.FromECDSAPub(&pk.PublicKey))
		if got := kp.PublicID(); got != exp {
			t.Logf("\t\tgot: %s", got)
			t.Logf("\t\texp: %s", exp)
			t.Fatalf("\t%s\tShould get back the uncompressed public key as the id.", failed)
		}
		t.Logf("\t%s\tShould get back the uncompressed public key as the id.", success)

		digest := sha256.Sum256([]byte("Bill"))
		sig, err := kp.Sign(digest[:])
		if err != nil {
			t.Fatalf("\t%s\tShould be able to sign the digest: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to sign the digest.", success)

		var v signature.Secp256k1
		if !v.Verify(kp.PublicID(), digest[:], sig) {
			t.Fatalf("\t%s\tShould be able to verify the signature.", failed)
		}
		t.Logf("\t%s\tShould be able to verify the signature.", success)

		other := sha256.Sum256([]byte("Jill"))
		if v.Verify(kp.PublicID(), other[:], sig) {
			t.Fatalf("\t%s\tShould not verify the signature against other data.", failed)
		}
		t.Logf("\t%s\tShould not verify the signature against other data.", success)

		str := signature.SignatureString(sig)
		back, err := signature.SignatureBytes(str)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to decode the signature string: %s", failed, err)
		}
		if !v.Verify(kp.PublicID(), digest[:], back) {
			t.Fatalf("\t%s\tShould verify the decoded signature.", failed)
		}
		t.Logf("\t%s\tShould verify the decoded signature.", success)
	}
}

func Test_VerifyMalformed(t *testing.T) {
	kp, err := signature.HexToKeyPair(pkHexKey)
	if err != nil {
		t.Fatalf("Should be able to load a private key: %s", err)
	}

	digest := sha256.Sum256([]byte("Bill"))
	sig, err := kp.Sign(digest[:])
	if err != nil {
		t.Fatalf("Should be able to sign the digest: %s", err)
	}

	other, err := signature.GenerateKeyPair()
	if err != nil {
		t.Fatalf("Should be able to generate a key pair: %s", err)
	}

	tt := []struct {
		name     string
		publicID string
		sig      []byte
	}{
		{name: "wrong key", publicID: other.PublicID(), sig: sig},
		{name: "not hex", publicID: "minerA", sig: sig},
		{name: "not a point", publicID: "04deadbeef", sig: sig},
		{name: "short sig", publicID: kp.PublicID(), sig: sig[:10]},
		{name: "empty sig", publicID: kp.PublicID(), sig: nil},
	}

	var v signature.Secp256k1
	for _, tst := range tt {
		f := func(t *testing.T) {
			if v.Verify(tst.publicID, digest[:], tst.sig) {
				t.Fatalf("\t%s\tShould not verify a malformed signature or key.", failed)
			}
			t.Logf("\t%s\tShould not verify a malformed signature or key.", success)
		}
		t.Run(tst.name, f)
	}
}

func Test_PublicKeyFromID(t *testing.T) {
	kp, err := signature.GenerateKeyPair()
	if err != nil {
		t.Fatalf("Should be able to generate a key pair: %s", err)
	}

	pk, err := signature.PublicKeyFromID(kp.PublicID())
	if err != nil {
		t.Fatalf("Should be able to recover the public key: %s", err)
	}

	if got := signature.PublicKeyToID(*pk); got != kp.PublicID() {
		t.Logf("got: %s", got)
		t.Logf("exp: %s", kp.PublicID())
		t.Fatalf("Should get back the same public id.")
	}

	if _, err := signature.PublicKeyFromID("0x" + kp.PublicID()); err != nil {
		t.Fatalf("Should accept a 0x prefix: %s", err)
	}
}

func Test_Hash(t *testing.T) {
	value := struct {
		Name string
	}{
		Name: "Bill",
	}

	h1 := signature.Hash(value)
	h2 := signature.Hash(value)
	if h1 != h2 {
		t.Logf("got: %s", h1)
		t.Logf("exp: %s", h2)
		t.Fatalf("Should get back the same hash twice.")
	}

	if len(h1) != 64 {
		t.Fatalf("Should get back a 64 character hash, got %d", len(h1))
	}

	if signature.Hash(func() {}) != signature.ZeroHash {
		t.Fatalf("Should get back the zero hash for values that can't marshal.")
	}
}
