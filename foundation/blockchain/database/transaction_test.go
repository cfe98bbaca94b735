package database_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// Private keys used to sign test transactions.
const (
	pkHexKey1 = "fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959"
	pkHexKey2 = "aed31b6b5a5dfd7b9b1d7a2f7c8a3c1e3f0b2b6f3f0d6f9e5a1c2d3e4f5a6b7c"
)

// rejectAll is a verifier that never accepts a signature.
type rejectAll struct{}

func (rejectAll) Verify(string, []byte, []byte) bool { return false }

// =============================================================================

func Test_SignTransaction(t *testing.T) {
	t.Log("Given the need to sign and verify transactions.")
	{
		kp := keyPair(t, pkHexKey1)
		other := keyPair(t, pkHexKey2)

		var v signature.Secp256k1

		t.Logf("\tTest 0:\tWhen signing with the sender's key.")
		{
			tx := database.NewTx(database.PublicKeyToAccountID(kp), database.PublicKeyToAccountID(other), 100)
			if err := tx.Sign(kp); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to sign the transaction: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to sign the transaction.", success)

			ok, err := tx.IsValid(v)
			if err != nil || !ok {
				t.Fatalf("\t%s\tTest 0:\tShould be a valid transaction: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be a valid transaction.", success)

			ok, err = tx.IsValid(rejectAll{})
			if err != nil || ok {
				t.Fatalf("\t%s\tTest 0:\tShould use the injected verifier.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould use the injected verifier.", success)

			tx.Value = 1000
			ok, err = tx.IsValid(v)
			if err != nil || ok {
				t.Fatalf("\t%s\tTest 0:\tShould be invalid once the value is changed.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould be invalid once the value is changed.", success)
		}

		t.Logf("\tTest 1:\tWhen signing with a key that doesn't own the sender account.")
		{
			tx := database.NewTx(database.PublicKeyToAccountID(kp), "minerA", 100)
			if err := tx.Sign(other); !errors.Is(err, database.ErrAuthorization) {
				t.Fatalf("\t%s\tTest 1:\tShould get an authorization error: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould get an authorization error.", success)

			if tx.Signature != "" {
				t.Fatalf("\t%s\tTest 1:\tShould not attach a signature.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould not attach a signature.", success)
		}

		t.Logf("\tTest 2:\tWhen signing a transaction twice.")
		{
			tx := database.NewTx(database.PublicKeyToAccountID(kp), "minerA", 100)
			if err := tx.Sign(kp); err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to sign the transaction: %v", failed, err)
			}
			sig := tx.Signature

			if err := tx.Sign(kp); !errors.Is(err, database.ErrAlreadySigned) {
				t.Fatalf("\t%s\tTest 2:\tShould get an already signed error: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould get an already signed error.", success)

			if tx.Signature != sig {
				t.Fatalf("\t%s\tTest 2:\tShould keep the first signature.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould keep the first signature.", success)
		}

		t.Logf("\tTest 3:\tWhen checking an unsigned transaction.")
		{
			tx := database.NewTx(database.PublicKeyToAccountID(kp), "minerA", 100)
			if _, err := tx.IsValid(v); !errors.Is(err, database.ErrMissingSignature) {
				t.Fatalf("\t%s\tTest 3:\tShould get a missing signature error: %v", failed, err)
			}
			t.Logf("\t%s\tTest 3:\tShould get a missing signature error.", success)

			tx.Signature = "0xzz"
			if ok, err := tx.IsValid(v); err != nil || ok {
				t.Fatalf("\t%s\tTest 3:\tShould be invalid with a malformed signature.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould be invalid with a malformed signature.", success)
		}

		t.Logf("\tTest 4:\tWhen checking a mining reward.")
		{
			tx := database.NewRewardTx("minerA", 50)
			if ok, err := tx.IsValid(rejectAll{}); err != nil || !ok {
				t.Fatalf("\t%s\tTest 4:\tShould always be valid.", failed)
			}
			t.Logf("\t%s\tTest 4:\tShould always be valid.", success)
		}
	}
}

func Test_TransactionDigest(t *testing.T) {
	tx := database.NewTx("alice", "bob", 10)

	d1 := tx.Digest()
	d2 := tx.Digest()
	if !bytes.Equal(d1, d2) {
		t.Fatalf("Should get back the same digest twice.")
	}

	if len(d1) != 32 {
		t.Fatalf("Should get back a 32 byte digest, got %d", len(d1))
	}

	tx.Signature = "0x00"
	if !bytes.Equal(d1, tx.Digest()) {
		t.Fatalf("Should not include the signature in the digest.")
	}

	tt := []database.Tx{
		database.NewTx("alic", "ebob", 10),
		database.NewTx("bob", "alice", 10),
		database.NewTx("alice", "bob", 11),
	}
	for _, other := range tt {
		if bytes.Equal(d1, other.Digest()) {
			t.Fatalf("Should get a different digest for %s", other)
		}
	}
}

func Test_MalformedFields(t *testing.T) {
	kp := keyPair(t, pkHexKey1)
	from := database.PublicKeyToAccountID(kp)

	// signRaw signs the digest directly so fields Sign refuses still carry
	// a real signature.
	signRaw := func(tx database.Tx) database.Tx {
		sig, err := kp.Sign(tx.Digest())
		if err != nil {
			t.Fatalf("Should be able to sign the digest: %s", err)
		}
		tx.Signature = signature.SignatureString(sig)
		return tx
	}

	t.Log("Given the need to reject fields the digest can't represent exactly.")
	{
		t.Logf("\tTest 0:\tWhen the recipient is not valid utf-8.")
		{
			tx := database.NewTx(from, "bob\xff", 10)
			if err := tx.Sign(kp); !errors.Is(err, database.ErrMalformedTransaction) {
				t.Fatalf("\t%s\tTest 0:\tShould refuse to sign, got %v.", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould refuse to sign.", success)

			signed := signRaw(tx)
			if ok, err := signed.IsValid(signature.Secp256k1{}); ok || !errors.Is(err, database.ErrMalformedTransaction) {
				t.Fatalf("\t%s\tTest 0:\tShould not be valid, got %v %v.", failed, ok, err)
			}
			t.Logf("\t%s\tTest 0:\tShould not be valid.", success)

			signed.ToID = "bob\xfe"
			if ok, err := signed.IsValid(signature.Secp256k1{}); ok || !errors.Is(err, database.ErrMalformedTransaction) {
				t.Fatalf("\t%s\tTest 0:\tShould not be valid with a rewritten recipient, got %v %v.", failed, ok, err)
			}
			t.Logf("\t%s\tTest 0:\tShould not be valid with a rewritten recipient.", success)

			reward := database.NewRewardTx("miner\xff", 50)
			if ok, err := reward.IsValid(signature.Secp256k1{}); ok || !errors.Is(err, database.ErrMalformedTransaction) {
				t.Fatalf("\t%s\tTest 0:\tShould not accept a reward to a bad id, got %v %v.", failed, ok, err)
			}
			t.Logf("\t%s\tTest 0:\tShould not accept a reward to a bad id.", success)
		}

		t.Logf("\tTest 1:\tWhen the value can't be held in a balance.")
		{
			tx := signRaw(database.NewTx(from, "bob", math.MaxUint64))
			if ok, err := tx.IsValid(signature.Secp256k1{}); ok || !errors.Is(err, database.ErrMalformedTransaction) {
				t.Fatalf("\t%s\tTest 1:\tShould not be valid, got %v %v.", failed, ok, err)
			}
			t.Logf("\t%s\tTest 1:\tShould not be valid.", success)

			tx = database.NewTx(from, "bob", math.MaxInt64)
			if err := tx.Sign(kp); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould sign the largest value: %v", failed, err)
			}
			if ok, err := tx.IsValid(signature.Secp256k1{}); !ok || err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould accept the largest value, got %v %v.", failed, ok, err)
			}
			t.Logf("\t%s\tTest 1:\tShould accept the largest value.", success)
		}
	}
}

// =============================================================================

func keyPair(t *testing.T, hexKey string) signature.KeyPair {
	t.Helper()

	kp, err := signature.HexToKeyPair(hexKey)
	if err != nil {
		t.Fatalf("Should be able to load the private key: %s", err)
	}

	return kp
}
