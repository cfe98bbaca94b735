// Package signature provides the key pair support the ledger needs for signing
// and verifying transactions, backed by the secp256k1 curve.
package signature

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ZeroHash represents a hash code of zeros. It is used as the previous hash
// of the genesis block.
const ZeroHash string = "0000000000000000000000000000000000000000000000000000000000000000"

// =============================================================================

// Hash returns a unique string for the value. The value is marshaled to JSON
// so it must serialize deterministically, which is true of Go structs.
func Hash(value any) string {
	data, err := Digest(value)
	if err != nil {
		return ZeroHash
	}

	return hex.EncodeToString(data)
}

// Digest returns the 32 byte sha256 digest of the JSON form of the value.
func Digest(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(data)
	return hash[:], nil
}

// =============================================================================

// KeyPair holds a private key and provides the signing side of the
// ledger's signature capability.
type KeyPair struct {
	privateKey *ecdsa.PrivateKey
}

// GenerateKeyPair constructs a brand new random key pair.
func GenerateKeyPair() (KeyPair, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate key: %w", err)
	}

	return KeyPair{privateKey: privateKey}, nil
}

// NewKeyPair wraps an existing private key.
func NewKeyPair(privateKey *ecdsa.PrivateKey) KeyPair {
	return KeyPair{privateKey: privateKey}
}

// HexToKeyPair parses a hex encoded private key.
func HexToKeyPair(hexKey string) (KeyPair, error) {
	privateKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return KeyPair{}, err
	}

	return KeyPair{privateKey: privateKey}, nil
}

// LoadKeyPair reads a private key stored in hex form on disk.
func LoadKeyPair(path string) (KeyPair, error) {
	privateKey, err := crypto.LoadECDSA(path)
	if err != nil {
		return KeyPair{}, err
	}

	return KeyPair{privateKey: privateKey}, nil
}

// Save writes the private key in hex form to the specified file.
func (kp KeyPair) Save(path string) error {
	return crypto.SaveECDSA(path, kp.privateKey)
}

// PublicID returns the public identifier for the key pair. This is the hex
// encoding of the uncompressed public key and is what transactions use as
// the sender and recipient address.
func (kp KeyPair) PublicID() string {
	return PublicKeyToID(kp.privateKey.PublicKey)
}

// PrivateHex returns the hex encoding of the private key.
func (kp KeyPair) PrivateHex() string {
	return hex.EncodeToString(crypto.FromECDSA(kp.privateKey))
}

// Sign signs the 32 byte digest and returns the 65 byte [R|S|V] signature.
func (kp KeyPair) Sign(digest []byte) ([]byte, error) {
	if len(digest) != crypto.DigestLength {
		return nil, fmt.Errorf("digest must be %d bytes, got %d", crypto.DigestLength, len(digest))
	}

	sig, err := crypto.Sign(digest, kp.privateKey)
	if err != nil {
		return nil, err
	}

	// Make sure the key that comes back out of the signature is ours.
	publicKey, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return nil, err
	}
	if PublicKeyToID(*publicKey) != kp.PublicID() {
		return nil, errors.New("invalid signature")
	}

	return sig, nil
}

// =============================================================================

// Secp256k1 provides the verification side of the ledger's signature
// capability. It holds no state.
type Secp256k1 struct{}

// Verify reports whether sig is a valid signature of digest by the key
// identified by publicID. A malformed identifier or signature is reported
// as not valid.
func (Secp256k1) Verify(publicID string, digest []byte, sig []byte) bool {
	publicKey, err := PublicKeyFromID(publicID)
	if err != nil {
		return false
	}

	// The recovery id is not needed to verify, only [R|S].
	switch len(sig) {
	case crypto.SignatureLength:
		sig = sig[:crypto.RecoveryIDOffset]
	case crypto.RecoveryIDOffset:
	default:
		return false
	}

	return crypto.VerifySignature(crypto.FromECDSAPub(publicKey), digest, sig)
}

// =============================================================================

// PublicKeyToID converts the public key into its public identifier.
func PublicKeyToID(pk ecdsa.PublicKey) string {
	return hex.EncodeToString(crypto.FromECDSAPub(&pk))
}

// PublicKeyFromID recovers the verifying key from a public identifier. The
// identifier may carry a 0x prefix.
func PublicKeyFromID(publicID string) (*ecdsa.PublicKey, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(publicID, "0x"), "0X"))
	if err != nil {
		return nil, fmt.Errorf("decode public id: %w", err)
	}

	return crypto.UnmarshalPubkey(data)
}

// SignatureString returns the signature as a 0x prefixed hex string.
func SignatureString(sig []byte) string {
	return hexutil.Encode(sig)
}

// SignatureBytes converts a 0x prefixed hex string back into signature bytes.
func SignatureBytes(sigStr string) ([]byte, error) {
	return hexutil.Decode(sigStr)
}
