package database

import (
	"encoding/hex"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
)

// Tx is the transactional information between two parties.
type Tx struct {
	FromID    AccountID `json:"from"`                // Account sending the value, empty for a mining reward.
	ToID      AccountID `json:"to"`                  // Account receiving the value.
	Value     uint64    `json:"value"`               // Monetary value received from this transaction.
	Signature string    `json:"signature,omitempty"` // 0x hex encoding of the [R|S|V] signature.
}

// NewTx constructs a new unsigned transaction.
func NewTx(fromID AccountID, toID AccountID, value uint64) Tx {
	return Tx{
		FromID: fromID,
		ToID:   toID,
		Value:  value,
	}
}

// NewRewardTx constructs the system issued transaction that pays a miner.
func NewRewardTx(toID AccountID, value uint64) Tx {
	return Tx{
		FromID: RewardAccountID,
		ToID:   toID,
		Value:  value,
	}
}

// IsReward reports whether this transaction was issued by the system.
func (tx Tx) IsReward() bool {
	return tx.FromID == RewardAccountID
}

// Digest returns the 32 byte digest of the from, to and value fields. This is
// what gets signed and verified.
func (tx Tx) Digest() []byte {
	d := txDigest{
		Version: EncodingVersion,
		FromID:  tx.FromID,
		ToID:    tx.ToID,
		Value:   tx.Value,
	}

	data, err := signature.Digest(d)
	if err != nil {
		return nil
	}

	return data
}

// Hash returns the hex encoding of the digest.
func (tx Tx) Hash() string {
	return hex.EncodeToString(tx.Digest())
}

// Sign uses the signer to sign the transaction. The signer must own the
// sender account and a transaction can only be signed once.
func (tx *Tx) Sign(signer Signer) error {
	if AccountID(signer.PublicID()) != tx.FromID {
		return ErrAuthorization
	}

	if tx.Signature != "" {
		return ErrAlreadySigned
	}

	if err := tx.CheckFields(); err != nil {
		return err
	}

	sig, err := signer.Sign(tx.Digest())
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	tx.Signature = signature.SignatureString(sig)

	return nil
}

// CheckFields makes sure the transaction can be represented exactly by the
// canonical encoding and counted in a signed balance. JSON replaces invalid
// UTF-8 bytes, so two different ids could share a digest.
func (tx Tx) CheckFields() error {
	if !utf8.ValidString(string(tx.FromID)) || !utf8.ValidString(string(tx.ToID)) {
		return fmt.Errorf("%w: account ids must be valid utf-8", ErrMalformedTransaction)
	}

	if tx.Value > math.MaxInt64 {
		return fmt.Errorf("%w: value %d is larger than %d", ErrMalformedTransaction, tx.Value, int64(math.MaxInt64))
	}

	return nil
}

// IsValid verifies the transaction was signed by the sender. Mining rewards
// are valid without a signature. A malformed signature is reported as not
// valid and malformed fields as ErrMalformedTransaction.
func (tx Tx) IsValid(v Verifier) (bool, error) {
	if err := tx.CheckFields(); err != nil {
		return false, err
	}

	if tx.IsReward() {
		return true, nil
	}

	if tx.Signature == "" {
		return false, ErrMissingSignature
	}

	sig, err := signature.SignatureBytes(tx.Signature)
	if err != nil {
		return false, nil
	}

	return v.Verify(string(tx.FromID), tx.Digest(), sig), nil
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	from := "reward"
	if !tx.IsReward() {
		from = short(tx.FromID)
	}

	return fmt.Sprintf("%s->%s:%d", from, short(tx.ToID), tx.Value)
}

// short trims long public ids for log output.
func short(a AccountID) string {
	const width = 10
	if len(a) <= width {
		return string(a)
	}
	return string(a[:width])
}
