package database

import (
	"math"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
)

// RewardAccountID is the sender of a system issued mining reward. These
// transactions carry no signature.
const RewardAccountID AccountID = ""

// Account represents the derived balance for an individual account.
type Account struct {
	AccountID AccountID `json:"account"`
	Balance   int64     `json:"balance"`
}

// Credit adds the value to the balance. The balance holds at the int64 limit
// instead of wrapping around.
func Credit(balance int64, value uint64) int64 {
	if value > math.MaxInt64 {
		return Credit(Credit(balance, math.MaxInt64), value-math.MaxInt64)
	}

	if balance > math.MaxInt64-int64(value) {
		return math.MaxInt64
	}
	return balance + int64(value)
}

// Debit subtracts the value from the balance. The balance holds at the int64
// limit instead of wrapping around.
func Debit(balance int64, value uint64) int64 {
	if value > math.MaxInt64 {
		return Debit(Debit(balance, math.MaxInt64), value-math.MaxInt64)
	}

	if balance < math.MinInt64+int64(value) {
		return math.MinInt64
	}
	return balance - int64(value)
}

// =============================================================================

// AccountID represents the public identifier used to send and receive value.
// Signed transactions use the hex encoding of an uncompressed secp256k1
// public key, but any non-empty string can receive value.
type AccountID string

// PublicKeyToAccountID converts a signer into an account value.
func PublicKeyToAccountID(signer Signer) AccountID {
	return AccountID(signer.PublicID())
}

// IsPublicKey verifies whether the underlying data represents a valid
// hex-encoded uncompressed public key.
func (a AccountID) IsPublicKey() bool {
	const publicKeyLength = 65

	if has0xPrefix(a) {
		a = a[2:]
	}

	if len(a) != 2*publicKeyLength || !isHex(a) {
		return false
	}

	_, err := signature.PublicKeyFromID(string(a))
	return err == nil
}

// =============================================================================

// has0xPrefix validates the account starts with a 0x.
func has0xPrefix(a AccountID) bool {
	return len(a) >= 2 && a[0] == '0' && (a[1] == 'x' || a[1] == 'X')
}

// isHex validates whether each byte is valid hexadecimal string.
func isHex(a AccountID) bool {
	if len(a)%2 != 0 {
		return false
	}

	for _, c := range []byte(a) {
		if !isHexCharacter(c) {
			return false
		}
	}

	return true
}

// isHexCharacter returns bool of c being a valid hexadecimal.
func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// =============================================================================

// ByAccount provides sorting support by the account id value.
type ByAccount []Account

// Len returns the number of accounts in the list.
func (ba ByAccount) Len() int {
	return len(ba)
}

// Less helps to sort the list by account id in ascending order.
func (ba ByAccount) Less(i, j int) bool {
	return ba[i].AccountID < ba[j].AccountID
}

// Swap moves accounts in the order of the account id value.
func (ba ByAccount) Swap(i, j int) {
	ba[i], ba[j] = ba[j], ba[i]
}
