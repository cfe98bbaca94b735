package public

import (
	"github.com/ardanlabs/nicecoin/business/sys/validate"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

type tx struct {
	FromAccount database.AccountID `json:"from"`
	FromName    string             `json:"from_name,omitempty"`
	To          database.AccountID `json:"to"`
	ToName      string             `json:"to_name"`
	Value       uint64             `json:"value"`
	Sig         string             `json:"sig,omitempty"`
}

type block struct {
	Number        uint64 `json:"number"`
	PrevBlockHash string `json:"prev_block_hash"`
	TimeStamp     uint64 `json:"timestamp"`
	Nonce         uint64 `json:"nonce"`
	Hash          string `json:"hash"`
	Transactions  []tx   `json:"txs"`
}

type balance struct {
	Account database.AccountID `json:"account"`
	Name    string             `json:"name"`
	Balance int64              `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

type chainStatus struct {
	Valid  bool   `json:"valid"`
	Blocks int    `json:"blocks"`
	Error  string `json:"error,omitempty"`
}

// =============================================================================

// submitTx is the payload a wallet sends to transfer value.
type submitTx struct {
	From      string `json:"from" validate:"required,account"`
	To        string `json:"to" validate:"required"`
	Value     uint64 `json:"value"`
	Signature string `json:"signature" validate:"required"`
}

// Validate checks the payload fields.
func (s submitTx) Validate() error {
	return validate.Check(s)
}

func (s submitTx) toTx() database.Tx {
	tx := database.NewTx(database.AccountID(s.From), database.AccountID(s.To), s.Value)
	tx.Signature = s.Signature
	return tx
}
