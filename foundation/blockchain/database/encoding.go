package database

// The canonical encoding is shared by hashing and by anything writing the chain
// out. It is JSON produced from the structs below, so field order follows the
// struct definitions and never depends on map ordering.
//
//	tx:    {"v":1,"from":"...","to":"...","value":0}
//	block: {"v":1,"number":0,"prev_block_hash":"...","timestamp":0,"nonce":0,"trans":[...]}
//
// Inside a block, trans is the array of transactions in inclusion order using
// the Tx JSON form (from, to, value, signature). The genesis block carries the
// GenesisMarker string instead of an array.

// EncodingVersion is embedded in every digest. Changing the encoding requires
// bumping this value.
const EncodingVersion = 1

// GenesisMarker is the placeholder payload of the genesis block.
const GenesisMarker = "Genesis"

// txDigest is the canonical form of a transaction for signing.
type txDigest struct {
	Version uint8     `json:"v"`
	FromID  AccountID `json:"from"`
	ToID    AccountID `json:"to"`
	Value   uint64    `json:"value"`
}

// blockDigest is the canonical form of a block for hashing.
type blockDigest struct {
	Version       uint8  `json:"v"`
	Number        uint64 `json:"number"`
	PrevBlockHash string `json:"prev_block_hash"`
	TimeStamp     uint64 `json:"timestamp"`
	Nonce         uint64 `json:"nonce"`
	Trans         any    `json:"trans"`
}

// newBlockDigest builds the canonical form for the header and transactions.
func newBlockDigest(header BlockHeader, trans []Tx) blockDigest {
	var payload any = trans
	switch {
	case header.Number == 0:
		payload = GenesisMarker
	case trans == nil:
		payload = []Tx{}
	}

	return blockDigest{
		Version:       EncodingVersion,
		Number:        header.Number,
		PrevBlockHash: header.PrevBlockHash,
		TimeStamp:     header.TimeStamp,
		Nonce:         header.Nonce,
		Trans:         payload,
	}
}
