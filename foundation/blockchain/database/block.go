package database

import (
	"context"
	"fmt"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
)

// BlockHeader represents common information required for each block.
type BlockHeader struct {
	Number        uint64 `json:"number"`          // Block number in the chain, genesis is 0.
	PrevBlockHash string `json:"prev_block_hash"` // Hash of the previous block in the chain.
	TimeStamp     uint64 `json:"timestamp"`       // Time the block was created in milliseconds.
	Nonce         uint64 `json:"nonce"`           // Value identified to solve the hash solution.
}

// =============================================================================

// Candidate is a block that has not been mined yet. The only way to turn it
// into a Block is to call Mine.
type Candidate struct {
	header BlockHeader
	trans  []Tx
}

// NewCandidate constructs a block to be mined that links to the previous
// block hash. The block gets its own copy of the transactions.
func NewCandidate(number uint64, prevBlockHash string, timeStamp uint64, trans []Tx) Candidate {
	cpy := make([]Tx, len(trans))
	copy(cpy, trans)

	return Candidate{
		header: BlockHeader{
			Number:        number,
			PrevBlockHash: prevBlockHash,
			TimeStamp:     timeStamp,
			Nonce:         0,
		},
		trans: cpy,
	}
}

// Header returns the header of the candidate.
func (c Candidate) Header() BlockHeader {
	return c.header
}

// ComputeHash returns the hash of the candidate at its current nonce.
func (c Candidate) ComputeHash() string {
	return signature.Hash(newBlockDigest(c.header, c.trans))
}

// Mine performs the proof of work, incrementing the nonce until the hash
// starts with difficulty copies of the target character. There is no upper
// bound on the attempts. Cancelling the context is the only way out without
// a solution and no block is returned in that case.
func (c Candidate) Mine(ctx context.Context, difficulty uint, ev EventHandler) (Block, error) {
	ev = safeEvents(ev)

	ev("database: Mine: MINING: started: blk[%d]", c.header.Number)
	defer ev("database: Mine: MINING: completed: blk[%d]", c.header.Number)

	// Log the transactions that are a part of this potential block.
	for _, tx := range c.trans {
		ev("database: Mine: MINING: tx[%s]", tx)
	}

	header := c.header

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("database: Mine: MINING: attempts[%d]", attempts)
		}

		// Did we timeout trying to solve the problem.
		if ctx.Err() != nil {
			ev("database: Mine: MINING: CANCELLED")
			return Block{}, ctx.Err()
		}

		// Hash the block and check if we have solved the puzzle.
		hash := signature.Hash(newBlockDigest(header, c.trans))
		if !IsHashSolved(difficulty, hash) {
			header.Nonce++
			continue
		}

		ev("database: Mine: MINING: SOLVED: prevBlk[%s]: newBlk[%s]", header.PrevBlockHash, hash)
		ev("database: Mine: MINING: attempts[%d]", attempts)

		b := Block{
			Header: header,
			Trans:  c.trans,
			Hash:   hash,
		}

		return b, nil
	}
}

// =============================================================================

// Block represents a group of transactions batched together and sealed with
// a hash that solves the proof of work. Hash always equals ComputeHash for a
// block that hasn't been tampered with.
type Block struct {
	Header BlockHeader
	Trans  []Tx
	Hash   string
}

// Genesis constructs the first block in the chain. It holds the genesis
// marker instead of transactions and is not mined.
func Genesis(timeStamp uint64) Block {
	b := Block{
		Header: BlockHeader{
			Number:        0,
			PrevBlockHash: signature.ZeroHash,
			TimeStamp:     timeStamp,
			Nonce:         0,
		},
	}
	b.Hash = b.ComputeHash()

	return b
}

// ComputeHash recomputes the hash from the header and transactions.
func (b Block) ComputeHash() string {
	return signature.Hash(newBlockDigest(b.Header, b.Trans))
}

// HasValidTransactions verifies every transaction in the block.
func (b Block) HasValidTransactions(v Verifier) bool {
	return b.validateTransactions(v) == nil
}

// ValidateBlock takes a block and validates it against the block before it
// in the chain.
func (b Block) ValidateBlock(previousBlock Block, v Verifier, ev EventHandler) error {
	ev = safeEvents(ev)

	ev("database: ValidateBlock: validate: blk[%d]: check: transactions are valid", b.Header.Number)

	if err := b.validateTransactions(v); err != nil {
		return err
	}

	ev("database: ValidateBlock: validate: blk[%d]: check: parent hash does match parent block", b.Header.Number)

	if b.Header.PrevBlockHash != previousBlock.Hash {
		return fmt.Errorf("parent block hash doesn't match our known parent, got %s, exp %s", b.Header.PrevBlockHash, previousBlock.Hash)
	}

	ev("database: ValidateBlock: validate: blk[%d]: check: block hash matches its contents", b.Header.Number)

	if hash := b.ComputeHash(); b.Hash != hash {
		return fmt.Errorf("block hash doesn't match its contents, got %s, exp %s", b.Hash, hash)
	}

	ev("database: ValidateBlock: validate: blk[%d]: check: block number is the next number", b.Header.Number)

	if nextNumber := previousBlock.Header.Number + 1; b.Header.Number != nextNumber {
		return fmt.Errorf("this block is not the next number, got %d, exp %d", b.Header.Number, nextNumber)
	}

	return nil
}

// validateTransactions checks all the transactions, not just the first.
func (b Block) validateTransactions(v Verifier) error {
	for i, tx := range b.Trans {
		ok, err := tx.IsValid(v)
		if err != nil {
			return fmt.Errorf("tx[%d]: %w", i, err)
		}
		if !ok {
			return fmt.Errorf("tx[%d]: %w", i, ErrInvalidTransaction)
		}
	}

	return nil
}

// IsHashSolved checks the hash to make sure it complies with the POW rules.
// We need to match a difficulty number of f's.
func IsHashSolved(difficulty uint, hash string) bool {
	const match = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	if difficulty > uint(len(match)) || uint(len(hash)) < difficulty {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}

// =============================================================================

// BlockData represents what is written out when the chain is dumped. The
// field names and nesting are enough to recompute every hash.
type BlockData struct {
	Hash   string      `json:"hash"`
	Header BlockHeader `json:"block"`
	Trans  []Tx        `json:"trans"`
}

// NewBlockData constructs the value to serialize.
func NewBlockData(block Block) BlockData {
	return BlockData{
		Hash:   block.Hash,
		Header: block.Header,
		Trans:  block.Trans,
	}
}

// ToBlock converts a BlockData back into a Block. The hash is kept as it was
// stored so validation can detect a mismatch.
func ToBlock(blockData BlockData) Block {
	return Block{
		Header: blockData.Header,
		Trans:  blockData.Trans,
		Hash:   blockData.Hash,
	}
}
