package state

import (
	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/genesis"
)

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// Difficulty returns the number of leading f's a block hash needs.
func (s *State) Difficulty() uint {
	return uint(s.genesis.Difficulty)
}

// MiningReward returns the value credited for mining a block.
func (s *State) MiningReward() uint64 {
	return s.genesis.MiningReward
}

// LatestBlock returns a copy of the block at the end of the chain.
func (s *State) LatestBlock() database.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyBlock(s.chain[len(s.chain)-1])
}

// RetrieveChain returns a copy of every block in the chain.
func (s *State) RetrieveChain() []database.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocks := make([]database.Block, len(s.chain))
	for i, block := range s.chain {
		blocks[i] = copyBlock(block)
	}

	return blocks
}

// RetrievePending returns a copy of the pending transactions.
func (s *State) RetrievePending() []database.Tx {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trans := make([]database.Tx, len(s.pending))
	copy(trans, s.pending)

	return trans
}

// =============================================================================

// copyBlock makes sure callers can't change the transactions held by the
// chain through a returned block.
func copyBlock(block database.Block) database.Block {
	if block.Trans != nil {
		trans := make([]database.Tx, len(block.Trans))
		copy(trans, block.Trans)
		block.Trans = trans
	}

	return block
}
