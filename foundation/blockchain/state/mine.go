package state

import (
	"context"
	"fmt"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

// MinePendingTransactions packages the pending transactions into a new block
// linked to the latest block, performs the proof of work and appends the
// block to the chain. The pending transactions are then replaced by the
// mining reward for the beneficiary. Cancelling the context stops the work
// and leaves the chain untouched.
func (s *State) MinePendingTransactions(ctx context.Context, beneficiaryID database.AccountID) (database.Block, error) {
	// The reward for this block is checked up front so a bad beneficiary
	// can't leave an invalid transaction pending.
	if err := database.NewRewardTx(beneficiaryID, s.genesis.MiningReward).CheckFields(); err != nil {
		return database.Block{}, fmt.Errorf("reward: %w", err)
	}

	s.mineMu.Lock()
	defer s.mineMu.Unlock()

	s.evHandler("state: MinePendingTransactions: MINING: started: beneficiary[%s]", beneficiaryID)
	defer s.evHandler("state: MinePendingTransactions: MINING: completed")

	// Capture what needs to be mined. Mining happens outside the lock so
	// transactions can still be added while the work is being performed.
	s.mu.RLock()
	latestBlock := s.chain[len(s.chain)-1]
	trans := make([]database.Tx, len(s.pending))
	copy(trans, s.pending)
	s.mu.RUnlock()

	s.evHandler("state: MinePendingTransactions: MINING: perform POW: txs[%d]", len(trans))

	candidate := database.NewCandidate(latestBlock.Header.Number+1, latestBlock.Hash, now(), trans)

	block, err := candidate.Mine(ctx, s.Difficulty(), database.EventHandler(s.evHandler))
	if err != nil {
		return database.Block{}, err
	}

	// Just check one more time we were not cancelled.
	if ctx.Err() != nil {
		return database.Block{}, ctx.Err()
	}

	s.evHandler("state: MinePendingTransactions: MINING: append block[%d]: hash[%s]", block.Header.Number, block.Hash)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.chain = append(s.chain, block)

	// The mined transactions are replaced by the reward. Anything added
	// while mining was in progress stays pending behind it.
	rest := s.pending[len(trans):]
	pending := make([]database.Tx, 0, len(rest)+1)
	pending = append(pending, database.NewRewardTx(beneficiaryID, s.genesis.MiningReward))
	pending = append(pending, rest...)
	s.pending = pending

	return copyBlock(block), nil
}
