package state

import (
	"sort"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

// BalanceOf derives the balance of the account by scanning every transaction
// in the chain. Pending transactions are not included. A balance can go
// negative since spending is not checked against it, and holds at the int64
// limits.
func (s *State) BalanceOf(accountID database.AccountID) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var balance int64
	for _, block := range s.chain {
		for _, tx := range block.Trans {
			if tx.FromID == accountID {
				balance = database.Debit(balance, tx.Value)
			}
			if tx.ToID == accountID {
				balance = database.Credit(balance, tx.Value)
			}
		}
	}

	return balance
}

// QueryAccounts returns the derived balance of every account that appears
// in the chain, sorted by account id.
func (s *State) QueryAccounts() []database.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balances := make(map[database.AccountID]int64)
	for _, block := range s.chain {
		for _, tx := range block.Trans {
			if !tx.IsReward() {
				balances[tx.FromID] = database.Debit(balances[tx.FromID], tx.Value)
			}
			balances[tx.ToID] = database.Credit(balances[tx.ToID], tx.Value)
		}
	}

	accounts := make([]database.Account, 0, len(balances))
	for accountID, balance := range balances {
		accounts = append(accounts, database.Account{AccountID: accountID, Balance: balance})
	}
	sort.Sort(database.ByAccount(accounts))

	return accounts
}

// QueryBlocksByAccount returns the set of blocks holding a transaction for the
// account. If the account is empty, all blocks are returned.
func (s *State) QueryBlocksByAccount(accountID database.AccountID) []database.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []database.Block
	for _, block := range s.chain {
		if accountID == "" {
			out = append(out, copyBlock(block))
			continue
		}

		for _, tx := range block.Trans {
			if tx.FromID == accountID || tx.ToID == accountID {
				out = append(out, copyBlock(block))
				break
			}
		}
	}

	return out
}

// QueryPendingTransfers returns the number of pending transactions that are
// not mining rewards.
func (s *State) QueryPendingTransfers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	for _, tx := range s.pending {
		if !tx.IsReward() {
			n++
		}
	}

	return n
}
