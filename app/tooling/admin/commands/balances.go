package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

// Balances writes the balance of every account, or of only the specified
// account, derived from the dumped blocks.
func Balances(w io.Writer, blocks []database.Block, onlyAct database.AccountID) error {
	bals := make(map[database.AccountID]int64)
	for _, block := range blocks {
		for _, tx := range block.Trans {
			if !tx.IsReward() {
				bals[tx.FromID] = database.Debit(bals[tx.FromID], tx.Value)
			}
			bals[tx.ToID] = database.Credit(bals[tx.ToID], tx.Value)
		}
	}

	fmt.Fprintf(w, "LatestBlockHash: %s\n\n", blocks[len(blocks)-1].Hash)

	if onlyAct != "" {
		fmt.Fprintf(w, "Account: %s  Balance: %d\n", onlyAct, bals[onlyAct])
		return nil
	}

	accounts := make([]database.Account, 0, len(bals))
	for act, bal := range bals {
		accounts = append(accounts, database.Account{AccountID: act, Balance: bal})
	}
	sort.Sort(database.ByAccount(accounts))

	for _, act := range accounts {
		fmt.Fprintf(w, "Account: %s  Balance: %d\n", act.AccountID, act.Balance)
	}

	return nil
}
