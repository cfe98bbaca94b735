package commands

import (
	"fmt"
	"io"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

// Transactions writes the transactions in the dumped blocks. When an account
// is provided only the transactions it takes part in are written.
func Transactions(w io.Writer, blocks []database.Block, acct database.AccountID) error {
	for _, block := range blocks {
		for _, tx := range block.Trans {
			if acct != "" && tx.FromID != acct && tx.ToID != acct {
				continue
			}

			fmt.Fprintf(w, "Block: %d  %s\n", block.Header.Number, tx)
		}
	}

	return nil
}
