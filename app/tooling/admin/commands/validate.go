package commands

import (
	"fmt"
	"io"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

// Validate checks the linkage, hashes and signatures of the dumped blocks
// and writes the outcome. The first failure is returned.
func Validate(w io.Writer, blocks []database.Block, v database.Verifier) error {
	for i := 1; i < len(blocks); i++ {
		if err := blocks[i].ValidateBlock(blocks[i-1], v, nil); err != nil {
			fmt.Fprintf(w, "Block: %d  INVALID: %s\n", blocks[i].Header.Number, err)
			return fmt.Errorf("block %d: %w", blocks[i].Header.Number, err)
		}
		fmt.Fprintf(w, "Block: %d  OK  Hash: %s\n", blocks[i].Header.Number, blocks[i].Hash)
	}

	fmt.Fprintf(w, "Chain of %d blocks is VALID\n", len(blocks))
	return nil
}
