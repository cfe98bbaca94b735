// Package commands contains the functionality for the set of commands
// currently supported by the admin tool.
package commands

import (
	"fmt"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

// Load reads every block out of the dump in block order.
func Load(serializer database.Serializer) ([]database.Block, error) {
	var blocks []database.Block

	iter := serializer.ForEach()
	for blockData, err := iter.Next(); !iter.Done(); blockData, err = iter.Next() {
		if err != nil {
			return nil, fmt.Errorf("reading block %d: %w", len(blocks), err)
		}
		blocks = append(blocks, database.ToBlock(blockData))
	}

	if len(blocks) == 0 {
		return nil, fmt.Errorf("dump holds no blocks")
	}

	return blocks, nil
}
