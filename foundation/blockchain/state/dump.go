package state

import (
	"fmt"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

// Dump writes every block in the chain to the serializer so it can be
// inspected later. The ledger never reads a dump back.
func (s *State) Dump(serializer database.Serializer) error {
	s.evHandler("state: Dump: started")
	defer s.evHandler("state: Dump: completed")

	if err := serializer.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	for _, block := range s.RetrieveChain() {
		if err := serializer.Write(database.NewBlockData(block)); err != nil {
			return fmt.Errorf("write blk[%d]: %w", block.Header.Number, err)
		}
	}

	return nil
}
