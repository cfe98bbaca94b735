package state

import (
	"fmt"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

// AddTransaction accepts a signed transaction into the pending buffer. There
// is no balance check, only the presence of both parties and the signature.
func (s *State) AddTransaction(tx database.Tx) error {
	if tx.FromID == "" || tx.ToID == "" {
		return fmt.Errorf("%w: must include from and to addresses", database.ErrMalformedTransaction)
	}

	if err := tx.CheckFields(); err != nil {
		return err
	}

	ok, err := tx.IsValid(s.verifier)
	if err != nil {
		return fmt.Errorf("%w: %w", database.ErrInvalidTransaction, err)
	}
	if !ok {
		return database.ErrInvalidTransaction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: AddTransaction: tx[%s]", tx)
	s.pending = append(s.pending, tx)

	return nil
}
