// Package state is the core API for the ledger and implements all the
// business rules and processing: admitting transactions, mining pending
// transactions into blocks, deriving balances and validating the chain.
package state

import (
	"sync"
	"time"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/genesis"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
)

// EventHandler defines a function that is called when events
// occur in the processing of the ledger.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by any
// package providing support for mining in the background.
type Worker interface {
	Shutdown()
	SignalStartMining()
	SignalCancelMining()
}

// =============================================================================

// Config represents the configuration required to start the ledger. The zero
// value is usable and gives the default genesis and the secp256k1 verifier.
type Config struct {
	Genesis   genesis.Genesis
	Verifier  database.Verifier
	EvHandler EventHandler
}

// State manages the chain and the pending transactions.
type State struct {
	mu     sync.RWMutex
	mineMu sync.Mutex

	genesis   genesis.Genesis
	verifier  database.Verifier
	evHandler EventHandler

	chain   []database.Block
	pending []database.Tx

	Worker Worker
}

// New constructs a new ledger holding only the genesis block.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	gen := cfg.Genesis
	if gen == (genesis.Genesis{}) {
		gen = genesis.Default()
	}

	verifier := cfg.Verifier
	if verifier == nil {
		verifier = signature.Secp256k1{}
	}

	// The genesis block is stamped with the genesis date when one is
	// provided, otherwise with the time the ledger starts.
	timeStamp := now()
	if !gen.Date.IsZero() {
		timeStamp = uint64(gen.Date.UTC().UnixMilli())
	}

	genesisBlock := database.Genesis(timeStamp)
	ev("state: New: genesis block[%s]", genesisBlock.Hash)

	state := State{
		genesis:   gen,
		verifier:  verifier,
		evHandler: ev,
		chain:     []database.Block{genesisBlock},
	}

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start mining in the background.

	return &state, nil
}

// Shutdown cleanly brings the ledger down.
func (s *State) Shutdown() error {
	s.evHandler("state: shutdown: started")
	defer s.evHandler("state: shutdown: completed")

	// Stop all background mining.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}

// =============================================================================

// now returns the current time in milliseconds.
func now() uint64 {
	return uint64(time.Now().UTC().UnixMilli())
}
