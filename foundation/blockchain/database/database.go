// Package database defines the values that make up the ledger: transactions,
// blocks and the canonical encoding used to hash them. It also defines the
// signing capability the values depend on and the interfaces any package
// writing the chain out for inspection must implement.
package database

// EventHandler defines a function that is called when events occur while
// mining and validating blocks.
type EventHandler func(v string, args ...any)

// Signer represents the behavior required to sign a transaction. The public
// identifier must match the sender of the transaction being signed.
type Signer interface {
	PublicID() string
	Sign(digest []byte) ([]byte, error)
}

// Verifier represents the behavior required to verify a transaction
// signature against the public identifier of the sender.
type Verifier interface {
	Verify(publicID string, digest []byte, sig []byte) bool
}

// =============================================================================

// Serializer interface represents the behavior required to be implemented by any
// package providing support for writing and reading back a dump of the chain.
type Serializer interface {
	Write(blockData BlockData) error
	GetBlock(num uint64) (BlockData, error)
	ForEach() Iterator
	Close() error
	Reset() error
}

// Iterator interface represents the behavior required to be implemented by any
// package providing support to iterate over the blocks.
type Iterator interface {
	Next() (BlockData, error)
	Done() bool
}

// =============================================================================

// noopEvents is used when a nil event handler is provided.
func noopEvents(v string, args ...any) {}

// safeEvents makes sure there is always a handler to call.
func safeEvents(ev EventHandler) EventHandler {
	if ev == nil {
		return noopEvents
	}
	return ev
}
