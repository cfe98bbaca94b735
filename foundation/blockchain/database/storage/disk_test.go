package storage_test

import (
	"context"
	"testing"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/database/storage"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/genesis"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/state"
)

func Test_DumpChain(t *testing.T) {
	s, err := state.New(state.Config{Genesis: genesis.Genesis{Difficulty: 1, MiningReward: 50}})
	if err != nil {
		t.Fatalf("Should be able to construct the ledger: %s", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := s.MinePendingTransactions(context.Background(), "minerA"); err != nil {
			t.Fatalf("Should be able to mine: %s", err)
		}
	}

	disk, err := storage.NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("Should be able to open the dump folder: %s", err)
	}
	defer disk.Close()

	if err := s.Dump(disk); err != nil {
		t.Fatalf("Should be able to dump the chain: %s", err)
	}

	chain := s.RetrieveChain()

	var blocks []database.Block
	iter := disk.ForEach()
	for blockData, err := iter.Next(); !iter.Done(); blockData, err = iter.Next() {
		if err != nil {
			t.Fatalf("Should be able to read the block back: %s", err)
		}
		blocks = append(blocks, database.ToBlock(blockData))
	}

	if len(blocks) != len(chain) {
		t.Fatalf("Should read back %d blocks, got %d", len(chain), len(blocks))
	}

	for i := 1; i < len(blocks); i++ {
		if err := blocks[i].ValidateBlock(blocks[i-1], signature.Secp256k1{}, nil); err != nil {
			t.Fatalf("Should validate the dumped blk[%d]: %s", i, err)
		}
		if blocks[i].Hash != chain[i].Hash {
			t.Fatalf("Should keep the hash of blk[%d]", i)
		}
	}

	// Dumping a second time replaces the first dump.
	if err := s.Dump(disk); err != nil {
		t.Fatalf("Should be able to dump the chain again: %s", err)
	}

	blockData, err := disk.GetBlock(2)
	if err != nil {
		t.Fatalf("Should be able to get block 2: %s", err)
	}
	if blockData.Hash != chain[2].Hash {
		t.Fatalf("Should get back the hash of block 2.")
	}
}
