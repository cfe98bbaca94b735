package genesis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/genesis"
)

func Test_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.json")
	if err := os.WriteFile(path, []byte(`{"date":"2021-04-19T00:00:00Z","difficulty":5}`), 0600); err != nil {
		t.Fatalf("Should be able to write the genesis file: %s", err)
	}

	gen, err := genesis.Load(path)
	if err != nil {
		t.Fatalf("Should be able to load the genesis file: %s", err)
	}

	if gen.Difficulty != 5 {
		t.Fatalf("Should get the difficulty from the file, got %d", gen.Difficulty)
	}

	if gen.MiningReward != genesis.DefaultMiningReward {
		t.Fatalf("Should get the default mining reward, got %d", gen.MiningReward)
	}

	if gen.Date.Year() != 2021 {
		t.Fatalf("Should get the date from the file, got %s", gen.Date)
	}

	if _, err := genesis.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("Should fail to load a missing file.")
	}
}
