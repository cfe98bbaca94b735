// Package genesis maintains access to the ledger's starting parameters.
package genesis

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Default values used when no genesis file is provided.
const (
	DefaultDifficulty   = 3
	DefaultMiningReward = 50
)

// Genesis represents the genesis file.
type Genesis struct {
	Date         time.Time `json:"date"`          // Time of the genesis block, zero means the time the ledger starts.
	Difficulty   uint16    `json:"difficulty"`    // Number of f's needed at the start of a block hash.
	MiningReward uint64    `json:"mining_reward"` // Reward for mining a block.
}

// Default returns the fixed defaults for a new ledger.
func Default() Genesis {
	return Genesis{
		Difficulty:   DefaultDifficulty,
		MiningReward: DefaultMiningReward,
	}
}

// =============================================================================

// Load opens and consumes the genesis file. Missing values take the defaults.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	gen := Default()
	if err := json.Unmarshal(content, &gen); err != nil {
		return Genesis{}, fmt.Errorf("unmarshal genesis: %w", err)
	}

	return gen, nil
}
