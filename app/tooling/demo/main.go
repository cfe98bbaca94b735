// This program walks through the life of a small ledger: keys are generated,
// value is transferred and mined, balances are derived and then a block is
// tampered with to show the chain stops validating.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/genesis"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/state"
	"github.com/ardanlabs/nicecoin/foundation/logger"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {
	log, err := logger.New("DEMO")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Errorw("demo", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Ledger struct {
			Difficulty   uint16 `conf:"default:3"`
			MiningReward uint64 `conf:"default:50"`
		}
		Demo struct {
			Transfer  uint64 `conf:"default:100"`
			PrintJSON bool   `conf:"default:true"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "nicecoin ledger demonstration",
		},
	}

	const prefix = "DEMO"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Ledger

	ev := func(v string, args ...any) {
		log.Debugw(fmt.Sprintf(v, args...))
	}

	st, err := state.New(state.Config{
		Genesis: genesis.Genesis{
			Difficulty:   cfg.Ledger.Difficulty,
			MiningReward: cfg.Ledger.MiningReward,
		},
		EvHandler: ev,
	})
	if err != nil {
		return fmt.Errorf("constructing ledger: %w", err)
	}
	defer st.Shutdown()

	myKey, err := signature.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("generating my key: %w", err)
	}
	myID := database.PublicKeyToAccountID(myKey)

	otherKey, err := signature.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("generating other key: %w", err)
	}
	otherID := database.PublicKeyToAccountID(otherKey)

	log.Infow("keys", "mine", myID, "other", otherID)

	// =========================================================================
	// Transfers and mining

	ctx := context.Background()

	transfer := func(from signature.KeyPair, to database.AccountID, value uint64) error {
		tx := database.NewTx(database.PublicKeyToAccountID(from), to, value)
		if err := tx.Sign(from); err != nil {
			return fmt.Errorf("signing: %w", err)
		}
		return st.AddTransaction(tx)
	}

	mine := func() error {
		block, err := st.MinePendingTransactions(ctx, myID)
		if err != nil {
			return fmt.Errorf("mining: %w", err)
		}
		log.Infow("block mined", "number", block.Header.Number, "nonce", block.Header.Nonce, "hash", block.Hash)
		return nil
	}

	if err := transfer(myKey, otherID, cfg.Demo.Transfer); err != nil {
		return err
	}
	if err := mine(); err != nil {
		return err
	}

	if err := transfer(otherKey, myID, cfg.Demo.Transfer/2); err != nil {
		return err
	}
	if err := mine(); err != nil {
		return err
	}

	log.Infow("balance", "account", "mine", "balance", st.BalanceOf(myID))
	log.Infow("balance", "account", "other", "balance", st.BalanceOf(otherID))

	if err := mine(); err != nil {
		return err
	}

	log.Infow("balance", "account", "mine", "balance", st.BalanceOf(myID))
	log.Infow("chain", "valid", st.IsChainValid())

	// =========================================================================
	// Tampering

	// The ledger only hands out copies, so the tampering happens on a copy
	// of the chain and is validated the same way the ledger does it.
	chain := st.RetrieveChain()

	chain[1].Trans[0].Value = cfg.Demo.Transfer * 10
	log.Infow("tampered", "block", 1, "valid", validate(chain))

	chain[1].Hash = chain[1].ComputeHash()
	log.Infow("rehashed", "block", 1, "valid", validate(chain))

	if cfg.Demo.PrintJSON {
		data, err := json.MarshalIndent(chain, "", "    ")
		if err != nil {
			return fmt.Errorf("marshal chain: %w", err)
		}
		fmt.Println(string(data))
	}

	return nil
}

// validate checks every block against its parent.
func validate(chain []database.Block) bool {
	for i := 1; i < len(chain); i++ {
		if err := chain[i].ValidateBlock(chain[i-1], signature.Secp256k1{}, nil); err != nil {
			return false
		}
	}
	return true
}
