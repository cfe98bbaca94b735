// This program performs administrative tasks against a dump of the ledger.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/nicecoin/app/tooling/admin/commands"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/database/storage"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
	"github.com/ardanlabs/nicecoin/foundation/logger"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("ADMIN")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	cfg := struct {
		conf.Version
		Args     conf.Args
		DumpPath string `conf:"default:zblock/dump/"`
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "bals [account] | trans [account] | validate",
		},
	}

	const prefix = "ADMIN"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	disk, err := storage.NewDisk(cfg.DumpPath)
	if err != nil {
		return err
	}
	defer disk.Close()

	blocks, err := commands.Load(disk)
	if err != nil {
		return fmt.Errorf("loading dump %s: %w", cfg.DumpPath, err)
	}

	log.Infow("startup", "status", "dump loaded", "path", cfg.DumpPath, "blocks", len(blocks))

	return processCommands(cfg.Args, blocks)
}

// processCommands handles the execution of the commands specified on
// the command line.
func processCommands(args conf.Args, blocks []database.Block) error {
	account := database.AccountID(args.Num(1))

	switch args.Num(0) {
	case "bals":
		if err := commands.Balances(os.Stdout, blocks, account); err != nil {
			return fmt.Errorf("getting balances: %w", err)
		}
	case "trans":
		if err := commands.Transactions(os.Stdout, blocks, account); err != nil {
			return fmt.Errorf("getting transactions: %w", err)
		}
	case "validate":
		if err := commands.Validate(os.Stdout, blocks, signature.Secp256k1{}); err != nil {
			return fmt.Errorf("validating dump: %w", err)
		}
	default:
		return fmt.Errorf("unknown command %q", args.Num(0))
	}

	return nil
}
