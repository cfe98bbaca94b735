package cmd

import (
	"fmt"
	"os"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new key pair",
	RunE:  generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func generateRun(cmd *cobra.Command, args []string) error {
	kp, err := signature.GenerateKeyPair()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(accountPath, 0755); err != nil {
		return err
	}

	path := getPrivateKeyPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("key file %s already exists", path)
	}

	if err := kp.Save(path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Private key:", kp.PrivateHex())
	fmt.Fprintln(cmd.OutOrStdout(), "Public key: ", kp.PublicID())
	return nil
}
