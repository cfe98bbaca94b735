// This program is a simple wallet for the nicecoin ledger.
package main

import "github.com/ardanlabs/nicecoin/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
