package main

import (
	"fmt"
	"os"

	"nftstake/cmd/nftstake-gateway/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
