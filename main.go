package main

import (
	"os"

	"github.com/ziadkadry99/cryptobook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
