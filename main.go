package main

import (
	"fmt"
	"os"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
