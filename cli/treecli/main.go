package main

import (
	"log"

	"merkletree/cli"
)

func main() {
	if err := cli.Init(); err != nil {
		log.Fatalf("failed to initialize treecli: %v", err)
	}

	cli.Execute()
}
