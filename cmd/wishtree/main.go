package main

import (
	"log"

	"github.com/evergreenhq/wishtree/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
