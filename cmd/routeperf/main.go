package main

import (
	"os"

	"github.com/genc-murat/routeperf/cmd/routeperf/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
