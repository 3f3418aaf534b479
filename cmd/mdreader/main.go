package main

import (
	"fmt"
	"os"

	"github.com/dgallion1/mdreader/cmd/mdreader/cmd"
)

var Version = "dev"

func main() {
	if err := cmd.Execute(Version); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cmd.ExitCode(err))
	}
}
