package main

import (
	"os"

	"github.com/Sakthirajan135/gct-connect-career-path/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
