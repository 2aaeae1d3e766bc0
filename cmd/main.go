package main

import (
	"os"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
