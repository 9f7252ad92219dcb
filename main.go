package main

import (
	"os"

	"github.com/thenoetrevino/remark/cmd"
	"github.com/thenoetrevino/remark/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
