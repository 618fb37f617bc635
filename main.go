package main

import (
	"os"

	"github.com/ryokushen/devserver/cmd"
	"github.com/ryokushen/devserver/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
