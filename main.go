package main

import (
	"os"

	"github.com/hostpick/hostpick/cmd"
	"github.com/hostpick/hostpick/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
