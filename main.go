package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/hito/cmd"
	"github.com/thenoetrevino/hito/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// commands report their own failures through the output formatter
	var exitErr *cli.ExitErr
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
