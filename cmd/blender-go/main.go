package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/abyssparanoia/blender-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Commands print their own envelope; cobra usage errors do not.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
