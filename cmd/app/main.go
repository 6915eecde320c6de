package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/akyairhashvil/resultpro/internal/cli"
	"github.com/akyairhashvil/resultpro/internal/config"
)

const (
	shortDesc = "Calculate a GPA and export the result as PDF."
	longDesc  = `resultpro collects course scores and credit units, asks the GPA service for
the grade point average and class of degree, and saves the result as a PDF.

Run without a command to open the interactive form. The last calculated form
is kept locally and restored on the next start.
`
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCmd(config.AppName, shortDesc, longDesc)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %s\n", strings.TrimLeft(err.Error(), "\n"))
		return 1
	}
	return 0
}
