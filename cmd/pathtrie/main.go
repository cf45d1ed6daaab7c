package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

// newApp builds the CLI printing results to out and logs to errOut.
func newApp(out, errOut io.Writer) *cli.App {

	app := &cli.App{
		Name:      "pathtrie",
		Usage:     "inspect a path trie built from a YAML manifest",
		Version:   versioninfo.Short(),
		Writer:    out,
		ErrWriter: errOut,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     "manifest",
			Aliases:  []string{"m"},
			Usage:    "YAML manifest with the trie entries (or '-' for stdin)",
			Required: true,
			EnvVars:  []string{"PATHTRIE_MANIFEST"},
		},
		&cli.StringFlag{
			Name:    "delimiter",
			Usage:   "path delimiter, overrides the manifest",
			EnvVars: []string{"PATHTRIE_DELIMITER"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"PATHTRIE_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print results as JSON",
		},
	}
	app.Before = func(cctx *cli.Context) error {
		_, err := configLogger(cctx, cctx.App.ErrWriter)
		return err
	}
	app.Commands = []*cli.Command{
		cmdTree,
		cmdFetch,
		cmdItems,
		cmdList,
		cmdCount,
	}
	return app
}
