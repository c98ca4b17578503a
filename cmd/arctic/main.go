// Command arctic is the front end's CLI surface: a urfave/cli app the
// way the teacher's tawago wires "init"/"build" subcommands, extended
// with this front end's own default compile action, a test runner, and
// an interactive REPL entry point when invoked with no arguments (§4,
// §6).
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/nomisfailla/arctic/internal/compiler"
	"github.com/nomisfailla/arctic/internal/project"
	"github.com/nomisfailla/arctic/internal/repl"
	"github.com/nomisfailla/arctic/internal/source"
)

func main() {
	app := &cli.App{
		Name:  "arctic",
		Usage: "arctic language front end",
		ExitErrHandler: func(c *cli.Context, err error) {
			tracerr.PrintSourceColor(tracerr.Wrap(err))
			os.Exit(1)
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dump-tokens", Usage: "print the token stream instead of the diagnostics"},
			&cli.BoolFlag{Name: "dump-ast", Usage: "print the parsed module instead of the diagnostics"},
		},
		Action: runDefault,
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create an arctic.yaml in the current directory",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return fmt.Errorf("no project name provided")
					}
					return project.Save(".", project.Manifest{Package: name})
				},
			},
			{
				Name:  "repl",
				Usage: "start an interactive session",
				Action: func(c *cli.Context) error {
					return repl.Run(c.Bool("dump-ast"))
				},
			},
			{
				Name:  "test",
				Usage: "run the bundled test suite (go test ./...)",
				Action: runTest,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		tracerr.PrintSourceColor(tracerr.Wrap(err))
		os.Exit(1)
	}
}

// runDefault is the no-subcommand action: compile a single file path
// (or start the REPL if none was given), honoring --dump-tokens and
// --dump-ast the way spec.md's §6 external interface describes.
func runDefault(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return repl.Run(c.Bool("dump-ast"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	result := compiler.Compile(path, data)

	if c.Bool("dump-tokens") {
		for _, tok := range result.Tokens {
			fmt.Printf("%d:%d %s %q\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Lexeme())
		}
		return exitFor(result.Diagnostics.HasErrors())
	}

	if c.Bool("dump-ast") {
		repr.Println(result.Module)
		return exitFor(result.Diagnostics.HasErrors())
	}

	buf := source.New(path, data)
	result.Diagnostics.RenderAll(os.Stderr, buf)
	return exitFor(result.Diagnostics.HasErrors())
}

// runTest shells out to "go test ./...", passing through whatever
// arguments followed "test" on the command line, the way the teacher's
// "build" command drives clang via os/exec.Command rather than
// reimplementing it.
func runTest(c *cli.Context) error {
	args := append([]string{"test", "./..."}, c.Args().Slice()...)
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			os.Exit(1)
		}
		return err
	}
	return nil
}

func exitFor(hasErrors bool) error {
	if hasErrors {
		os.Exit(1)
	}
	return nil
}
