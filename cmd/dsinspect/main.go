/*
Command dsinspect loads a text file as an array of lines and inspects the
balanced tree holding it.

	dsinspect stats  FILE     print length, height and rotation count
	dsinspect dump   FILE     print the tree structure
	dsinspect dot    FILE     print the tree in Graphviz DOT format

With --html the file is parsed as an HTML fragment and its text segments are
loaded instead of lines.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/dsarray"
	"github.com/npillmayer/dsarray/html"
	"github.com/npillmayer/dsarray/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	newApp().RunAndExitOnError()
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "dsinspect",
		Usage: "inspect the size-balanced tree of a file loaded as an array",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug tracing to stderr",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "load text segments of an HTML fragment instead of lines",
			},
			&cli.Int64Flag{
				Name:  "fragment-size",
				Usage: "bytes read per fragment when loading text files (0 = by file size)",
			},
		},
		Before: setupTracing,
	}
	app.Commands = []*cli.Command{
		{
			Name:      "stats",
			Usage:     "print length, height and rotations, and verify balance",
			ArgsUsage: "FILE",
			Action:    runStats,
		},
		{
			Name:      "dump",
			Usage:     "print the tree structure",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "max-width",
					Usage: "truncate element labels to this display width (0 = derived from terminal)",
				},
				&cli.BoolFlag{
					Name:  "no-color",
					Usage: "do not color labels by depth",
				},
			},
			Action: runDump,
		},
		{
			Name:      "dot",
			Usage:     "print the tree in Graphviz DOT format",
			ArgsUsage: "FILE",
			Action:    runDot,
		},
	}
	return app
}

func setupTracing(cctx *cli.Context) error {
	gtrace.CoreTracer = gologadapter.New()
	if cctx.Bool("debug") {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	return nil
}

// load reads the file named by the first argument, either line by line or as
// HTML text segments.
func load(cctx *cli.Context) (*dsarray.Array[string], error) {
	name := cctx.Args().First()
	if name == "" {
		return nil, errors.New("missing FILE argument")
	}
	if cctx.Bool("html") {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return html.TextFromHTML(f)
	}
	cfg := &textfile.Config{FragmentSize: cctx.Int64("fragment-size")}
	return textfile.Load(context.Background(), name, cfg)
}

func runStats(cctx *cli.Context) error {
	a, err := load(cctx)
	if err != nil {
		return err
	}
	stats := a.Stats()
	w := cctx.App.Writer
	fmt.Fprintf(w, "length:    %d\n", stats.Len)
	fmt.Fprintf(w, "height:    %d\n", stats.Height)
	fmt.Fprintf(w, "rotations: %d\n", stats.Rotations)
	if err := a.Check(); err != nil {
		return fmt.Errorf("tree check failed: %w", err)
	}
	fmt.Fprintln(w, "balanced:  ok")
	return nil
}

func runDump(cctx *cli.Context) error {
	a, err := load(cctx)
	if err != nil {
		return err
	}
	opts := dsarray.DumpOptionsFromTerminal()
	if w := cctx.Int("max-width"); w > 0 {
		opts.MaxWidth = w
	}
	if cctx.Bool("no-color") {
		opts.Color = false
	}
	return dsarray.Dump(a, cctx.App.Writer, opts)
}

func runDot(cctx *cli.Context) error {
	a, err := load(cctx)
	if err != nil {
		return err
	}
	return dsarray.ToDot(a, cctx.App.Writer)
}
