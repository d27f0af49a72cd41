// Command mazestat inspects a .maz file: wall and column counts, the
// shortest path and the wall-follower path lengths, optionally the distance
// table and a traced path.
//
// Usage:
//
//	mazestat -file room.maz -width 9 -height 9 -distances -path left
//	mazestat -file blank.maz -width 5 -height 5 -init
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/lvmaze/flood"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/mazefile"
	"github.com/katalvlaran/lvmaze/solve"
)

// config holds the parsed command line.
type config struct {
	file          string
	width, height int
	distances     bool
	path          string
	init          bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("mazestat", flag.ContinueOnError)
	fs.StringVar(&cfg.file, "file", "", "The .maz file to read (or write with -init).")
	fs.IntVar(&cfg.width, "width", 9, "Active maze width in cells, 1 to 16.")
	fs.IntVar(&cfg.height, "height", 9, "Active maze height in cells, 1 to 16.")
	fs.BoolVar(&cfg.distances, "distances", false, "Print the distance of every cell from finish.")
	fs.StringVar(&cfg.path, "path", "", "Print the cells walked by a strategy: descent, left or right.")
	fs.BoolVar(&cfg.init, "init", false, "Write a cleared maze to -file instead of reading it.")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.file == "" {
		return cfg, errors.New("missing -file")
	}
	return cfg, nil
}

func run(args []string, out io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	if cfg.init {
		g, err := maze.New(cfg.width, cfg.height)
		if err != nil {
			return err
		}
		path, err := mazefile.Save(g, cfg.file)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote cleared %dx%d maze to %s\n", cfg.width, cfg.height, path)
		return nil
	}

	g, err := mazefile.Load(cfg.file, cfg.width, cfg.height)
	if err != nil {
		return err
	}
	r, f, err := solve.Analyze(g)
	if err != nil {
		return err
	}
	printReport(out, g, r)

	if cfg.distances {
		printDistances(out, g, f)
	}
	if cfg.path != "" {
		s, err := solve.ParseStrategy(cfg.path)
		if err != nil {
			return err
		}
		p := solve.Trace(g, f, s)
		trail := make([]string, len(p.Cells))
		for i, c := range p.Cells {
			trail[i] = displayCell(g, c)
		}
		fmt.Fprintf(out, "%s path: %s\n", s, strings.Join(trail, " "))
	}
	return nil
}

// printReport writes the stats block. Displayed coordinates count rows from
// the bottom, like the editor's stats panel.
func printReport(out io.Writer, g *maze.Grid, r solve.Report) {
	fmt.Fprintf(out, "Size: %dx%d\n", g.Width(), g.Height())
	fmt.Fprintf(out, "Start: %s\n", displayEndpoint(g, g.Start()))
	fmt.Fprintf(out, "Finish: %s\n", displayEndpoint(g, g.Finish()))
	fmt.Fprintf(out, "Walls: %d\n", r.Walls)
	fmt.Fprintf(out, "Columns: %d\n", r.Columns)
	fmt.Fprintf(out, "Regions: %d\n", r.Regions)
	fmt.Fprintf(out, "Shortest path: %s\n", cells(r.Shortest))
	fmt.Fprintf(out, "Left hand path: %s\n", cells(r.LeftHand))
	fmt.Fprintf(out, "Right hand path: %s\n", cells(r.RightHand))
}

func displayEndpoint(g *maze.Grid, e maze.Endpoint) string {
	c, ok := e.Cell()
	if !ok {
		return "(not specified)"
	}
	return displayCell(g, c)
}

func displayCell(g *maze.Grid, c maze.Cell) string {
	return fmt.Sprintf("(%d, %d)", c.X, g.Height()-c.Y-1)
}

func cells(n int) string {
	if n == maze.Unreachable {
		return "no path"
	}
	return fmt.Sprintf("%d cells", n)
}

// printDistances writes the distance table as drawn, top row first; "."
// marks unreachable cells.
func printDistances(out io.Writer, g *maze.Grid, f *flood.Field) {
	fmt.Fprintln(out, "Distances (top row first):")
	for y := 0; y < g.Height(); y++ {
		row := make([]string, g.Width())
		for x := range row {
			d := f.At(maze.Cell{X: x, Y: y})
			if d == maze.Unreachable {
				row[x] = "  ."
			} else {
				row[x] = fmt.Sprintf("%3d", d)
			}
		}
		fmt.Fprintln(out, strings.Join(row, " "))
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("mazestat: %v", err)
	}
}
