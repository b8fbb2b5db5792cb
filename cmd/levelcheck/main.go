// Command levelcheck lints level files: it lists the doors of each level with
// their initial state and flags props the game would silently ignore.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/milk9111/dungeon/levels"
	"golang.org/x/term"
)

var (
	styleTitle = color.Style{color.FgCyan, color.OpBold}
	styleOpen  = color.Style{color.FgGreen}
	styleShut  = color.Style{color.FgYellow}
	styleInfo  = color.Style{color.FgGray}
	styleWarn  = color.Style{color.FgYellow, color.OpBold}
	styleError = color.Style{color.FgRed, color.OpBold}
)

func main() {
	strict := flag.Bool("strict", false, "exit non-zero on warnings too")
	noColor := flag.Bool("no-color", false, "disable colour output")
	flag.Parse()

	if *noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Disable()
	}

	names := flag.Args()
	if len(names) == 0 {
		names = levels.Names()
	}

	worst := severityInfo
	for _, name := range names {
		lvl, err := levels.Load(name)
		if err != nil {
			fmt.Fprintln(os.Stdout, styleError.Sprintf("%s: %v", name, err))
			worst = severityError
			continue
		}
		r := checkLevel(name, lvl)
		printReport(os.Stdout, r)
		worst = max(worst, r.worst())
	}

	if worst == severityError || (*strict && worst == severityWarn) {
		os.Exit(1)
	}
}

func printReport(out io.Writer, r report) {
	fmt.Fprintln(out, styleTitle.Sprintf("%s (%dx%d)", r.level, r.width, r.height))
	fmt.Fprintf(out, "  doors: %d\n", len(r.doors))
	for _, d := range r.doors {
		state := styleShut.Sprint("closed")
		if d.open {
			state = styleOpen.Sprint("open")
		}
		fmt.Fprintf(out, "    (%d,%d) %s [%s]\n", d.x, d.y, state, d.source)
	}
	for _, f := range r.findings {
		switch f.severity {
		case severityError:
			fmt.Fprintln(out, "  "+styleError.Sprint("error: ")+f.message)
		case severityWarn:
			fmt.Fprintln(out, "  "+styleWarn.Sprint("warn: ")+f.message)
		default:
			fmt.Fprintln(out, "  "+styleInfo.Sprint("info: "+f.message))
		}
	}
}
