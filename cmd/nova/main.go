package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	src := flag.String("src", ".", "folder containing .nova source files")
	class := flag.String("class", "NovaProgram", "output class name for generated C#")
	target := flag.String("target", "exe", "build target: exe|dll")
	csc := flag.String("csc", "", "path to csc.exe (discovered when empty)")
	refs := flag.String("refs", "", "extra assembly references, semicolon separated")
	runFile := flag.String("run", "", "interpret the given .nova file directly and exit")
	plainFile := flag.String("plain", "", "compile the given .nova file without the TUI and exit")
	repl := flag.Bool("repl", false, "start an interactive interpreter session")
	flag.Parse()

	cfg := appConfig{
		srcDir:    *src,
		className: *class,
		target:    *target,
		cscPath:   *csc,
		extraRefs: splitRefs(*refs),
	}

	switch {
	case *repl:
		if err := runREPL(); err != nil {
			fmt.Fprintf(os.Stderr, "nova: %v\n", err)
			os.Exit(1)
		}
	case *runFile != "":
		if err := runScript(*runFile); err != nil {
			fmt.Fprintf(os.Stderr, "nova: %v\n", err)
			os.Exit(1)
		}
	case *plainFile != "":
		if err := runPlainBuild(cfg, *plainFile); err != nil {
			fmt.Fprintf(os.Stderr, "nova: %v\n", err)
			os.Exit(1)
		}
	default:
		p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "tui: %v\n", err)
			os.Exit(1)
		}
	}
}

func splitRefs(raw string) []string {
	raw = strings.ReplaceAll(raw, ",", ";")
	var refs []string
	for _, p := range strings.Split(raw, ";") {
		if p = strings.TrimSpace(p); p != "" {
			refs = append(refs, p)
		}
	}
	return refs
}
