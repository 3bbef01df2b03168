package main

import (
	"bufio"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/novalang/nova"
)

// runPlainBuild compiles one file without the TUI, printing the pipeline's
// console lines to stdout and errors to stderr.
func runPlainBuild(cfg appConfig, file string) error {
	events := make(chan tea.Msg, 64)
	go runBuild(cfg, file, events)

	failed := false
	for msg := range events {
		switch m := msg.(type) {
		case buildLogMsg:
			if m.isErr {
				fmt.Fprintln(os.Stderr, m.line)
			} else {
				fmt.Println(m.line)
			}
		case buildDoneMsg:
			failed = !m.ok
		}
	}
	if failed {
		return fmt.Errorf("build of %s failed", file)
	}
	return nil
}

// runScript interprets a file directly. pause blocks until Enter.
func runScript(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	in, prog, err := nova.NewInterp(string(raw))
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	in.SetOutputHook(func(line string) {
		fmt.Println(line)
	})
	in.SetAckProvider(func() {
		fmt.Print("Paused. Press Enter to continue...")
		_, _ = reader.ReadString('\n')
	})

	_, err = in.Run(prog)
	return err
}
