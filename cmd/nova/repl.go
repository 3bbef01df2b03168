package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/novalang/nova/parser"
	nruntime "github.com/novalang/nova/runtime"
)

// runREPL keeps one environment across inputs and buffers continuation
// lines while the parser reports the input as structurally incomplete, so
// multi-line blocks can be typed naturally.
func runREPL() error {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	in := nruntime.New()
	in.SetOutputHook(func(line string) {
		fmt.Println(line)
	})
	in.SetAckProvider(func() {
		_, _ = rl.Prompt("paused, press enter...")
	})

	var buf strings.Builder
	for {
		prompt := "nova> "
		if buf.Len() > 0 {
			prompt = "  ... "
		}
		text, err := rl.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			buf.Reset()
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		buf.WriteString(text)
		buf.WriteString("\n")
		src := buf.String()
		if strings.TrimSpace(src) == "" {
			buf.Reset()
			continue
		}

		prog, perr := parser.Parse(src)
		if perr != nil {
			if parser.IsIncomplete(perr) {
				continue
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", perr)
			buf.Reset()
			continue
		}

		rl.AppendHistory(strings.TrimSpace(src))
		buf.Reset()
		if _, rerr := in.Run(prog); rerr != nil {
			fmt.Fprintf(os.Stderr, "runtime error: %v\n", rerr)
		}
	}
}
