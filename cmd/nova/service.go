package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/novalang/nova"
	"github.com/novalang/nova/icon"
	"github.com/novalang/nova/toolchain"
)

func startBuild(cfg appConfig, file string) tea.Cmd {
	return func() tea.Msg {
		events := make(chan tea.Msg, 64)
		go runBuild(cfg, file, events)
		return buildStartedMsg{events: events}
	}
}

func waitBuildEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// runBuild is the whole compile pipeline for one file: translate, stage the
// icon if the generator asked for one, then hand the C# to the toolchain.
// It reports through the event channel and always finishes with a
// buildDoneMsg.
func runBuild(cfg appConfig, file string, events chan<- tea.Msg) {
	defer close(events)

	raw, err := os.ReadFile(filepath.Join(cfg.srcDir, file))
	if err != nil {
		events <- buildLogMsg{line: fmt.Sprintf("read %s: %v", file, err), isErr: true}
		events <- buildDoneMsg{}
		return
	}

	code, meta, err := nova.Translate(string(raw), cfg.className)
	if err != nil {
		events <- buildLogMsg{line: fmt.Sprintf("%s: %v", file, err), isErr: true}
		events <- buildDoneMsg{}
		return
	}
	events <- buildCodeMsg{code: code}

	// Icon problems are warnings: the generated code carries its own
	// runtime fallback, so the build still proceeds.
	if meta.IconSourcePath != "" {
		staged, err := icon.Stage(meta.IconSourcePath, cfg.srcDir, meta.IconTargetBasename, meta.IconNeedsConversion)
		if err != nil {
			events <- buildLogMsg{line: fmt.Sprintf("warning: icon %s: %v", meta.IconSourcePath, err)}
		} else if meta.IconNeedsConversion {
			events <- buildLogMsg{line: fmt.Sprintf("converted icon to %s", filepath.Base(staged))}
		} else {
			events <- buildLogMsg{line: fmt.Sprintf("staged icon %s", filepath.Base(staged))}
		}
	}

	kind, ext := toolchain.Exe, ".exe"
	if cfg.target == "dll" {
		kind, ext = toolchain.Library, ".dll"
	}
	outPath := filepath.Join(cfg.srcDir, strings.TrimSuffix(file, filepath.Ext(file))+ext)

	events <- buildLogMsg{line: fmt.Sprintf("compiling %s -> %s", file, filepath.Base(outPath))}
	res, err := toolchain.Invoker{CscPath: cfg.cscPath, ExtraRefs: cfg.extraRefs}.Build(code, meta, kind, outPath)
	if err != nil {
		events <- buildLogMsg{line: err.Error(), isErr: true}
		events <- buildDoneMsg{}
		return
	}
	for _, line := range strings.Split(res.Diagnostics, "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			events <- buildLogMsg{line: line, isErr: !res.Success}
		}
	}
	if res.Success {
		events <- buildLogMsg{line: "created " + filepath.Base(outPath)}
	} else {
		events <- buildLogMsg{line: "build failed", isErr: true}
	}
	events <- buildDoneMsg{ok: res.Success}
}

func listNovaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".nova") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
