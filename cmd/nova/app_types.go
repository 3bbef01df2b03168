package main

import tea "github.com/charmbracelet/bubbletea"

type appConfig struct {
	srcDir    string
	className string
	target    string // exe|dll
	cscPath   string
	extraRefs []string
}

// buildStartedMsg carries the event stream of a build goroutine.
type buildStartedMsg struct {
	events <-chan tea.Msg
}

// buildLogMsg is one console line from the build pipeline.
type buildLogMsg struct {
	line  string
	isErr bool
}

// buildCodeMsg delivers the generated C# so the shell can display it.
type buildCodeMsg struct {
	code string
}

type buildDoneMsg struct {
	ok bool
}
