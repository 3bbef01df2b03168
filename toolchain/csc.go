// Package toolchain turns generated C# into a binary by driving the
// external csc compiler. The core never calls this; hosts feed it the
// generator's output and metadata.
package toolchain

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/novalang/nova/codegen"
)

type OutputKind int

const (
	// Exe builds a standalone program; window programs get the windowed
	// subsystem so no console flashes up behind them.
	Exe OutputKind = iota
	// Library builds a .dll.
	Library
)

// ErrCompilerNotFound means no usable csc was located; the host should ask
// the user for a path.
var ErrCompilerNotFound = errors.New("csc compiler not found")

// wellKnownPaths are checked after PATH; classic .NET Framework installs
// don't put csc on PATH.
var wellKnownPaths = []string{
	`C:\Windows\Microsoft.NET\Framework64\v4.0.30319\csc.exe`,
	`C:\Windows\Microsoft.NET\Framework\v4.0.30319\csc.exe`,
}

// Invoker runs the C# compiler over generated source.
type Invoker struct {
	CscPath   string   // explicit compiler path; discovered when empty
	ExtraRefs []string // additional /reference assemblies
}

// Result reports one build attempt.
type Result struct {
	Success     bool
	Diagnostics string   // combined compiler output
	Command     []string // what was executed, for the host's console
	OutputPath  string
}

// Build writes source to a scratch file beside the output, invokes csc with
// flags derived from the generation metadata, and cleans up the scratch
// file. A failed compile is a Result with Success false, not an error;
// errors mean the build could not even be attempted.
func (iv Invoker) Build(source string, meta codegen.Metadata, kind OutputKind, outPath string) (Result, error) {
	csc, err := FindCompiler(iv.CscPath)
	if err != nil {
		return Result{}, err
	}

	scratch := filepath.Join(filepath.Dir(outPath), "nova_build.cs")
	if err := os.WriteFile(scratch, []byte(source), 0o644); err != nil {
		return Result{}, fmt.Errorf("write scratch source: %w", err)
	}
	defer os.Remove(scratch)

	args := Args(meta, kind, outPath, scratch, iv.ExtraRefs)
	cmd := exec.Command(csc, args...)
	out, runErr := cmd.CombinedOutput()
	return Result{
		Success:     runErr == nil,
		Diagnostics: strings.TrimSpace(string(out)),
		Command:     append([]string{csc}, args...),
		OutputPath:  outPath,
	}, nil
}

// Args assembles the csc argument list for one build.
func Args(meta codegen.Metadata, kind OutputKind, outPath, sourcePath string, extraRefs []string) []string {
	var args []string
	switch {
	case kind == Library:
		args = append(args, "/target:library")
	case meta.NeedsGUI:
		args = append(args, "/target:winexe")
	default:
		args = append(args, "/target:exe")
	}

	var refs []string
	if meta.NeedsGUI {
		refs = append(refs, "System.Windows.Forms.dll")
	}
	if meta.NeedsGraphics {
		refs = append(refs, "System.Drawing.dll")
	}
	refs = append(refs, extraRefs...)
	if len(refs) > 0 {
		args = append(args, "/reference:"+strings.Join(refs, ";"))
	}

	args = append(args, "/out:"+outPath, sourcePath)
	return args
}

// FindCompiler resolves the csc binary: an explicit path wins, then PATH,
// then the well-known framework locations.
func FindCompiler(custom string) (string, error) {
	if p := strings.Trim(strings.TrimSpace(custom), `"`); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		return "", fmt.Errorf("%w: %s does not exist", ErrCompilerNotFound, p)
	}
	if p, err := exec.LookPath("csc"); err == nil {
		return p, nil
	}
	for _, p := range wellKnownPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrCompilerNotFound
}
