package nova_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/novalang/nova"
	"github.com/novalang/nova/parser"
	nruntime "github.com/novalang/nova/runtime"
)

func TestRunBasicProgram(t *testing.T) {
	out, err := nova.Run(`
have greeting = "hello";
have n = 2;
put greeting + " x" + n;
when (n > 1) {
    put "many";
} otherwise {
    put "one";
}
`)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("unexpected output count: %d (%+v)", len(out), out)
	}
	if out[0] != "hello x2" {
		t.Fatalf("unexpected first output: %q", out[0])
	}
	if out[1] != "many" {
		t.Fatalf("unexpected second output: %q", out[1])
	}
}

func TestRunCountingLoop(t *testing.T) {
	out, err := nova.Run(`
have i = 0;
have total = 0;
while (i < 5) {
    total = total + i;
    i = i + 1;
}
put total;
`)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(out) != 1 || out[0] != "10" {
		t.Fatalf("unexpected loop output: %+v", out)
	}
}

func TestRunFlatChainArithmetic(t *testing.T) {
	out, err := nova.Run("put 2 + 3 * 4")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(out) != 1 || out[0] != "20" {
		t.Fatalf("expected flat left-to-right evaluation, got %+v", out)
	}
}

func TestRunDivisionByZero(t *testing.T) {
	out, err := nova.Run(`put "first"; put 1 / 0`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	var rerr *nruntime.RuntimeError
	if !errors.As(err, &rerr) || rerr.Kind != nruntime.DivisionByZero {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0] != "first" {
		t.Fatalf("output before the failure should survive: %+v", out)
	}
}

func TestRunRejectsWindow(t *testing.T) {
	_, err := nova.Run(`ui_window("App", 100, 100) { label("x") }`)
	var rerr *nruntime.RuntimeError
	if !errors.As(err, &rerr) || rerr.Kind != nruntime.UndefinedBehavior {
		t.Fatalf("expected UndefinedBehavior, got %v", err)
	}
}

func TestParseErrorSurfaces(t *testing.T) {
	_, err := nova.Run("have = 5")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("unexpected error type: %v", err)
	}
}

func TestIncompleteInputMarker(t *testing.T) {
	_, err := nova.Parse("while (1) {")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !parser.IsIncomplete(err) {
		t.Fatalf("expected incomplete marker: %v", err)
	}

	_, err = nova.Parse("while (1) {}")
	if err != nil {
		t.Fatalf("complete input should parse: %v", err)
	}
}

func TestTranslateConsoleProgram(t *testing.T) {
	code, meta, err := nova.Translate(`
have x = 5;
put x + 1;
pause;
`, "Demo")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if meta.NeedsGUI || meta.NeedsGraphics {
		t.Fatalf("console program should not need a toolkit: %+v", meta)
	}
	for _, want := range []string{
		"public class Demo",
		"var x = 5;",
		"Console.WriteLine(x + 1);",
		"Console.ReadKey(true);",
	} {
		if !strings.Contains(code, want) {
			t.Fatalf("generated code missing %q:\n%s", want, code)
		}
	}
}

func TestTranslateWindowProgram(t *testing.T) {
	code, meta, err := nova.Translate(`
ui_window("Greeter", 320, 200) {
    set_icon("art/logo.png")
    label("Hi", 10, 10)
    button("OK", 10, 40) {
        ui_message("bye");
    }
}
`, "")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if !meta.NeedsGUI || !meta.NeedsGraphics {
		t.Fatalf("window program should need both toolkits: %+v", meta)
	}
	if meta.IconSourcePath != "art/logo.png" || meta.IconTargetBasename != "logo.ico" || !meta.IconNeedsConversion {
		t.Fatalf("unexpected icon metadata: %+v", meta)
	}
	for _, want := range []string{
		"public class NovaProgram",
		`Convert.ToString("Greeter")`,
		"new System.Drawing.Size(320, 200)",
		"Application.Run(",
		`MessageBox.Show(Convert.ToString("bye"));`,
	} {
		if !strings.Contains(code, want) {
			t.Fatalf("generated code missing %q:\n%s", want, code)
		}
	}
}

func TestInterpKeepsEnvironmentBetweenRuns(t *testing.T) {
	in, prog, err := nova.NewInterp("have score = 40;")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := in.Run(prog); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	next, err := nova.Parse("put score + 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	out, err := in.Run(next)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if len(out) != 1 || out[0] != "42" {
		t.Fatalf("environment should persist across runs: %+v", out)
	}
}
