package codegen

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/novalang/nova/ast"
)

// Metadata is what generation learned about the program: which toolkits the
// emitted code needs at build time, and what the host must do about icons.
type Metadata struct {
	NeedsGUI            bool   // emitted code references the forms toolkit
	NeedsGraphics       bool   // emitted code references the drawing toolkit
	IconSourcePath      string // set_icon argument as written, "" if absent
	IconTargetBasename  string // filename the emitted code will load
	IconNeedsConversion bool   // source is a raster image, not an icon yet
}

// rasterExts are extensions the window toolkit cannot load as icons
// directly; the host converts these to .ico before the build.
var rasterExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true, ".gif": true,
}

const defaultClassName = "NovaProgram"

// Generate lowers a program into a complete C# compilation unit in one
// structure-preserving walk. Generation is deliberately permissive: raw
// window-body lines pass through verbatim, so it does not fail on unknown
// statement shapes.
func Generate(prog *ast.Program, className string) (string, Metadata) {
	if strings.TrimSpace(className) == "" {
		className = defaultClassName
	}
	g := &generator{}
	for _, st := range prog.Statements {
		g.statement(2, st)
	}
	return g.assemble(className), g.meta
}

type generator struct {
	lines []string
	meta  Metadata
	seq   int
}

func (g *generator) add(indent int, line string) {
	g.lines = append(g.lines, strings.Repeat("    ", indent)+line)
}

func (g *generator) name(prefix string) string {
	g.seq++
	return fmt.Sprintf("%s_%d", prefix, g.seq)
}

func (g *generator) statement(indent int, stmt ast.Statement) {
	switch s := stmt.(type) {
	case ast.VarDecl:
		if s.Init == nil {
			g.add(indent, fmt.Sprintf("object %s = null;", s.Name))
			return
		}
		g.add(indent, fmt.Sprintf("var %s = %s;", s.Name, renderExpr(s.Init)))
	case ast.PrintStmt:
		g.add(indent, fmt.Sprintf("Console.WriteLine(%s);", renderExpr(s.Expr)))
	case ast.PauseStmt:
		g.add(indent, "Console.ReadKey(true);")
	case ast.MessageStmt:
		g.meta.NeedsGUI = true
		g.add(indent, fmt.Sprintf("MessageBox.Show(Convert.ToString(%s));", renderExpr(s.Expr)))
	case ast.IfStmt:
		g.add(indent, fmt.Sprintf("if (%s)", renderCondition(s.Cond)))
		g.add(indent, "{")
		for _, st := range s.Then {
			g.statement(indent+1, st)
		}
		g.add(indent, "}")
		if s.Else != nil {
			g.add(indent, "else")
			g.add(indent, "{")
			for _, st := range s.Else {
				g.statement(indent+1, st)
			}
			g.add(indent, "}")
		}
	case ast.WhileStmt:
		g.add(indent, fmt.Sprintf("while (%s)", renderCondition(s.Cond)))
		g.add(indent, "{")
		for _, st := range s.Body {
			g.statement(indent+1, st)
		}
		g.add(indent, "}")
	case ast.WindowStmt:
		g.window(indent, s)
	case ast.ExprStmt:
		g.add(indent, renderExpr(s.Expr)+";")
	}
}

func (g *generator) window(indent int, w ast.WindowStmt) {
	g.meta.NeedsGUI = true
	g.meta.NeedsGraphics = true
	form := g.name("form")
	g.add(indent, fmt.Sprintf("Form %s = new Form();", form))
	g.add(indent, fmt.Sprintf("%s.Text = Convert.ToString(%s);", form, renderExpr(w.Title)))
	g.add(indent, fmt.Sprintf("%s.ClientSize = new System.Drawing.Size(%s, %s);", form, renderExpr(w.Width), renderExpr(w.Height)))
	for _, item := range w.Body {
		g.uiStatement(indent, form, item)
	}
	g.add(indent, fmt.Sprintf("Application.Run(%s);", form))
}

func (g *generator) uiStatement(indent int, form string, item ast.UIStatement) {
	switch s := item.(type) {
	case ast.SetIconStmt:
		g.setIcon(indent, form, s)
	case ast.LabelStmt:
		g.label(indent, form, s)
	case ast.ButtonStmt:
		g.button(indent, form, s)
	case ast.StmtItem:
		g.statement(indent, s.Stmt)
	case ast.RawStmt:
		g.add(indent, terminate(s.Text))
	}
}

// setIcon records icon metadata for the host and emits loading code that
// assumes the icon-format file will exist next to the executable. The
// picture-box fallback is unconditional scaffolding, taken only when the
// icon constructor throws at run time.
func (g *generator) setIcon(indent int, form string, s ast.SetIconStmt) {
	base := path.Base(filepath.ToSlash(s.Path))
	ext := strings.ToLower(path.Ext(base))
	g.meta.IconSourcePath = s.Path
	if rasterExts[ext] {
		g.meta.IconNeedsConversion = true
		base = strings.TrimSuffix(base, path.Ext(base)) + ".ico"
	}
	g.meta.IconTargetBasename = base

	g.add(indent, "try")
	g.add(indent, "{")
	g.add(indent+1, fmt.Sprintf("string _iconPath = System.IO.Path.Combine(AppDomain.CurrentDomain.BaseDirectory, %s);", quoteText(base)))
	g.add(indent+1, fmt.Sprintf("%s.Icon = new System.Drawing.Icon(_iconPath);", form))
	g.add(indent, "}")
	g.add(indent, "catch (Exception ex)")
	g.add(indent, "{")
	g.add(indent+1, "var pb = new PictureBox();")
	g.add(indent+1, fmt.Sprintf("try { pb.Image = System.Drawing.Image.FromFile(System.IO.Path.Combine(AppDomain.CurrentDomain.BaseDirectory, %s)); } catch { }", quoteText(base)))
	g.add(indent+1, "pb.SizeMode = PictureBoxSizeMode.Zoom;")
	g.add(indent+1, "pb.SetBounds(8, 8, 64, 64);")
	g.add(indent+1, fmt.Sprintf("%s.Controls.Add(pb);", form))
	g.add(indent+1, "Console.WriteLine(\"Icon load error: \" + ex.Message);")
	g.add(indent, "}")
}

func (g *generator) label(indent int, form string, s ast.LabelStmt) {
	lbl := g.name("lbl")
	g.add(indent, fmt.Sprintf("Label %s = new Label() { Text = Convert.ToString(%s), AutoSize = true };", lbl, renderExpr(s.Text)))
	if s.X != nil && s.Y != nil {
		w, h := "200", "24"
		if s.W != nil {
			w = renderExpr(s.W)
		}
		if s.H != nil {
			h = renderExpr(s.H)
		}
		g.add(indent, fmt.Sprintf("%s.SetBounds(%s, %s, %s, %s);", lbl, renderExpr(s.X), renderExpr(s.Y), w, h))
	} else {
		g.add(indent, fmt.Sprintf("%s.Location = new System.Drawing.Point(80, 20);", lbl))
	}
	g.add(indent, fmt.Sprintf("%s.Controls.Add(%s);", form, lbl))
}

// button wires the click handler, when one was parsed, by reusing the same
// statement rules as top-level code.
func (g *generator) button(indent int, form string, s ast.ButtonStmt) {
	btn := g.name("btn")
	g.add(indent, fmt.Sprintf("Button %s = new Button() { Text = Convert.ToString(%s) };", btn, renderExpr(s.Text)))
	if s.X != nil && s.Y != nil {
		g.add(indent, fmt.Sprintf("%s.SetBounds(%s, %s, 100, 30);", btn, renderExpr(s.X), renderExpr(s.Y)))
	} else {
		g.add(indent, fmt.Sprintf("%s.SetBounds(80, 100, 100, 30);", btn))
	}
	if s.OnClick != nil {
		g.add(indent, fmt.Sprintf("%s.Click += (s, e) =>", btn))
		g.add(indent, "{")
		for _, st := range s.OnClick {
			g.statement(indent+1, st)
		}
		g.add(indent, "};")
	}
	g.add(indent, fmt.Sprintf("%s.Controls.Add(%s);", form, btn))
}

// terminate appends a statement terminator to a verbatim line unless one is
// already there.
func terminate(raw string) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return t
	}
	switch t[len(t)-1] {
	case ';', '{', '}':
		return t
	}
	return t + ";"
}

// renderCondition emits the condition expression as written, wrapped for
// grouping only. Comparison chains already yield bool in C#; anything else
// is the program author's own target-language concern.
func renderCondition(e ast.Expr) string {
	return renderExpr(e)
}

func (g *generator) assemble(className string) string {
	var out []string
	out = append(out, "using System;")
	if g.meta.NeedsGUI {
		out = append(out, "using System.Windows.Forms;")
	}
	if g.meta.NeedsGraphics {
		out = append(out, "using System.Drawing;")
	}
	out = append(out, "using System.IO;", "")
	out = append(out, fmt.Sprintf("public class %s", className), "{")
	out = append(out, "    [STAThread]")
	out = append(out, "    public static void Main(string[] args)")
	out = append(out, "    {")
	if g.meta.NeedsGUI {
		out = append(out, "        Application.EnableVisualStyles();")
		out = append(out, "        Application.SetCompatibleTextRenderingDefault(false);")
	}
	out = append(out, g.lines...)
	out = append(out, "    }", "}")
	return strings.Join(out, "\n") + "\n"
}
