package toolchain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novalang/nova/codegen"
)

func TestArgs(t *testing.T) {
	cases := []struct {
		name   string
		meta   codegen.Metadata
		kind   OutputKind
		extras []string
		want   []string
	}{
		{
			name: "console exe",
			kind: Exe,
			want: []string{"/target:exe", "/out:app.exe", "prog.cs"},
		},
		{
			name: "gui exe gets windowed subsystem and forms ref",
			meta: codegen.Metadata{NeedsGUI: true},
			kind: Exe,
			want: []string{"/target:winexe", "/reference:System.Windows.Forms.dll", "/out:app.exe", "prog.cs"},
		},
		{
			name: "gui with graphics",
			meta: codegen.Metadata{NeedsGUI: true, NeedsGraphics: true},
			kind: Exe,
			want: []string{"/target:winexe", "/reference:System.Windows.Forms.dll;System.Drawing.dll", "/out:app.exe", "prog.cs"},
		},
		{
			name: "library wins over gui",
			meta: codegen.Metadata{NeedsGUI: true},
			kind: Library,
			want: []string{"/target:library", "/reference:System.Windows.Forms.dll", "/out:app.exe", "prog.cs"},
		},
		{
			name:   "extra references appended",
			kind:   Exe,
			extras: []string{"Custom.dll"},
			want:   []string{"/target:exe", "/reference:Custom.dll", "/out:app.exe", "prog.cs"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Args(c.meta, c.kind, "app.exe", "prog.cs", c.extras)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestFindCompilerExplicitPath(t *testing.T) {
	fake := filepath.Join(t.TempDir(), "csc.exe")
	require.NoError(t, writeFakeCompiler(fake))

	p, err := FindCompiler(fake)
	require.NoError(t, err)
	assert.Equal(t, fake, p)

	// Surrounding quotes are tolerated; Windows paths often arrive quoted.
	p, err = FindCompiler(`"` + fake + `"`)
	require.NoError(t, err)
	assert.Equal(t, fake, p)
}

func TestFindCompilerMissingExplicitPath(t *testing.T) {
	_, err := FindCompiler(filepath.Join(t.TempDir(), "nope", "csc.exe"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCompilerNotFound))
}

func writeFakeCompiler(path string) error {
	return os.WriteFile(path, []byte("not a real compiler"), 0o755)
}
