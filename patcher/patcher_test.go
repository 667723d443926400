package patcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxesandglue/numderline/config"
	"github.com/boxesandglue/numderline/font"
)

var digitNames = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func mark(x float64) font.Outline {
	return font.Outline{Segments: []font.Segment{
		{Op: font.SegmentMoveTo, Args: [3]font.Point{{X: x, Y: 0}}},
		{Op: font.SegmentLineTo, Args: [3]font.Point{{X: x + 100, Y: 100}}},
	}}
}

// buildFont returns a minimal but complete patchable font.
func buildFont(fontName, family, full string) *font.Font {
	f := font.New(fontName, family, full, 800, 200)
	for d := 0; d < 10; d++ {
		f.AddGlyph(&font.Glyph{Name: digitNames[d], Codepoint: rune('0' + d), Width: 600, Outline: mark(float64(100 + d))})
	}
	f.AddGlyph(&font.Glyph{Name: "period", Codepoint: '.', Width: 600, Outline: mark(280)})
	f.AddGlyph(&font.Glyph{Name: "underscore", Codepoint: '_', Width: 600, Outline: mark(50)})
	f.AddGlyph(&font.Glyph{Name: "comma", Codepoint: ',', Width: 600, Outline: mark(270)})
	return f
}

func writeFontFile(t *testing.T, dir string, f *font.Font) string {
	t.Helper()
	path := filepath.Join(dir, f.FontName+".sfd")
	require.NoError(t, writeSFD(f, path))
	return path
}

// fakeAssembler records engine invocations and fabricates outputs.
type fakeAssembler struct {
	calls []string
	fail  string // tool name whose calls should fail
}

func (a *fakeAssembler) step(name, out string) error {
	a.calls = append(a.calls, name)
	if a.fail == name {
		return &AssemblyError{Tool: name, Output: "boom", Err: errors.New("exit status 1")}
	}
	return os.WriteFile(out, []byte(name), 0o644)
}

func (a *fakeAssembler) ToSFD(src, dst string) error            { return a.step("tosfd", dst) }
func (a *fakeAssembler) GenerateBinary(sfd, out string) error   { return a.step("generate", out) }
func (a *fakeAssembler) MergeFeatures(fea, f, out string) error { return a.step("merge", out) }

func TestRenameWithStyleSuffix(t *testing.T) {
	f := font.New("Source-Bold", "Source", "Source Bold", 800, 200)
	rename(f, "Numderline")

	assert.Equal(t, "Source with Numderline", f.FamilyName)
	assert.Equal(t, "Source Bold with Numderline", f.FullName)
	assert.Equal(t, "SourceWithNumderline-Bold", f.FontName)
}

func TestRenameWithoutStyle(t *testing.T) {
	f := font.New("Mono", "Mono", "Mono", 800, 200)
	rename(f, "NGroup")
	assert.Equal(t, "MonoWithNGroup", f.FontName)
}

func TestLangNameLine(t *testing.T) {
	line := langNameLine(1033, "Fam with N", "Full with N")
	assert.Contains(t, line, `LangName: 1033`)
	assert.Contains(t, line, `"Fam with N" "" "Full with N"`)
}

func TestPatchFontEmitOnly(t *testing.T) {
	dir := t.TempDir()
	in := writeFontFile(t, dir, buildFont("Test-Regular", "Test", "Test"))

	p := &Patcher{OutDir: filepath.Join(dir, "out"), EmitOnly: true}
	params, err := config.Resolve(config.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(p.OutDir, 0o755))

	out, err := p.PatchFont(in, params)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.OutDir, "Test with Numderline.sfd"), out)

	sfd, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(sfd), "FontName: TestWithNumderline")
	assert.Contains(t, string(sfd), "StartChar: nd6.9")

	fea, err := os.ReadFile(filepath.Join(p.OutDir, "Test with Numderline.fea"))
	require.NoError(t, err)
	assert.Contains(t, string(fea), "feature calt {")
	assert.Contains(t, string(fea), "reversesub @nd0' @nd6 by @nd1;")
}

func TestPatchFontDrivesEngine(t *testing.T) {
	dir := t.TempDir()
	in := writeFontFile(t, dir, buildFont("Test-Regular", "Test", "Test"))

	engine := &fakeAssembler{}
	p := &Patcher{Engine: engine, OutDir: filepath.Join(dir, "out")}
	require.NoError(t, os.MkdirAll(p.OutDir, 0o755))

	params, err := config.Resolve(config.DefaultOptions())
	require.NoError(t, err)

	out, err := p.PatchFont(in, params)
	require.NoError(t, err)
	assert.Equal(t, []string{"generate", "merge"}, engine.calls)
	assert.Equal(t, filepath.Join(p.OutDir, "Test with Numderline.ttf"), out)
	assert.FileExists(t, out)
}

func TestPatchFontSurfacesAssemblyError(t *testing.T) {
	dir := t.TempDir()
	in := writeFontFile(t, dir, buildFont("Test-Regular", "Test", "Test"))

	engine := &fakeAssembler{fail: "generate"}
	p := &Patcher{Engine: engine, OutDir: filepath.Join(dir, "out")}
	require.NoError(t, os.MkdirAll(p.OutDir, 0o755))
	params, err := config.Resolve(config.DefaultOptions())
	require.NoError(t, err)

	_, err = p.PatchFont(in, params)
	var asmErr *AssemblyError
	require.ErrorAs(t, err, &asmErr)
	assert.Contains(t, asmErr.Error(), "boom")
}

func TestPatchAllIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFontFile(t, dir, buildFont("Good-Regular", "Good", "Good"))

	bad := font.New("Bad-Regular", "Bad", "Bad", 800, 200)
	bad.AddGlyph(&font.Glyph{Name: "zero", Codepoint: '0', Width: 600, Outline: mark(100)})
	badPath := writeFontFile(t, dir, bad)

	p := &Patcher{OutDir: filepath.Join(dir, "out"), EmitOnly: true}
	results, err := p.PatchAll([]string{badPath, good}, config.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 2)

	var missing *font.MissingGlyphError
	assert.ErrorAs(t, results[0].Err, &missing)
	assert.NoError(t, results[1].Err)
	assert.FileExists(t, results[1].Output)
}

func TestPatchAllAbortsOnConfigError(t *testing.T) {
	opts := config.DefaultOptions()
	opts.AddCommas = true // conflicts with default underlining

	p := &Patcher{OutDir: t.TempDir(), EmitOnly: true}
	results, err := p.PatchAll([]string{"whatever.sfd"}, opts)

	var cfgErr *config.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Nil(t, results)
}

func TestLoadFontRejectsBinaryWithoutEngine(t *testing.T) {
	p := &Patcher{OutDir: t.TempDir(), EmitOnly: true}
	params, err := config.Resolve(config.DefaultOptions())
	require.NoError(t, err)

	_, err = p.PatchFont("font.ttf", params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no font engine")
}
