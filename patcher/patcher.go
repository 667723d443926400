// Package patcher orchestrates the pipeline: resolve configuration, generate
// glyph variants, compile the grouping rule program, and assemble the output
// font through the external engine. Each input font is processed
// independently; a failure on one input never stops the others.
package patcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/boxesandglue/numderline/config"
	"github.com/boxesandglue/numderline/feature"
	"github.com/boxesandglue/numderline/font"
	"github.com/boxesandglue/numderline/variants"
)

// tracer writes to trace with key 'numderline.patcher'.
func tracer() tracing.Trace {
	return tracing.Select("numderline.patcher")
}

// Patcher runs the patching pipeline. OutDir receives the final artifacts;
// intermediates live in a per-font temporary directory. With EmitOnly set the
// pipeline stops after writing the patched SFD and the feature program,
// without invoking the engine's binary steps.
type Patcher struct {
	Engine   Assembler
	OutDir   string
	EmitOnly bool
}

// Result is the outcome for a single input font.
type Result struct {
	Input  string
	Output string
	Err    error
}

// PatchAll resolves the options once and patches every font. A configuration
// error aborts the whole invocation before any font is touched; per-font
// failures are isolated into their Result.
func (p *Patcher) PatchAll(paths []string, opts config.Options) ([]Result, error) {
	params, err := config.Resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(p.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("patcher: creating output directory: %w", err)
	}

	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		out, err := p.PatchFont(path, params)
		if err != nil {
			tracer().Errorf("patching %s: %v", path, err)
		}
		results = append(results, Result{Input: path, Output: out, Err: err})
	}
	return results, nil
}

// PatchFont patches a single font and returns the path of the main artifact
// written to OutDir.
func (p *Patcher) PatchFont(path string, params config.Params) (string, error) {
	tmpDir, err := os.MkdirTemp("", "numderline-*")
	if err != nil {
		return "", fmt.Errorf("patcher: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	f, err := p.loadFont(path, tmpDir)
	if err != nil {
		return "", err
	}

	var sub *font.Font
	if params.SubFontPath != "" {
		if sub, err = p.loadFont(params.SubFontPath, tmpDir); err != nil {
			return "", err
		}
	}

	if params.Rename {
		rename(f, params.Suffix())
	}

	set, err := variants.Generate(f, sub, params, font.NewPrivateAllocator())
	if err != nil {
		return "", err
	}
	prog := feature.Compile(set.DigitNames, set.DotName, set.Classes,
		params.DecimalMode == config.DecimalGrouped)

	if p.EmitOnly {
		return p.emit(f, prog)
	}

	sfdPath := filepath.Join(tmpDir, "patched.sfd")
	if err := writeSFD(f, sfdPath); err != nil {
		return "", err
	}
	feaPath := filepath.Join(tmpDir, "mods.fea")
	if err := os.WriteFile(feaPath, []byte(prog.Render()), 0o644); err != nil {
		return "", fmt.Errorf("patcher: writing feature program: %w", err)
	}

	binPath := filepath.Join(tmpDir, "patched.ttf")
	if err := p.Engine.GenerateBinary(sfdPath, binPath); err != nil {
		return "", err
	}
	outPath := filepath.Join(p.OutDir, f.FullName+".ttf")
	if err := p.Engine.MergeFeatures(feaPath, binPath, outPath); err != nil {
		return "", err
	}
	tracer().Infof("created %s", outPath)
	return outPath, nil
}

// emit writes the patched SFD and the feature program to OutDir and stops.
func (p *Patcher) emit(f *font.Font, prog *feature.Program) (string, error) {
	sfdPath := filepath.Join(p.OutDir, f.FullName+".sfd")
	if err := writeSFD(f, sfdPath); err != nil {
		return "", err
	}
	feaPath := filepath.Join(p.OutDir, f.FullName+".fea")
	if err := os.WriteFile(feaPath, []byte(prog.Render()), 0o644); err != nil {
		return "", fmt.Errorf("patcher: writing feature program: %w", err)
	}
	return sfdPath, nil
}

// loadFont opens a font read-only. SFD inputs are parsed directly; anything
// else is converted through the engine first.
func (p *Patcher) loadFont(path, tmpDir string) (*font.Font, error) {
	sfdPath := path
	if strings.ToLower(filepath.Ext(path)) != ".sfd" {
		if p.Engine == nil {
			return nil, fmt.Errorf("patcher: %s is not an SFD file and no font engine is configured", path)
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		sfdPath = filepath.Join(tmpDir, base+".sfd")
		if err := p.Engine.ToSFD(path, sfdPath); err != nil {
			return nil, err
		}
	}
	fh, err := os.Open(sfdPath)
	if err != nil {
		return nil, fmt.Errorf("patcher: %w", err)
	}
	defer fh.Close()
	f, err := font.ParseSFD(fh)
	if err != nil {
		return nil, fmt.Errorf("patcher: %s: %w", path, err)
	}
	return f, nil
}

func writeSFD(f *font.Font, path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("patcher: %w", err)
	}
	if err := f.WriteSFD(fh); err != nil {
		fh.Close()
		return fmt.Errorf("patcher: writing %s: %w", path, err)
	}
	return fh.Close()
}
