package patcher

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Assembler is the boundary to the external font-editing engine and the
// shaping-table compiler. Implementations convert binaries to SFD, regenerate
// binaries from SFD, and merge a feature program into a font's substitution
// tables.
type Assembler interface {
	ToSFD(src, dst string) error
	GenerateBinary(sfd, out string) error
	MergeFeatures(fea, fontPath, out string) error
}

// AssemblyError reports a failed external-collaborator invocation, with the
// tool's diagnostics surfaced verbatim.
type AssemblyError struct {
	Tool   string
	Output string
	Err    error
}

func (e *AssemblyError) Error() string {
	msg := fmt.Sprintf("patcher: %s failed: %v", e.Tool, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *AssemblyError) Unwrap() error { return e.Err }

// ExecAssembler drives FontForge and fontTools as subprocesses: FontForge for
// binary↔SFD conversion and regeneration, `fonttools feaLib` for merging the
// compiled feature program into GSUB.
type ExecAssembler struct {
	FontForge string // fontforge binary, default "fontforge"
	FontTools string // fonttools binary, default "fonttools"
}

// NewExecAssembler returns an assembler using the tools from $PATH.
func NewExecAssembler() *ExecAssembler {
	return &ExecAssembler{FontForge: "fontforge", FontTools: "fonttools"}
}

// toSFDScript also converts quadratic layers to cubic, which is what the SFD
// codec expects.
const toSFDScript = `import sys, fontforge
f = fontforge.open(sys.argv[1])
for name in f.layers:
    f.layers[name].is_quadratic = False
f.save(sys.argv[2])
`

const generateScript = `import sys, fontforge
f = fontforge.open(sys.argv[1])
f.generate(sys.argv[2])
`

func (a *ExecAssembler) ToSFD(src, dst string) error {
	return a.run(a.FontForge, "-lang=py", "-c", toSFDScript, src, dst)
}

func (a *ExecAssembler) GenerateBinary(sfd, out string) error {
	return a.run(a.FontForge, "-lang=py", "-c", generateScript, sfd, out)
}

func (a *ExecAssembler) MergeFeatures(fea, fontPath, out string) error {
	return a.run(a.FontTools, "feaLib", "-t", "GSUB", "-o", out, fea, fontPath)
}

func (a *ExecAssembler) run(tool string, args ...string) error {
	cmd := exec.Command(tool, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	tracer().Debugf("running %s", tool)
	if err := cmd.Run(); err != nil {
		return &AssemblyError{Tool: tool, Output: stderr.String(), Err: err}
	}
	return nil
}
