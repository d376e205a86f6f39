package opengl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-labs/core"
	"render-labs/math"
)

// Program is a linked vertex+fragment program built from two files.
// A Program whose ID is 0 failed to build; binding it and setting its
// uniforms are no-ops, so a lab with a broken shader keeps running.
type Program struct {
	ID       uint32
	VertPath string
	FragPath string

	locations map[string]int32
}

// LoadProgram reads, compiles and links the two shader files. The returned
// program is never nil; on error its ID is 0 and err is a *core.IOError,
// *core.CompileError or *core.LinkError.
func LoadProgram(vertPath, fragPath string) (*Program, error) {
	p := &Program{VertPath: vertPath, FragPath: fragPath}
	id, err := buildProgram(vertPath, fragPath)
	if err != nil {
		return p, err
	}
	p.ID = id
	return p, nil
}

// Reload rebuilds the program from its files. The old program stays bound
// to p when the rebuild fails.
func (p *Program) Reload() error {
	id, err := buildProgram(p.VertPath, p.FragPath)
	if err != nil {
		return err
	}
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
	}
	p.ID = id
	p.locations = nil
	return nil
}

// Uses reports whether path is one of the program's source files.
func (p *Program) Uses(path string) bool {
	clean := filepath.Clean(path)
	return clean == filepath.Clean(p.VertPath) || clean == filepath.Clean(p.FragPath)
}

func (p *Program) Valid() bool { return p != nil && p.ID != 0 }

// Use binds the program and reports whether there was anything to bind.
func (p *Program) Use() bool {
	if !p.Valid() {
		return false
	}
	gl.UseProgram(p.ID)
	return true
}

func (p *Program) Delete() {
	if !p.Valid() {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
	p.locations = nil
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	if p.locations == nil {
		p.locations = make(map[string]int32)
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, m math.Mat4) {
	if !p.Valid() {
		return
	}
	gl.UniformMatrix4fv(p.location(name), 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
}

func (p *Program) SetVec3(name string, v math.Vec3) {
	if !p.Valid() {
		return
	}
	gl.Uniform3f(p.location(name), v.X, v.Y, v.Z)
}

func (p *Program) SetFloat(name string, f float32) {
	if !p.Valid() {
		return
	}
	gl.Uniform1f(p.location(name), f)
}

func (p *Program) SetInt(name string, i int32) {
	if !p.Valid() {
		return
	}
	gl.Uniform1i(p.location(name), i)
}

// ── Shader helpers ────────────────────────────────────────────────────────────

// readShaderSource loads a shader file as a NUL-terminated string.
func readShaderSource(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", &core.IOError{Path: path, Err: err}
	}
	return string(src) + "\x00", nil
}

func buildProgram(vertPath, fragPath string) (uint32, error) {
	vertSrc, err := readShaderSource(vertPath)
	if err != nil {
		return 0, err
	}
	fragSrc, err := readShaderSource(fragPath)
	if err != nil {
		return 0, err
	}

	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, &core.CompileError{Stage: "vertex", Path: vertPath, Log: err.Error()}
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, &core.CompileError{Stage: "fragment", Path: fragPath, Log: err.Error()}
	}
	defer gl.DeleteShader(frag)

	return linkProgram(vert, frag)
}

// newProgram builds a program from in-memory sources.
func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(frag)

	return linkProgram(vert, frag)
}

func linkProgram(vert, frag uint32) (uint32, error) {
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, &core.LinkError{Log: strings.TrimRight(log, "\x00")}
	}

	gl.DetachShader(prog, vert)
	gl.DetachShader(prog, frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
