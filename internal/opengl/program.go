package opengl

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program with cached uniform locations.
//
// A Program that failed to load has ID 0. Using it binds no program and every
// uniform setter is a no-op, so a broken shader shows up as missing geometry
// plus a log line rather than a crash.
type Program struct {
	ID   uint32
	Name string

	uniforms map[string]int32
}

// LoadProgram reads, compiles and links a vertex/fragment pair. Failures are
// logged and yield an unusable program.
func LoadProgram(logger *slog.Logger, vertPath, fragPath string) *Program {
	name := strings.TrimSuffix(filepath.Base(vertPath), filepath.Ext(vertPath))
	p := &Program{Name: name, uniforms: make(map[string]int32)}

	vertSrc, err := os.ReadFile(vertPath)
	if err != nil {
		logger.Error("shader source", "program", name, "path", vertPath, "err", err)
		return p
	}
	fragSrc, err := os.ReadFile(fragPath)
	if err != nil {
		logger.Error("shader source", "program", name, "path", fragPath, "err", err)
		return p
	}

	id, err := newProgram(string(vertSrc), string(fragSrc))
	if err != nil {
		logger.Error("shader build", "program", name, "err", err)
		return p
	}
	p.ID = id
	logger.Debug("shader loaded", "program", name, "id", id)
	return p
}

func (p *Program) Valid() bool { return p.ID != 0 }

func (p *Program) Use() { gl.UseProgram(p.ID) }

// Uniform returns the location of name, or -1 when the program is invalid or
// the uniform was optimized out.
func (p *Program) Uniform(name string) int32 {
	if p.ID == 0 {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.Uniform(name), i)
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.Uniform(name), v[0], v[1])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.Uniform(name), v[0], v[1], v[2])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.Uniform(name), v[0], v[1], v[2], v[3])
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, &m[0])
}

func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// ── Shader helpers ────────────────────────────────────────────────────────────

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
		return 0, fmt.Errorf("link failed: %v", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
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
		return 0, fmt.Errorf("compile failed: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
