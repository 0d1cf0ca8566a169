// Package glbackend shows software-rendered frames in an OpenGL window. The
// frame is uploaded to a texture and drawn as one quad at the largest whole
// scale that fits, letterboxed on the clear color.
package glbackend

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
)

// Presenter implements core.Presenter. It must be created and used on the
// thread that owns the GL context.
type Presenter struct {
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	texSize image.Point
	window  image.Point
}

var _ core.Presenter = (*Presenter)(nil)

func NewPresenter(_ core.Window, _ core.Config) (*Presenter, error) {
	p := &Presenter{}
	if err := p.init(); err != nil {
		p.Shutdown()
		return nil, err
	}
	return p, nil
}

func (p *Presenter) init() error {
	vs, err := assets.LoadShader("present.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("present.frag")
	if err != nil {
		return err
	}
	p.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}

	// Clip-space quad; v runs top to bottom so image rows need no flip.
	verts := []float32{
		//  X,    Y,   U,   V
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	const stride = 4 * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &p.tex)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	// Nearest filtering keeps panel pixels square at any scale.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.UseProgram(p.program)
	gl.Uniform1i(gl.GetUniformLocation(p.program, gl.Str("uFrame\x00")), 0)
	gl.UseProgram(0)
	return nil
}

func (p *Presenter) Shutdown() {
	if p.tex != 0 {
		gl.DeleteTextures(1, &p.tex)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
	*p = Presenter{}
}

func (p *Presenter) Resize(w, h int) {
	p.window = image.Pt(w, h)
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (p *Presenter) Clear(c colors.Color) {
	gl.Viewport(0, 0, int32(p.window.X), int32(p.window.Y))
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Present uploads frame and draws it.
func (p *Presenter) Present(frame *image.RGBA) error {
	size := frame.Rect.Size()
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("present: empty frame %v", frame.Rect)
	}
	vp := FitViewport(p.window, size)
	if vp.Empty() {
		return nil
	}

	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(frame.Stride/4))
	pix := gl.Ptr(frame.Pix[frame.PixOffset(frame.Rect.Min.X, frame.Rect.Min.Y):])
	if size != p.texSize {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, pix)
		p.texSize = size
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(size.X), int32(size.Y), gl.RGBA, gl.UNSIGNED_BYTE, pix)
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	// GL viewports count from the bottom-left corner.
	gl.Viewport(int32(vp.Min.X), int32(p.window.Y-vp.Max.Y), int32(vp.Dx()), int32(vp.Dy()))
	gl.UseProgram(p.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("present: gl error 0x%x", code)
	}
	return nil
}

// FitViewport centers a frame of the given size in a window, scaled by the
// largest whole factor that fits. Windows smaller than the frame get a
// proportional fit instead. The result is in window coordinates, top-left
// origin.
func FitViewport(window, frame image.Point) image.Rectangle {
	if window.X <= 0 || window.Y <= 0 || frame.X <= 0 || frame.Y <= 0 {
		return image.Rectangle{}
	}
	scale := min(window.X/frame.X, window.Y/frame.Y)
	var size image.Point
	if scale >= 1 {
		size = frame.Mul(scale)
	} else if window.X*frame.Y < window.Y*frame.X {
		size = image.Pt(window.X, frame.Y*window.X/frame.X)
	} else {
		size = image.Pt(frame.X*window.Y/frame.Y, window.Y)
	}
	at := window.Sub(size).Div(2)
	return image.Rectangle{Min: at, Max: at.Add(size)}
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
