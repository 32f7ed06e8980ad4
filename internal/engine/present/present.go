// Package present uploads the software-rasterized frame to OpenGL and draws
// it as a fullscreen quad.
package present

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shockglobe/internal/engine/shader"
	"github.com/Faultbox/shockglobe/internal/logger"
	"github.com/Faultbox/shockglobe/pkg/math"
)

const vertexShader = `#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

uniform mat4 uProjection;

out vec2 vUV;

void main() {
    vUV = aUV;
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec2 vUV;
uniform sampler2D uTexture;
out vec4 FragColor;

void main() {
    FragColor = texture(uTexture, vUV);
}
`

// Presenter owns the texture and quad the frame is drawn with.
// Must be created and used on the GL thread.
type Presenter struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	texture uint32

	texW, texH int
	log        *zap.Logger
}

// New initializes OpenGL and creates the presentation resources.
// The window's GL context must be current.
func New() (*Presenter, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	p := &Presenter{log: logger.Named("present")}
	p.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	p.program, err = shader.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create present shader: %w", err)
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	// pos(2) + uv(2)
	stride := int32(4 * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	return p, nil
}

// Present draws img stretched over a drawable of w×h physical pixels.
func (p *Presenter) Present(img *image.RGBA, w, h int) {
	b := img.Bounds()
	if b.Empty() || w <= 0 || h <= 0 {
		return
	}

	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))

	pix := unsafe.Pointer(&img.Pix[img.PixOffset(b.Min.X, b.Min.Y)])
	if b.Dx() != p.texW || b.Dy() != p.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, pix)
		p.texW, p.texH = b.Dx(), b.Dy()
		p.log.Debug("texture allocated", zap.Int("width", p.texW), zap.Int("height", p.texH))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(b.Dx()), int32(b.Dy()),
			gl.RGBA, gl.UNSIGNED_BYTE, pix)
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	p.program.Use()
	proj := math.Ortho(0, float32(w), float32(h), 0, -1, 1)
	gl.UniformMatrix4fv(p.program.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.Uniform1i(p.program.Uniform("uTexture"), 0)

	vertices := quadVertices(float32(w), float32(h))
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// Close releases GL resources.
func (p *Presenter) Close() {
	p.log.Debug("closing presenter")
	if p.texture != 0 {
		gl.DeleteTextures(1, &p.texture)
		p.texture = 0
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.program != nil {
		p.program.Delete()
	}
}

// quadVertices covers (0,0)-(w,h) in top-left-origin coordinates. Image row
// zero is uploaded first, so v=0 is the top edge and no flip is needed.
func quadVertices(w, h float32) []float32 {
	return []float32{
		0, 0, 0, 0,
		w, 0, 1, 0,
		w, h, 1, 1,

		0, 0, 0, 0,
		w, h, 1, 1,
		0, h, 0, 1,
	}
}
