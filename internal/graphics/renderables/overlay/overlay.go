// Package overlay draws a small diagnostic text block (FPS, quad counts,
// frame timings) in the top-left corner of the window.
package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"voxmesh/internal/graphics"
	"voxmesh/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	padding    = 4
	lineHeight = 16
	texWidth   = 512
)

const vertexShaderSrc = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
uniform vec2 viewport;
out vec2 vUV;
void main() {
    // Pixel coordinates, top-left origin, to NDC.
    vec2 ndc = vec2(aPos.x / viewport.x * 2.0 - 1.0, 1.0 - aPos.y / viewport.y * 2.0);
    vUV = aUV;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
`

const fragmentShaderSrc = `#version 410 core
in vec2 vUV;
uniform sampler2D text;
out vec4 FragColor;
void main() {
    FragColor = texture(text, vUV);
}
`

// Overlay renders CPU-rasterized text baked into a texture.
type Overlay struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	tex    uint32

	width  int
	height int

	img   *image.RGBA
	text  string
	dirty bool
}

// New creates the overlay for the given initial viewport size.
func New(width, height int) *Overlay {
	return &Overlay{width: width, height: height}
}

// Init compiles the shader and allocates the quad and texture.
func (o *Overlay) Init() error {
	shader, err := graphics.NewShader(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return err
	}
	o.shader = shader

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	gl.GenTextures(1, &o.tex)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	return nil
}

// SetText replaces the overlay text; newline-separated lines.
func (o *Overlay) SetText(text string) {
	if text != o.text {
		o.text = text
		o.dirty = true
	}
}

// Render draws the current text over the scene.
func (o *Overlay) Render(ctx renderer.RenderContext) {
	if o.text == "" {
		return
	}
	if o.dirty {
		o.rasterize()
		o.dirty = false
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetInt("text", 0)
	gl.Uniform2f(gl.GetUniformLocation(o.shader.ID, gl.Str("viewport\x00")),
		float32(o.width), float32(o.height))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// rasterize redraws the text image and uploads texture plus quad geometry.
func (o *Overlay) rasterize() {
	lines := strings.Split(o.text, "\n")
	h := padding*2 + lineHeight*len(lines)

	if o.img == nil || o.img.Bounds().Dy() != h {
		o.img = image.NewRGBA(image.Rect(0, 0, texWidth, h))
	}
	draw.Draw(o.img, o.img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  o.img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Dot = fixed.P(padding, padding+lineHeight*i+basicfont.Face7x13.Ascent)
		d.DrawString(line)
	}

	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(texWidth), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(o.img.Pix))

	// Screen-space quad at the top-left, one texel per pixel.
	w := float32(texWidth)
	fh := float32(h)
	verts := []float32{
		0, 0, 0, 0,
		0, fh, 0, 1,
		w, fh, 1, 1,
		0, 0, 0, 0,
		w, fh, 1, 1,
		w, 0, 1, 0,
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetViewport tracks window resizes for the pixel-to-NDC mapping.
func (o *Overlay) SetViewport(width, height int) {
	o.width = width
	o.height = height
}

// Dispose frees GPU resources.
func (o *Overlay) Dispose() {
	if o.tex != 0 {
		gl.DeleteTextures(1, &o.tex)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}
