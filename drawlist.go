package sketch

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Font atlas layout: a 16x6 grid of 8x8 glyphs for ASCII 32-127.
const (
	FontAtlasWidth  = 128
	FontAtlasHeight = 48
	FontGlyphSize   = 8
	FontAtlasCols   = 16
)

// MinCircleSegments is the smallest segment count AddCircle will use.
const MinCircleSegments = 3

// maxCmdVertices keeps per-command indices addressable with uint16.
const maxCmdVertices = 1 << 16

// drawListPool provides reuse of DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 256),
			IdxBuffer: make([]uint16, 0, 512),
			CmdBuffer: make([]DrawCmd, 0, 4),
			xfStack:   make([]mgl32.Mat4, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// Every vertex is multiplied by the current transform before it is stored,
// so the buffers always hold final NDC positions.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	// FontTextureID is the texture bound for AddText.
	FontTextureID uint32

	xfStack      []mgl32.Mat4
	xf           mgl32.Mat4
	identity     bool
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.xfStack = dl.xfStack[:0]
	dl.xf = mgl32.Ident4()
	dl.identity = true
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushTransform composes m onto the current transform.
// The new transform applies m first, then the enclosing transforms.
func (dl *DrawList) PushTransform(m mgl32.Mat4) {
	dl.xfStack = append(dl.xfStack, dl.xf)
	dl.xf = dl.xf.Mul4(m)
	dl.identity = false
}

// PopTransform restores the transform in effect before the matching push.
func (dl *DrawList) PopTransform() {
	n := len(dl.xfStack)
	if n == 0 {
		return
	}
	dl.xf = dl.xfStack[n-1]
	dl.xfStack = dl.xfStack[:n-1]
	dl.identity = n == 1
}

// Transform returns the current transform.
func (dl *DrawList) Transform() mgl32.Mat4 {
	return dl.xf
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// reserve ensures there's an active draw command with room for n vertices.
func (dl *DrawList) reserve(n int) {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+n > maxCmdVertices {
		dl.splitDraw()
	}
}

// apply transforms a point by the current transform.
func (dl *DrawList) apply(x, y float32) [2]float32 {
	if dl.identity {
		return [2]float32{x, y}
	}
	v := dl.xf.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return [2]float32{v[0], v[1]}
}

// addVertices adds vertices and returns the starting index.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	dl.reserve(len(verts))
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	for _, v := range verts {
		v.Pos = dl.apply(v.Pos[0], v.Pos[1])
		dl.VtxBuffer = append(dl.VtxBuffer, v)
	}
	return startIdx
}

// addIndices adds indices (relative to current command's vertex offset).
func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddQuad draws a filled quad through four corners given in winding order.
func (dl *DrawList) AddQuad(p0, p1, p2, p3 Vec2, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{p0.X, p0.Y}, Color: color},
		Vertex{Pos: [2]float32{p1.X, p1.Y}, Color: color},
		Vertex{Pos: [2]float32{p2.X, p2.Y}, Color: color},
		Vertex{Pos: [2]float32{p3.X, p3.Y}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled axis-aligned rectangle with (x, y) as its
// bottom-left corner.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	dl.AddQuad(
		Vec2{X: x, Y: y},
		Vec2{X: x + w, Y: y},
		Vec2{X: x + w, Y: y + h},
		Vec2{X: x, Y: y + h},
		color,
	)
}

// AddRectCentered draws a filled rectangle around a center point.
func (dl *DrawList) AddRectCentered(c Vec2, halfW, halfH float32, color uint32) {
	r := RectFromCenter(c, halfW, halfH)
	dl.AddRect(r.X, r.Y, r.W, r.H, color)
}

// AddLine draws a line between two points.
// Uses a quad to create thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1.0)
	if dx != 0 || dy != 0 {
		inv = 1.0 / math32.Sqrt(dx*dx+dy*dy)
	}

	// Normal perpendicular to line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.AddQuad(
		Vec2{X: x1 + nx, Y: y1 + ny},
		Vec2{X: x2 + nx, Y: y2 + ny},
		Vec2{X: x2 - nx, Y: y2 - ny},
		Vec2{X: x1 - nx, Y: y1 - ny},
		color,
	)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2)
}

// AddCircle draws a filled circle as a triangle fan around its center.
// segments below MinCircleSegments are raised to it.
func (dl *DrawList) AddCircle(cx, cy, radius float32, color uint32, segments int) {
	if color&0xFF000000 == 0 || radius <= 0 {
		return
	}
	if segments < MinCircleSegments {
		segments = MinCircleSegments
	}

	dl.reserve(segments + 1)
	center := dl.addVertices(Vertex{Pos: [2]float32{cx, cy}, Color: color})
	step := 2 * math32.Pi / float32(segments)
	for i := 0; i < segments; i++ {
		a := step * float32(i)
		dl.addVertices(Vertex{
			Pos:   [2]float32{cx + radius*math32.Cos(a), cy + radius*math32.Sin(a)},
			Color: color,
		})
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		dl.addIndices(center, center+1+uint16(i), center+1+uint16(next))
	}
}

// AddText draws text with its top-left corner at (x, y).
// charWidth and charHeight are the cell size in NDC units before scale.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, scale, charWidth, charHeight float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}

	prevTex := dl.textureID
	dl.SetTexture(dl.FontTextureID)
	defer dl.SetTexture(prevTex)

	cw := charWidth * scale
	cellH := charHeight * scale

	i := 0
	for _, r := range text {
		u0, v0, u1, v1 := GlyphUV(r)
		px := x + float32(i)*cw
		i++

		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y - cellH}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y - cellH}, TexCoord: [2]float32{u0, v1}, Color: color},
		)

		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
	}
}

// GlyphUV returns the atlas texture coordinates for a rune.
// Runes outside ASCII 32-127 without a fallback render as '?'.
func GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	char := unicodeFallback(r)
	if char < 32 || char > 127 {
		char = '?'
	}

	idx := int(char - 32)
	col := float32(idx % FontAtlasCols)
	row := float32(idx / FontAtlasCols)

	u0 = col * FontGlyphSize / FontAtlasWidth
	v0 = row * FontGlyphSize / FontAtlasHeight
	u1 = (col + 1) * FontGlyphSize / FontAtlasWidth
	v1 = (row + 1) * FontGlyphSize / FontAtlasHeight
	return u0, v0, u1, v1
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font.
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '→':
		return '>'
	case '◄', '◀', '←':
		return '<'
	case '▼', '↓':
		return 'v'
	case '▲', '↑':
		return '^'
	case '●', '•':
		return '*'
	case '✓', '✅':
		return '+'
	case '✗', '❌':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
