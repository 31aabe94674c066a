package sketch

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawListRect(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(-0.5, -0.25, 1, 0.5, ColorRed)
	dl.Finalize()

	require.Len(t, dl.VtxBuffer, 4)
	require.Len(t, dl.IdxBuffer, 6)
	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, [2]float32{-0.5, -0.25}, dl.VtxBuffer[0].Pos)
	assert.Equal(t, [2]float32{0.5, 0.25}, dl.VtxBuffer[2].Pos)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer)
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 1, 1, ColorTransparent)
	dl.AddCircle(0, 0, 1, ColorTransparent, 16)
	dl.AddTriangle(0, 0, 1, 0, 0, 1, RGBA(255, 255, 255, 0))
	dl.AddLine(0, 0, 1, 1, ColorTransparent, 0.1)
	dl.Finalize()

	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.CmdBuffer)
}

func TestDrawListCircle(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddCircle(0.5, 0.5, 0.25, ColorGreen, 12)
	assert.Len(t, dl.VtxBuffer, 13, "center plus one vertex per segment")
	assert.Len(t, dl.IdxBuffer, 36)

	for _, v := range dl.VtxBuffer[1:] {
		dx := v.Pos[0] - 0.5
		dy := v.Pos[1] - 0.5
		assert.InDelta(t, 0.25, math32.Sqrt(dx*dx+dy*dy), 1e-5)
	}
	// Last triangle closes the fan back onto the first rim vertex.
	assert.Equal(t, []uint16{0, 12, 1}, dl.IdxBuffer[33:])

	dl.Clear()
	dl.AddCircle(0, 0, 1, ColorGreen, 1)
	assert.Len(t, dl.VtxBuffer, MinCircleSegments+1)

	dl.Clear()
	dl.AddCircle(0, 0, 0, ColorGreen, 8)
	assert.Empty(t, dl.VtxBuffer)
}

func TestDrawListLineThickness(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddLine(0, 0, 1, 0, ColorWhite, 0.2)
	require.Len(t, dl.VtxBuffer, 4)
	assert.InDelta(t, 0.1, dl.VtxBuffer[0].Pos[1], 1e-6)
	assert.InDelta(t, -0.1, dl.VtxBuffer[2].Pos[1], 1e-6)
}

func TestDrawListTransformStack(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PushTransform(mgl32.Translate3D(0.5, 0.25, 0))
	dl.PushTransform(mgl32.Scale3D(2, 2, 1))
	dl.AddRect(0, 0, 0.1, 0.1, ColorWhite)
	dl.PopTransform()
	dl.AddRect(0, 0, 0.1, 0.1, ColorWhite)
	dl.PopTransform()
	dl.AddRect(0, 0, 0.1, 0.1, ColorWhite)
	dl.PopTransform() // unbalanced pop is ignored

	require.Len(t, dl.VtxBuffer, 12)
	assert.InDelta(t, 0.7, dl.VtxBuffer[2].Pos[0], 1e-6, "scaled then translated")
	assert.InDelta(t, 0.45, dl.VtxBuffer[2].Pos[1], 1e-6)
	assert.InDelta(t, 0.6, dl.VtxBuffer[6].Pos[0], 1e-6, "translated only")
	assert.Equal(t, [2]float32{0.1, 0.1}, dl.VtxBuffer[10].Pos, "identity again")
	assert.Equal(t, mgl32.Ident4(), dl.Transform())
}

func TestDrawListRotation(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PushTransform(mgl32.HomogRotate3DZ(math32.Pi / 2))
	dl.AddTriangle(1, 0, 0, 0, 0, 0, ColorWhite)
	dl.PopTransform()

	assert.InDelta(t, 0, dl.VtxBuffer[0].Pos[0], 1e-6)
	assert.InDelta(t, 1, dl.VtxBuffer[0].Pos[1], 1e-6)
}

func TestDrawListTextureBatching(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	dl.FontTextureID = 9

	dl.AddRect(0, 0, 1, 1, ColorRed)
	dl.AddRect(0, 0, 1, 1, ColorRed)
	dl.AddText(0, 0, "ab", ColorWhite, 1, 0.1, 0.1)
	dl.AddRect(0, 0, 1, 1, ColorRed)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 3)
	assert.Equal(t, uint32(0), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, uint32(12), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, uint32(9), dl.CmdBuffer[1].TextureID)
	assert.Equal(t, uint32(12), dl.CmdBuffer[1].ElemCount)
	assert.Equal(t, uint32(8), dl.CmdBuffer[1].VertexOffset)
	assert.Equal(t, uint32(0), dl.CmdBuffer[2].TextureID)
	assert.Equal(t, uint32(6), dl.CmdBuffer[2].ElemCount)

	// Indices restart at zero for each command.
	assert.Equal(t, uint16(0), dl.IdxBuffer[dl.CmdBuffer[2].IndexOffset])
}

func TestDrawListTextLayout(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddText(-1, 1, "A→", ColorWhite, 2, 0.05, 0.1)
	require.Len(t, dl.VtxBuffer, 8, "one quad per rune")

	// Second glyph starts one scaled cell to the right, text grows downwards.
	assert.InDelta(t, -0.9, dl.VtxBuffer[4].Pos[0], 1e-6)
	assert.InDelta(t, 0.8, dl.VtxBuffer[6].Pos[1], 1e-6)

	u0, v0, _, _ := GlyphUV('>')
	assert.Equal(t, [2]float32{u0, v0}, dl.VtxBuffer[4].TexCoord, "arrow falls back to '>'")
}

func TestGlyphUV(t *testing.T) {
	u0, v0, u1, v1 := GlyphUV(' ')
	assert.Equal(t, float32(0), u0)
	assert.Equal(t, float32(0), v0)
	assert.Equal(t, float32(FontGlyphSize)/FontAtlasWidth, u1)
	assert.Equal(t, float32(FontGlyphSize)/FontAtlasHeight, v1)

	qu0, qv0, _, _ := GlyphUV('?')
	ju0, jv0, _, _ := GlyphUV('日')
	assert.Equal(t, qu0, ju0, "unknown runes render as '?'")
	assert.Equal(t, qv0, jv0)
}

func TestDrawListPoolClears(t *testing.T) {
	dl := AcquireDrawList()
	dl.PushTransform(mgl32.Translate3D(1, 1, 0))
	dl.AddRect(0, 0, 1, 1, ColorRed)
	ReleaseDrawList(dl)

	dl = AcquireDrawList()
	defer ReleaseDrawList(dl)
	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.CmdBuffer)
	assert.Equal(t, mgl32.Ident4(), dl.Transform())
}

func TestFontAtlas(t *testing.T) {
	data := FontAtlas()
	require.Len(t, data, FontAtlasWidth*FontAtlasHeight)

	// Space is blank; '|' is a vertical bar in columns 3 and 4 of its cell.
	idx := int('|' - 32)
	ox := (idx % FontAtlasCols) * FontGlyphSize
	oy := (idx / FontAtlasCols) * FontGlyphSize
	for y := 0; y < 7; y++ {
		row := data[(oy+y)*FontAtlasWidth+ox : (oy+y)*FontAtlasWidth+ox+FontGlyphSize]
		assert.Equal(t, []byte{0, 0, 0, 255, 255, 0, 0, 0}, row)
	}
	for y := 0; y < FontGlyphSize; y++ {
		for x := 0; x < FontGlyphSize; x++ {
			assert.Zero(t, data[y*FontAtlasWidth+x])
		}
	}
}
