package clickbox

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/sketch"
	"github.com/go-theft-auto/sketch/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(config.Default().ClickBox, rand.New(rand.NewSource(42)), nil)
}

func TestRandomPositionRange(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 1000; i++ {
		x, y := g.RandomPosition()
		for _, v := range []float32{x, y} {
			require.LessOrEqual(t, v, g.SpawnRange)
			require.GreaterOrEqual(t, v, -g.SpawnRange)
			steps := float64(v / g.SpawnRange * 100)
			assert.InDelta(t, math.Round(steps), steps, 1e-3, "spawn on 0.01 grid")
		}
	}
}

func TestHitTestIsStrict(t *testing.T) {
	g := newTestGame(t)
	g.X, g.Y = 0.1, -0.2

	r := g.Bounds()
	assert.Equal(t, sketch.Rect{X: 0.1 - g.W, Y: -0.2 - g.H, W: 2 * g.W, H: 2 * g.H}, r)

	assert.True(t, g.HitTest(sketch.Vec2{X: 0.1, Y: -0.2}))
	assert.True(t, g.HitTest(sketch.Vec2{X: 0.3, Y: 0}))
	assert.False(t, g.HitTest(sketch.Vec2{X: r.X + r.W, Y: -0.2}), "right edge")
	assert.False(t, g.HitTest(sketch.Vec2{X: r.X, Y: -0.2}), "left edge")
	assert.False(t, g.HitTest(sketch.Vec2{X: 0.1, Y: r.Y}), "bottom edge")
	assert.False(t, g.HitTest(sketch.Vec2{X: 0.1, Y: -0.2 + g.H + 0.01}))
	assert.False(t, g.HitTest(sketch.Vec2{X: 0.9, Y: 0.9}))
}

func TestClickScoresAndResetsTimer(t *testing.T) {
	g := newTestGame(t)
	g.Advance(1.5)
	require.Equal(t, float32(1.5), g.MoveTimer())

	center := sketch.Vec2{X: g.X, Y: g.Y}
	require.True(t, g.Click(center))
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, 1, g.Hits())
	assert.Zero(t, g.MoveTimer())
}

func TestClickMissDoesNothing(t *testing.T) {
	g := newTestGame(t)
	g.X, g.Y = 0, 0
	assert.False(t, g.Click(sketch.Vec2{X: 0.9, Y: 0.9}))
	assert.Zero(t, g.Score())
}

func TestMissedCycleCostsAPoint(t *testing.T) {
	g := newTestGame(t)
	g.Advance(1.5)
	assert.Zero(t, g.Score())

	g.Advance(0.5)
	assert.Equal(t, -1, g.Score())
	assert.Equal(t, 1, g.Misses())
	assert.Zero(t, g.MoveTimer())

	g.Advance(2)
	assert.Equal(t, -2, g.Score(), "score may go negative")
}

func TestScoredCycleIsNotCharged(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Click(sketch.Vec2{X: g.X, Y: g.Y}))

	g.Advance(2)
	assert.Equal(t, 1, g.Score(), "cycle that scored is free")

	g.Advance(2)
	assert.Equal(t, 0, g.Score(), "next idle cycle is charged")
}

func TestPause(t *testing.T) {
	g := newTestGame(t)
	g.TogglePause()
	require.True(t, g.Paused())

	g.Advance(10)
	assert.Zero(t, g.MoveTimer())
	assert.False(t, g.Click(sketch.Vec2{X: g.X, Y: g.Y}))
	assert.Zero(t, g.Score())

	g.TogglePause()
	g.Advance(2)
	assert.Equal(t, -1, g.Score())
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	g.Advance(2)
	g.Advance(2)
	require.Equal(t, -2, g.Score())

	g.Reset()
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Misses())
	assert.Zero(t, g.MoveTimer())
}

func TestUpdateClickThroughWindowCoordinates(t *testing.T) {
	g := newTestGame(t)
	window := sketch.Viewport{Width: 800, Height: 600}
	mx, my := window.FromNDC(sketch.Vec2{X: g.X, Y: g.Y})

	input := sketch.NewInputState()
	input.SetMousePos(float32(mx), float32(my))
	input.SetMouseButton(sketch.MouseButtonLeft, true)

	g.Update(&sketch.Frame{Input: input, Window: window, DeltaTime: 0.016})
	assert.Equal(t, 1, g.Score())

	// Holding the button is not another click.
	input.Reset()
	x, y := window.FromNDC(sketch.Vec2{X: g.X, Y: g.Y})
	input.SetMousePos(float32(x), float32(y))
	g.Update(&sketch.Frame{Input: input, Window: window, DeltaTime: 0.016})
	assert.Equal(t, 1, g.Score())
}

func TestUpdateHitOnTheFrameTheIntervalEnds(t *testing.T) {
	window := sketch.Viewport{Width: 800, Height: 600}
	clickFrame := func(g *Game, dt float32) *sketch.Frame {
		mx, my := window.FromNDC(sketch.Vec2{X: g.X, Y: g.Y})
		input := sketch.NewInputState()
		input.SetMousePos(float32(mx), float32(my))
		input.SetMouseButton(sketch.MouseButtonLeft, true)
		return &sketch.Frame{Input: input, Window: window, DeltaTime: dt}
	}

	g := newTestGame(t)
	g.Advance(1.5)
	g.Update(clickFrame(g, 0.5)) // timer reaches the interval this frame

	assert.Equal(t, 1, g.Score())
	assert.Equal(t, 1, g.Hits())
	assert.Zero(t, g.Misses(), "the hit lands before the interval check")
	assert.True(t, g.gotPoint)
	assert.Zero(t, g.MoveTimer())

	// The cycle that scored is not charged when it runs out.
	g.Update(&sketch.Frame{Input: sketch.NewInputState(), Window: window, DeltaTime: 2})
	assert.Equal(t, 1, g.Score())
	assert.Zero(t, g.Misses())
	assert.False(t, g.gotPoint)

	// Without the click the same frame is a miss.
	miss := newTestGame(t)
	miss.Advance(1.5)
	miss.Update(&sketch.Frame{Input: sketch.NewInputState(), Window: window, DeltaTime: 0.5})
	assert.Equal(t, -1, miss.Score())
	assert.Equal(t, 1, miss.Misses())
}

func TestUpdateKeys(t *testing.T) {
	g := newTestGame(t)
	input := sketch.NewInputState()
	input.SetKey(sketch.KeySpace, true)

	g.Update(&sketch.Frame{Input: input, DeltaTime: 0.016})
	assert.True(t, g.Paused())

	input.Reset()
	input.SetKey(sketch.KeySpace, false)
	input.SetKey(sketch.KeyR, true)
	g.Update(&sketch.Frame{Input: input, DeltaTime: 0.016})
	assert.True(t, g.Paused())
	assert.Zero(t, g.Score())
	assert.Zero(t, g.MoveTimer())

	input.Reset()
	input.SetKey(sketch.KeyR, false)
	input.SetKey(sketch.KeyF1, true)
	g.Update(&sketch.Frame{Input: input})
	assert.True(t, g.HelpVisible())
}

func TestAnimationRanges(t *testing.T) {
	for i := 0; i < 500; i++ {
		tm := float64(i) * 0.037
		s := ScaleFactor(tm)
		assert.GreaterOrEqual(t, s, float32(0.5))
		assert.LessOrEqual(t, s, float32(1.5))

		c := BoxColor(tm)
		for _, ch := range []float32{c.R, c.G, c.B} {
			assert.GreaterOrEqual(t, ch, float32(0))
			assert.LessOrEqual(t, ch, float32(1))
		}
		assert.Equal(t, float32(1), c.A)
	}
	assert.InDelta(t, 1.0, ScaleFactor(0), 1e-6)

	// Long sessions keep the same curve.
	late := 50 * 3600.0
	assert.InDelta(t, 1+0.5*math.Sin(late), ScaleFactor(late), 1e-5)
	red := float64(float32(1.2)) * late
	assert.InDelta(t, (math.Sin(red)+1)/2, BoxColor(late).R, 1e-5)
}

func TestDrawPlacesBoxAtCenter(t *testing.T) {
	g := newTestGame(t)
	g.X, g.Y = 0.3, -0.4

	dl := sketch.AcquireDrawList()
	defer sketch.ReleaseDrawList(dl)
	dl.FontTextureID = 7

	g.Draw(dl, &sketch.Frame{Time: 0})
	dl.Finalize()

	require.GreaterOrEqual(t, len(dl.VtxBuffer), 4)
	// At t=0 the scale factor is 1, so the quad spans ±0.2*W around the center.
	half := quadHalfExtent * g.W
	box := dl.VtxBuffer[:4]
	assert.InDelta(t, 0.3-half, box[0].Pos[0], 1e-5)
	assert.InDelta(t, -0.4-half, box[0].Pos[1], 1e-5)
	assert.InDelta(t, 0.3+half, box[2].Pos[0], 1e-5)
	assert.InDelta(t, -0.4+half, box[2].Pos[1], 1e-5)

	var textured bool
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == 7 {
			textured = true
		}
	}
	assert.True(t, textured, "score text uses the font texture")
}
