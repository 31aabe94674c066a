// Package clickbox implements the "click the box" reaction game.
//
// A box jumps to a random spot every move interval. Clicking it scores a
// point and moves it at once; letting a whole interval pass without a hit
// costs a point.
package clickbox

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/go-theft-auto/sketch"
	"github.com/go-theft-auto/sketch/config"
)

// quadHalfExtent is the half size of the unit quad the box transform scales.
const quadHalfExtent = 0.2

// HUD text cell size in NDC.
const (
	hudCharWidth  = 0.04
	hudCharHeight = 0.055
)

var helpLine = sketch.HelpLine(
	sketch.KeyHelp{Key: sketch.KeySpace, Action: "pause"},
	sketch.KeyHelp{Key: sketch.KeyR, Action: "reset"},
	sketch.KeyHelp{Key: sketch.KeyEscape, Action: "quit"},
)

// Game is the reaction game model.
type Game struct {
	X, Y         float32 // box center in NDC
	W, H         float32 // half extents used for hit testing
	MoveInterval float32
	SpawnRange   float32

	score     int
	moveTimer float32
	gotPoint  bool
	paused    bool
	showHelp  bool
	hits      int
	misses    int

	rng *rand.Rand
	log *zap.Logger
}

// New creates a game with the box at a random spawn point.
func New(cfg config.ClickBox, rng *rand.Rand, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		W:            cfg.HalfWidth,
		H:            cfg.HalfHeight,
		MoveInterval: cfg.MoveInterval,
		SpawnRange:   cfg.SpawnRange,
		rng:          rng,
		log:          log,
	}
	g.X, g.Y = g.RandomPosition()
	return g
}

// Score returns the current score. It may be negative.
func (g *Game) Score() int { return g.score }

// Hits returns the number of successful clicks.
func (g *Game) Hits() int { return g.hits }

// Misses returns the number of intervals that passed without a hit.
func (g *Game) Misses() int { return g.misses }

// Paused reports whether the game clock is stopped.
func (g *Game) Paused() bool { return g.paused }

// MoveTimer returns seconds since the box last moved.
func (g *Game) MoveTimer() float32 { return g.moveTimer }

// HelpVisible reports whether the key help line is shown.
func (g *Game) HelpVisible() bool { return g.showHelp }

// RandomPosition picks a spawn point on a 0.01 grid within ±SpawnRange.
func (g *Game) RandomPosition() (x, y float32) {
	x = float32(g.rng.Intn(200)-100) / 100 * g.SpawnRange
	y = float32(g.rng.Intn(200)-100) / 100 * g.SpawnRange
	return x, y
}

// Bounds returns the hit-test rectangle around the box center.
func (g *Game) Bounds() sketch.Rect {
	return sketch.RectFromCenter(sketch.Vec2{X: g.X, Y: g.Y}, g.W, g.H)
}

// HitTest reports whether p lies strictly inside the box.
func (g *Game) HitTest(p sketch.Vec2) bool {
	return g.Bounds().ContainsStrict(p)
}

// Click scores a hit if p is on the box. It returns whether it was a hit.
func (g *Game) Click(p sketch.Vec2) bool {
	if g.paused || !g.HitTest(p) {
		return false
	}
	g.score++
	g.hits++
	g.gotPoint = true
	g.log.Info("hit", zap.Int("score", g.score))
	g.respawn()
	return true
}

// Advance moves the game clock by dt seconds and handles the auto-move.
func (g *Game) Advance(dt float32) {
	if g.paused || dt <= 0 {
		return
	}
	g.moveTimer += dt
	g.endCycle()
}

// endCycle respawns the box once the move interval has elapsed, charging a
// point if the cycle saw no hit.
func (g *Game) endCycle() {
	if g.paused || g.moveTimer < g.MoveInterval {
		return
	}
	if !g.gotPoint {
		g.score--
		g.misses++
		g.log.Info("missed", zap.Int("score", g.score))
	}
	g.respawn()
	g.gotPoint = false
}

// Reset zeroes the score and starts a fresh cycle.
func (g *Game) Reset() {
	g.score = 0
	g.hits = 0
	g.misses = 0
	g.gotPoint = false
	g.respawn()
	g.log.Info("score reset")
}

// TogglePause stops or restarts the game clock.
func (g *Game) TogglePause() {
	g.paused = !g.paused
	g.log.Info("pause toggled", zap.Bool("paused", g.paused))
}

func (g *Game) respawn() {
	g.X, g.Y = g.RandomPosition()
	g.moveTimer = 0
}

// Update advances the clock, applies this frame's input, then checks
// whether the cycle is over.
func (g *Game) Update(f *sketch.Frame) {
	if !g.paused && f.DeltaTime > 0 {
		g.moveTimer += f.DeltaTime
	}
	if in := f.Input; in != nil {
		if in.KeyPressed(sketch.KeySpace) {
			g.TogglePause()
		}
		if in.KeyPressed(sketch.KeyR) {
			g.Reset()
		}
		if in.KeyPressed(sketch.KeyF1) {
			g.showHelp = !g.showHelp
		}
		if in.MouseClicked(sketch.MouseButtonLeft) {
			g.Click(f.CursorNDC())
		}
	}
	g.endCycle()
}

// ScaleFactor is the visible pulse in [0.5, 1.5].
func ScaleFactor(t float64) float32 {
	return sketch.Pulse(sketch.Phase(t, 1, 2*math.Pi), 1, 0.5)
}

// BoxColor cycles each channel at its own rate, all within [0, 1].
func BoxColor(t float64) sketch.Color {
	return sketch.Color{
		R: sketch.Oscillate(sketch.Phase(t, 1.2, 2*math.Pi), 1),
		G: sketch.OscillateCos(sketch.Phase(t, 1.3, 2*math.Pi), 1),
		B: sketch.Oscillate(sketch.Phase(t, 0.9, 2*math.Pi), 1),
		A: 1,
	}
}

// Transform is the model matrix for the box quad at time t.
func (g *Game) Transform(t float64) mgl32.Mat4 {
	s := ScaleFactor(t)
	return mgl32.Translate3D(g.X, g.Y, 0).Mul4(mgl32.Scale3D(g.W*s, g.H*s, 1))
}

// Draw renders the box and the score line.
func (g *Game) Draw(dl *sketch.DrawList, f *sketch.Frame) {
	t := f.Time
	// Hit area is ±W,±H; the visible quad is ±quadHalfExtent*W*s.
	dl.PushTransform(g.Transform(t))
	dl.AddRectCentered(sketch.Vec2{}, quadHalfExtent, quadHalfExtent, BoxColor(t).Packed())
	dl.PopTransform()

	hud := fmt.Sprintf("Score: %d", g.score)
	dl.AddText(-0.95, 0.95, hud, sketch.ColorWhite, 1, hudCharWidth, hudCharHeight)
	if g.paused {
		label := "PAUSED"
		w := float32(len(label)) * hudCharWidth
		dl.AddText(-w/2, hudCharHeight/2, label, sketch.ColorYellow, 1, hudCharWidth, hudCharHeight)
	}
	if g.showHelp {
		dl.AddText(-0.95, -0.88, helpLine, sketch.ColorLightGray, 1, hudCharWidth*0.6, hudCharHeight*0.6)
	}
}
