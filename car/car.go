// Package car implements the looping car animation.
//
// The car drives left to right along a road at a constant speed, leaves the
// right edge and re-enters from the left. Wheels roll without slip and the
// body bounces slightly on its suspension.
package car

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/go-theft-auto/sketch"
	"github.com/go-theft-auto/sketch/config"
)

// Track bounds in NDC. The car is fully off screen at either end.
const (
	TrackMin float32 = -1.5
	TrackMax float32 = 1.5
)

// Body layout relative to the rear-to-front axle line.
const (
	bodyHalfW   = 0.3
	bodyHalfH   = 0.07
	bodyLift    = 0.08
	cabinHalfW  = 0.16
	cabinHalfH  = 0.06
	cabinLift   = 0.2
	cabinOffset = -0.05
	axleOffset  = 0.18
)

const (
	hudCharWidth  = 0.04
	hudCharHeight = 0.055
)

const (
	sunX, sunY = 0.7, 0.7
	sunRays    = 8
	cloudSpan  = 2.6
)

var helpLine = sketch.HelpLine(
	sketch.KeyHelp{Key: sketch.KeyUp, Action: "faster"},
	sketch.KeyHelp{Key: sketch.KeyDown, Action: "slower"},
	sketch.KeyHelp{Key: sketch.KeySpace, Action: "pause"},
	sketch.KeyHelp{Key: sketch.KeyR, Action: "restart"},
	sketch.KeyHelp{Key: sketch.KeyEscape, Action: "quit"},
)

var (
	roadColor   = sketch.RGBA(60, 60, 66, 255)
	grassColor  = sketch.RGBA(70, 140, 60, 255)
	laneColor   = sketch.RGBA(235, 235, 200, 255)
	bodyColor   = sketch.RGBA(200, 40, 40, 255)
	cabinColor  = sketch.RGBA(170, 30, 30, 255)
	windowColor = sketch.RGBA(170, 220, 245, 255)
	tyreColor   = sketch.RGBA(25, 25, 25, 255)
	hubColor    = sketch.RGBA(160, 160, 170, 255)
	cloudColor  = sketch.RGBA(250, 250, 250, 230)
)

// Car is the animation model.
type Car struct {
	Speed       float32 // NDC units per second
	MinSpeed    float32
	MaxSpeed    float32
	SpeedStep   float32
	GroundY     float32
	WheelRadius float32
	BounceAmp   float32
	BounceFreq  float32
	Segments    int

	elapsed    float64 // animation time, frozen while paused
	distance   float32 // distance along the track, in [0, TrackMax-TrackMin)
	wheelAngle float32 // in [0, 2π)
	paused     bool
	showHelp   bool

	log *zap.Logger
}

// New creates a car at the left end of the track.
func New(cfg config.Car, log *zap.Logger) *Car {
	if log == nil {
		log = zap.NewNop()
	}
	return &Car{
		Speed:       cfg.Speed,
		MinSpeed:    cfg.MinSpeed,
		MaxSpeed:    cfg.MaxSpeed,
		SpeedStep:   cfg.SpeedStep,
		GroundY:     cfg.GroundY,
		WheelRadius: cfg.WheelRadius,
		BounceAmp:   cfg.BounceAmp,
		BounceFreq:  cfg.BounceFreq,
		Segments:    cfg.CircleSegments,
		log:         log,
	}
}

// PositionAt is the car's X for a constant speed at time t.
func PositionAt(speed, t float32) float32 {
	return sketch.Wrap(TrackMin+speed*t, TrackMin, TrackMax)
}

// WheelAngleFor returns the rolling angle in radians for a distance driven.
// Negative angles turn clockwise, which is forward for a car moving right.
func WheelAngleFor(distance, radius float32) float32 {
	if radius <= 0 {
		return 0
	}
	return -distance / radius
}

// BounceAt is the suspension offset at time t, never negative.
func BounceAt(amp, freq, t float32) float32 {
	return amp * math32.Abs(math32.Sin(freq*t))
}

// Position returns the current X of the car center.
func (c *Car) Position() float32 {
	return sketch.Wrap(TrackMin+c.distance, TrackMin, TrackMax)
}

// Distance returns how far along the track the car is, measured from
// TrackMin. It wraps to zero each time the car re-enters on the left.
func (c *Car) Distance() float32 { return c.distance }

// Elapsed returns the animation time in seconds.
func (c *Car) Elapsed() float64 { return c.elapsed }

// WheelAngle returns the current wheel rotation in [0, 2π).
func (c *Car) WheelAngle() float32 { return c.wheelAngle }

// Bounce returns the current body offset.
func (c *Car) Bounce() float32 {
	// |sin| repeats every π.
	return BounceAt(c.BounceAmp, 1, c.phase(c.BounceFreq, math.Pi))
}

func (c *Car) phase(rate float32, period float64) float32 {
	return sketch.Phase(c.elapsed, rate, period)
}

// Paused reports whether the animation is stopped.
func (c *Car) Paused() bool { return c.paused }

// HelpVisible reports whether the key help line is shown.
func (c *Car) HelpVisible() bool { return c.showHelp }

// Advance moves the animation forward by dt seconds.
func (c *Car) Advance(dt float32) {
	if c.paused || dt <= 0 {
		return
	}
	step := c.Speed * dt
	c.elapsed += float64(dt)
	c.distance = sketch.Wrap(c.distance+step, 0, TrackMax-TrackMin)
	c.wheelAngle = sketch.Wrap(c.wheelAngle+WheelAngleFor(step, c.WheelRadius), 0, 2*math32.Pi)
}

// SetSpeed changes the speed, clamped to [MinSpeed, MaxSpeed].
func (c *Car) SetSpeed(v float32) {
	speed := sketch.Clamp(v, c.MinSpeed, c.MaxSpeed)
	if speed == c.Speed {
		return
	}
	c.Speed = speed
	c.log.Info("speed changed", zap.Float32("speed", c.Speed))
}

// TogglePause stops or restarts the animation.
func (c *Car) TogglePause() {
	c.paused = !c.paused
	c.log.Info("pause toggled", zap.Bool("paused", c.paused))
}

// Reset puts the car back at the start of the track.
func (c *Car) Reset() {
	c.elapsed = 0
	c.distance = 0
	c.wheelAngle = 0
	c.log.Info("animation reset")
}

// Update applies this frame's input and advances the animation.
func (c *Car) Update(f *sketch.Frame) {
	if in := f.Input; in != nil {
		if in.KeyPressed(sketch.KeySpace) {
			c.TogglePause()
		}
		if in.KeyPressed(sketch.KeyR) {
			c.Reset()
		}
		if in.KeyPressed(sketch.KeyUp) {
			c.SetSpeed(c.Speed + c.SpeedStep)
		}
		if in.KeyPressed(sketch.KeyDown) {
			c.SetSpeed(c.Speed - c.SpeedStep)
		}
		if in.KeyPressed(sketch.KeyF1) {
			c.showHelp = !c.showHelp
		}
	}
	c.Advance(f.DeltaTime)
}

// Draw renders the scenery, the car, and the HUD.
func (c *Car) Draw(dl *sketch.DrawList, f *sketch.Frame) {
	c.drawScenery(dl)

	axleY := c.GroundY + c.WheelRadius
	x := c.Position()

	dl.PushTransform(mgl32.Translate3D(x, axleY, 0))

	dl.PushTransform(mgl32.Translate3D(0, c.Bounce(), 0))
	c.drawBody(dl)
	dl.PopTransform()

	angle := c.WheelAngle()
	c.drawWheel(dl, -axleOffset, angle)
	c.drawWheel(dl, axleOffset, angle)

	dl.PopTransform()

	hud := fmt.Sprintf("Speed: %.1f", c.Speed)
	dl.AddText(-0.95, 0.95, hud, sketch.ColorBlack, 1, hudCharWidth, hudCharHeight)
	if c.paused {
		label := "PAUSED"
		w := float32(len(label)) * hudCharWidth
		dl.AddText(-w/2, 0.5, label, sketch.ColorBlack, 1, hudCharWidth, hudCharHeight)
	}
	if c.showHelp {
		dl.AddText(-0.95, -0.88, helpLine, sketch.ColorWhite, 1, hudCharWidth*0.6, hudCharHeight*0.6)
	}
}

func (c *Car) drawScenery(dl *sketch.DrawList) {
	sun := sketch.Color{R: 1, G: 0.75 + 0.25*sketch.Oscillate(c.phase(0.8, 2*math.Pi), 1), B: 0.2, A: 1}
	c.drawSunRays(dl, sun.Packed())
	dl.AddCircle(sunX, sunY, 0.12, sun.Packed(), c.Segments)

	// Clouds drift at their own pace and wrap like the car does.
	for i, base := range []float32{-0.8, 0.1, 0.9} {
		cx := sketch.Wrap(base+c.phase(0.04*float32(i+1), cloudSpan), -1.3, 1.3)
		cy := 0.55 + 0.1*float32(i%2)
		dl.AddCircle(cx, cy, 0.07, cloudColor, c.Segments)
		dl.AddCircle(cx+0.08, cy+0.02, 0.09, cloudColor, c.Segments)
		dl.AddCircle(cx+0.17, cy, 0.06, cloudColor, c.Segments)
	}

	dl.AddRect(-1, c.GroundY, 2, 0.12, grassColor)
	dl.AddRect(-1, -1, 2, c.GroundY+1, roadColor)

	laneY := (c.GroundY - 1) / 2
	for x := float32(-1); x < 1; x += 0.4 {
		dl.AddRect(x, laneY-0.01, 0.2, 0.02, laneColor)
	}
}

func (c *Car) drawSunRays(dl *sketch.DrawList, color uint32) {
	dl.PushTransform(mgl32.Translate3D(sunX, sunY, 0).Mul4(mgl32.HomogRotate3DZ(c.phase(0.3, 2*math.Pi))))
	for i := 0; i < sunRays; i++ {
		a := 2 * math32.Pi * float32(i) / sunRays
		sin, cos := math32.Sincos(a)
		// Base on the disc edge, tip pointing outward.
		dl.AddTriangle(
			cos*0.13-sin*0.03, sin*0.13+cos*0.03,
			cos*0.13+sin*0.03, sin*0.13-cos*0.03,
			cos*0.2, sin*0.2,
			color,
		)
	}
	dl.PopTransform()
}

func (c *Car) drawBody(dl *sketch.DrawList) {
	dl.AddRectCentered(sketch.Vec2{X: 0, Y: bodyLift}, bodyHalfW, bodyHalfH, bodyColor)
	dl.AddRectCentered(sketch.Vec2{X: cabinOffset, Y: cabinLift}, cabinHalfW, cabinHalfH, cabinColor)

	// Windows split by a pillar.
	dl.AddRectCentered(sketch.Vec2{X: cabinOffset - 0.075, Y: cabinLift}, 0.065, 0.04, windowColor)
	dl.AddRectCentered(sketch.Vec2{X: cabinOffset + 0.075, Y: cabinLift}, 0.065, 0.04, windowColor)

	dl.AddRectCentered(sketch.Vec2{X: bodyHalfW - 0.015, Y: bodyLift + 0.02}, 0.015, 0.02, sketch.ColorYellow)
	dl.AddRectCentered(sketch.Vec2{X: -bodyHalfW + 0.01, Y: bodyLift + 0.02}, 0.01, 0.02, sketch.ColorRed)
}

func (c *Car) drawWheel(dl *sketch.DrawList, x, angle float32) {
	r := c.WheelRadius
	dl.PushTransform(mgl32.Translate3D(x, 0, 0).Mul4(mgl32.HomogRotate3DZ(angle)))
	dl.AddCircle(0, 0, r, tyreColor, c.Segments)
	dl.AddCircle(0, 0, r*0.55, hubColor, c.Segments)
	dl.AddLine(-r*0.5, 0, r*0.5, 0, tyreColor, r*0.15)
	dl.AddLine(0, -r*0.5, 0, r*0.5, tyreColor, r*0.15)
	dl.PopTransform()
}
