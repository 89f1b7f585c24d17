package particles

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	fieldSpan       = 120.0
	lineSpan        = 100.0
	fieldOfView     = 75.0 * math.Pi / 180
	nearPlane       = 0.1
	farPlane        = 1000.0
	cameraEase      = 0.01
	pointerScale    = 0.002
	timeStep        = 0.01
	starSpinY       = 0.0003
	starSpinX       = 0.0001
	cameraTilt      = -0.1
	cameraStartY    = 5.0
	cameraDistance  = 50.0
	minLineSegments = 3
	maxLineSegments = 7
)

var (
	circuitCyan = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	circuitRed  = color.NRGBA{R: 0xff, G: 0x33, B: 0x66, A: 0xff}
)

type vec3 struct {
	x, y, z float64
}

type star struct {
	position vec3
	size     float64
}

type circuitLine struct {
	points []vec3
	color  color.NRGBA
}

// Scene is the star field and circuit lines seen by a drifting camera.
// It is owned by a single render goroutine.
type Scene struct {
	stars  []star
	lines  []circuitLine
	spinX  float64
	spinY  float64
	time   float64
	camera vec3
	aspect float64
}

// NewScene generates a deterministic scene for seed.
func NewScene(stars, lines int, seed int64) *Scene {
	rng := rand.New(rand.NewSource(seed))
	scene := &Scene{
		stars:  make([]star, stars),
		lines:  make([]circuitLine, lines),
		camera: vec3{x: 0, y: cameraStartY, z: cameraDistance},
		aspect: 1,
	}

	for i := range scene.stars {
		scene.stars[i] = star{
			position: vec3{
				x: (rng.Float64() - 0.5) * fieldSpan,
				y: (rng.Float64() - 0.5) * fieldSpan,
				z: (rng.Float64() - 0.5) * fieldSpan,
			},
			size: rng.Float64()*0.1 + 0.02,
		}
	}

	for i := range scene.lines {
		segments := minLineSegments + rng.Intn(maxLineSegments-minLineSegments+1)
		point := vec3{
			x: (rng.Float64() - 0.5) * lineSpan,
			y: (rng.Float64() - 0.5) * lineSpan,
			z: (rng.Float64() - 0.5) * lineSpan,
		}
		points := make([]vec3, 0, segments)
		for j := 0; j < segments; j++ {
			points = append(points, point)
			// Right-angle turns along a single axis.
			distance := rng.Float64()*10 + 5
			switch rng.Intn(3) {
			case 0:
				point.x += distance
			case 1:
				point.y += distance
			default:
				point.z += distance
			}
		}
		lineColor := circuitCyan
		if rng.Float64() > 0.5 {
			lineColor = circuitRed
		}
		scene.lines[i] = circuitLine{points: points, color: lineColor}
	}

	return scene
}

// SetAspect updates the projection for a new surface size.
func (scene *Scene) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	scene.aspect = float64(width) / float64(height)
}

// Advance moves the animation one frame, easing the camera toward the
// pointer bias.
func (scene *Scene) Advance(biasX, biasY float64) {
	scene.time += timeStep
	scene.spinY += starSpinY
	scene.spinX += starSpinX
	scene.camera.x += (biasX - scene.camera.x) * cameraEase
	scene.camera.y += (-biasY - scene.camera.y) * cameraEase
}

// Camera returns the camera position.
func (scene *Scene) Camera() (x, y, z float64) {
	return scene.camera.x, scene.camera.y, scene.camera.z
}

// LineOpacity returns the pulsing opacity of circuit line index.
func (scene *Scene) LineOpacity(index int) float64 {
	return 0.2 + math.Sin(scene.time+float64(index))*0.2
}

// PointerBias converts a pointer position into the camera bias.
func PointerBias(x, y float32, width, height int) (float64, float64) {
	return (float64(x) - float64(width)/2) * pointerScale,
		(float64(y) - float64(height)/2) * pointerScale
}

// project maps a world point to pixel coordinates and its view depth.
func (scene *Scene) project(point vec3, width, height int) (float64, float64, float64, bool) {
	relative := vec3{
		x: point.x - scene.camera.x,
		y: point.y - scene.camera.y,
		z: point.z - scene.camera.z,
	}
	view := rotateX(relative, -cameraTilt)
	depth := -view.z
	if depth < nearPlane || depth > farPlane {
		return 0, 0, 0, false
	}
	focal := 1 / math.Tan(fieldOfView/2)
	ndcX := focal / scene.aspect * view.x / depth
	ndcY := focal * view.y / depth
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return 0, 0, 0, false
	}
	px := (ndcX + 1) / 2 * float64(width)
	py := (1 - ndcY) / 2 * float64(height)
	return px, py, depth, true
}

func (scene *Scene) starWorld(position vec3) vec3 {
	return rotateX(rotateY(position, scene.spinY), scene.spinX)
}

func rotateX(point vec3, angle float64) vec3 {
	sin, cos := math.Sincos(angle)
	return vec3{
		x: point.x,
		y: point.y*cos - point.z*sin,
		z: point.y*sin + point.z*cos,
	}
}

func rotateY(point vec3, angle float64) vec3 {
	sin, cos := math.Sincos(angle)
	return vec3{
		x: point.x*cos + point.z*sin,
		y: point.y,
		z: -point.x*sin + point.z*cos,
	}
}
