// Package preview renders still images of a mesh for quick visual checks.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/fixmystl/fixmystl/pkg/estimate"
	"github.com/fixmystl/fixmystl/pkg/geometry"
)

// ErrNoMesh is returned by Render before SetMesh was called.
var ErrNoMesh = errors.New("preview: no mesh set")

// Colors used by the renderer
var (
	BackgroundColor = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	ModelColor      = color.RGBA{R: 80, G: 140, B: 220, A: 255}
	OverhangColor   = color.RGBA{R: 220, G: 70, B: 50, A: 255}
)

const ambient = 0.3

// ImageFormat selects the encoder used by Encode
type ImageFormat int

const (
	PNG ImageFormat = iota
	WebP
)

// FormatFor picks the image format from a file extension
func FormatFor(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	}
	return 0, fmt.Errorf("unsupported preview format %q (use .png or .webp)", filepath.Ext(path))
}

// Renderer keeps the latest mesh and draws it on demand. It satisfies the
// application's preview hook, so it follows every transform change.
type Renderer struct {
	// Size is the edge length of the square output image in pixels.
	Size int
	// Supersample renders at Size*Supersample and scales down.
	Supersample int
	// OverhangThreshold in degrees; faces past it are drawn in OverhangColor.
	// Zero disables highlighting.
	OverhangThreshold float64

	mu       sync.Mutex
	vertices geometry.VertexBuffer
	camera   *Camera
}

// NewRenderer creates a renderer producing size×size images
func NewRenderer(size int) *Renderer {
	return &Renderer{
		Size:              size,
		Supersample:       2,
		OverhangThreshold: estimate.DefaultOverhangThreshold,
	}
}

// SetMesh replaces the mesh and frames the camera on it. triangleCount is
// implied by the buffer length.
func (r *Renderer) SetMesh(vertices geometry.VertexBuffer, triangleCount int, bbox geometry.BoundingBox) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vertices = vertices
	r.camera = NewCamera(bbox)
}

// UpdateMeshPositions swaps in transformed vertices and reframes the camera
// keeping its viewing angle
func (r *Renderer) UpdateMeshPositions(vertices geometry.VertexBuffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vertices = vertices
	bbox := geometry.ComputeBoundingBox(vertices)
	if r.camera == nil {
		r.camera = NewCamera(bbox)
		return
	}
	r.camera.Fit(bbox)
}

// Camera returns the current camera, or nil before SetMesh
func (r *Renderer) Camera() *Camera {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.camera
}

// Render draws the current mesh
func (r *Renderer) Render() (*image.RGBA, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.camera == nil {
		return nil, ErrNoMesh
	}
	if r.Size <= 0 {
		return nil, fmt.Errorf("preview: invalid size %d", r.Size)
	}

	ss := r.Supersample
	if ss < 1 {
		ss = 1
	}
	full := r.Size * ss
	w, h := float64(full), float64(full)

	img := image.NewRGBA(image.Rect(0, 0, full, full))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: BackgroundColor}, image.Point{}, draw.Src)

	zbuffer := make([]float64, full*full)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	light := r.camera.ViewDirection()
	limit := estimate.OverhangLimit(r.OverhangThreshold)

	n := r.vertices.TriangleCount()
	for t := 0; t < n; t++ {
		tri := r.vertices.Triangle(t)
		normal := tri.Normal()

		base := ModelColor
		if r.OverhangThreshold > 0 && estimate.IsOverhanging(normal, limit) {
			base = OverhangColor
		}
		// Headlight shading; back faces are lit as well so open meshes stay visible.
		intensity := ambient + (1-ambient)*math.Abs(normal.Dot(light))

		var p [3]point
		for i, v := range [3]geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			p[i].x, p[i].y, p[i].z = r.camera.Project(v, w, h)
		}
		fillTriangle(img, zbuffer, p[0], p[1], p[2], shade(base, intensity))
	}

	if ss == 1 {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Size, r.Size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// Encode renders the mesh and writes it to w
func (r *Renderer) Encode(w io.Writer, format ImageFormat) error {
	img, err := r.Render()
	if err != nil {
		return err
	}
	switch format {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown image format %d", format)
}

// SaveFile renders the mesh to path, choosing the format by extension
func (r *Renderer) SaveFile(path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := r.Encode(f, format); err != nil {
		return err
	}
	return f.Close()
}
