package preview

import (
	"math"

	"github.com/fixmystl/fixmystl/pkg/geometry"
)

// Camera looks at a mesh from outside. +Z is up, matching the print bed.
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	Azimuth   float64 // Rotation around Z, 0 looks along -X
	Elevation float64 // Angle above the XY plane
}

// NewCamera creates a camera in a three-quarter view that frames bbox
func NewCamera(bbox geometry.BoundingBox) *Camera {
	c := &Camera{
		Up:        geometry.NewVector3(0, 0, 1),
		FOV:       math.Pi / 4, // 45 degrees
		Azimuth:   -math.Pi / 3,
		Elevation: math.Pi / 6,
	}
	c.Fit(bbox)
	return c
}

// Fit aims at the center of bbox and backs off until its bounding sphere is
// fully visible
func (c *Camera) Fit(bbox geometry.BoundingBox) {
	c.Target = bbox.Center()
	radius := bbox.Diagonal() / 2
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		radius = 1
	}
	c.Distance = radius / math.Sin(c.FOV/2) * 1.05
	c.UpdatePosition()
}

// UpdatePosition updates camera position based on the orbit angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.Elevation) * math.Cos(c.Azimuth)
	y := c.Distance * math.Cos(c.Elevation) * math.Sin(c.Azimuth)
	z := c.Distance * math.Sin(c.Elevation)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Orbit rotates the camera around its target
func (c *Camera) Orbit(deltaAzimuth, deltaElevation float64) {
	c.Azimuth += deltaAzimuth
	c.Elevation += deltaElevation

	// Looking straight up or down would make Up parallel to the view direction
	maxAngle := math.Pi/2 - 0.1
	c.Elevation = math.Max(-maxAngle, math.Min(maxAngle, c.Elevation))

	c.UpdatePosition()
}

// Project projects a 3D point to screen coordinates plus depth along the view
// direction
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// ViewDirection returns the unit vector from the target towards the camera
func (c *Camera) ViewDirection() geometry.Vector3 {
	return c.Position.Sub(c.Target).Normalize()
}
