package renderer

import (
	"math"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

// Camera generates primary rays for a pinhole view, grounded on the
// teacher's pkg/renderer/camera.go viewport construction, generalized
// from a fixed origin/viewport to a configurable look-from/look-at/fov
// so scenes other than the teacher's default can be framed.
type Camera struct {
	origin          vmath.Vec3
	lowerLeftCorner vmath.Vec3
	horizontal      vmath.Vec3
	vertical        vmath.Vec3
}

// NewCamera builds a camera at lookFrom, aimed at lookAt, with up as the
// world up direction, vfovDeg the vertical field of view in degrees, and
// aspectRatio the viewport's width/height.
func NewCamera(lookFrom, lookAt, up vmath.Vec3, vfovDeg, aspectRatio float32) *Camera {
	theta := float64(vfovDeg) * math.Pi / 180
	halfHeight := float32(math.Tan(theta / 2))
	viewportHeight := 2 * halfHeight
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Sub(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Mul(viewportWidth)
	vertical := v.Mul(viewportHeight)
	lowerLeftCorner := lookFrom.Sub(horizontal.Mul(0.5)).Sub(vertical.Mul(0.5)).Sub(w)

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay generates a ray through normalized screen coordinates (s, t),
// 0 <= s,t <= 1, with s=0 at the left edge and t=0 at the bottom edge.
func (c *Camera) GetRay(s, t float32) vmath.Ray {
	dir := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(c.origin)
	return vmath.NewRay(c.origin, dir.Normalize())
}
