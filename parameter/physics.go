package parameter

import (
	"math"

	"github.com/lixenwraith/asteroids/vmath"
)

// Derived values, computed once from the tuning constants
var (
	// WorldRadius is the nominal world half-extent as a vector
	WorldRadius = vmath.V2(WorldRadiusX, WorldRadiusY)

	// ShipTurnRate is ShipTurnRateDeg in radians per second
	ShipTurnRate = vmath.Deg(ShipTurnRateDeg)

	// BulletTimeToLive lets a bullet cross the world diagonal with some slack
	BulletTimeToLive = BulletRangeFactor * vmath.V2Mag(vmath.V2Scale(WorldRadius, 2)) / BulletMuzzleSpeed

	// CameraRadius fits the larger world axis with a 20% margin
	CameraRadius = math.Max(WorldRadiusX, WorldRadiusY) * 1.2
)
