package parameter

import "time"

// Session
const (
	// AsteroidCount is the number of BIG asteroids spawned on reset
	AsteroidCount = 10

	// WorldRadiusX and WorldRadiusY are the half-extents of the nominal world
	// Entities may leave it, it only drives spawn placement, bullet range and camera fit
	WorldRadiusX = 50.0
	WorldRadiusY = 50.0
)

// Ship controls
const (
	// ShipTurnRateDeg is the angular velocity applied while a turn button is held
	ShipTurnRateDeg = 180.0

	// ShipThrustAccel is the acceleration magnitude along the facing while thrust is held
	ShipThrustAccel = 60 * 2.5

	// ShipDragFactor scales drag deceleration with speed: |drag| = factor * |vel|
	ShipDragFactor = 1.25

	// ShipNoseOffset is the local-space distance from ship origin to the nose
	ShipNoseOffset = 2.0
)

// Weapon
const (
	// BulletMuzzleSpeed is added to ship velocity along the facing
	BulletMuzzleSpeed = 60.0

	// ShootCooldown is the minimum simulation time between shots, seconds
	ShootCooldown = 1.0 / 5.0

	// BulletRangeFactor stretches bullet travel beyond the world diagonal
	BulletRangeFactor = 1.25
)

// Asteroid spawn and split velocities
const (
	AsteroidSpawnSpeedMin = 4.0
	AsteroidSpawnSpeedMax = 7.0

	// Each of the first two SMALL fragments of a MEDIUM split
	MediumSplitSpeedMin = 7.0
	MediumSplitSpeedMax = 12.0

	// Symmetric delta applied to the two MEDIUM fragments of a BIG split
	BigSplitSpeedMin = 2.0
	BigSplitSpeedMax = 6.0
)

// Asteroid mesh shape
const (
	// Regular vertex radius range as a multiple of the size radius
	MeshRadiusOuter = 1.2
	MeshRadiusInner = 0.75

	// Notch vertex radius range, dents the rock inward
	MeshNotchOuter = 0.75
	MeshNotchInner = 0.12
)

// Debug
const (
	// StatsLogInterval is how often frontends log a stats line at debug level
	StatsLogInterval = 5 * time.Second
)
