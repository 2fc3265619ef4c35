package parameter

import "time"

// Collision probe grid, debug visualization around each asteroid
const (
	ProbeGridSize   = 20
	ProbeGridExtent = 7.0
)

// Camera
const (
	// CameraZoomStep is the log2 radius change per mouse wheel notch
	CameraZoomStep = 0.1
	// CameraRadiusMin and CameraRadiusMax bound zooming
	CameraRadiusMin = 2.0
	CameraRadiusMax = 1000.0
)

// Window frontend
const (
	// PointSize is the pixel size of bullets and probe samples
	PointSize = 5
	// LineWidth is the stroke width for outlines in pixels
	LineWidth = 1.0
)

// Terminal frontend
const (
	// TermCellAspect is the height/width ratio of a terminal cell
	// Each cell carries two vertical pixels drawn as a half block, so pixels come out square
	TermCellAspect = 2

	// TermRepeatGuard swallows auto-repeat of one-shot keys, it must exceed the terminal's initial repeat delay
	TermRepeatGuard = 600 * time.Millisecond
)
