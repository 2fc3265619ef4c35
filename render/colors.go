package render

import "image/color"

// Palette, background tones are the dimmed slate and plum of the reference look
var (
	ColorOutOfWorld = color.RGBA{R: 20, G: 13, B: 15, A: 255} // Dim plum outside the world box
	ColorWorld      = color.RGBA{R: 10, G: 12, B: 13, A: 255} // Dark slate inside the world box
	ColorBounds     = color.RGBA{R: 70, G: 80, B: 90, A: 255} // World box outline

	ColorShip     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorBullet   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorAsteroid = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	ColorProbeInside  = color.RGBA{R: 255, G: 64, B: 64, A: 255} // Red, sample inside the asteroid
	ColorProbeOutside = color.RGBA{R: 64, G: 255, B: 64, A: 255} // Green, sample outside

	ColorText = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)
