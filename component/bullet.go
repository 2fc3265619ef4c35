package component

// Bullet is a linear projectile, removed when its lifetime runs out or it hits an asteroid
type Bullet struct {
	Kinetic
	// TimeToLive is remaining lifetime in seconds
	TimeToLive float64
}

// Expired reports whether the bullet has no lifetime left, zero counts as expired
func (b *Bullet) Expired() bool {
	return b.TimeToLive <= 0
}
