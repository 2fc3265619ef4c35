package parameter

import "time"

const (
	// TickRate is the fixed simulation rate
	TickRate = 60

	// FixedDT is the simulation step in seconds, independent of measured frame time
	FixedDT = 1.0 / TickRate

	// TickInterval is FixedDT as a duration for frontends driving a ticker
	TickInterval = time.Second / TickRate

	// FPSInitial is the running average assumed before the first measurement
	FPSInitial = 60.0

	// FPSSmoothing is the exponential moving average weight of each new sample
	FPSSmoothing = 0.025
)
