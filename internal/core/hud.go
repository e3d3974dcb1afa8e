package core

// HUDEffect describes one running timed effect for the HUD.
type HUDEffect struct {
	Name          string
	Glyph         rune
	Color         Color
	Progress      float64 // Remaining fraction, 1 = fresh
	AboutToExpire bool
}

// HUDInfo is what the platform shows around the playfield.
type HUDInfo struct {
	Score     int
	HighScore int
	Level     int

	PulseReady     bool
	PulseProgress  float64 // 0 right after firing, 1 when ready
	PulseIntensity float64
	PulseColor     Color
	PulseStatus    string

	Shielded bool
	Effects  []HUDEffect
}

// RunStats summarizes a finished run for persistence.
type RunStats struct {
	Score     int
	Level     int
	Pulses    int
	PowerUps  int
	Passed    int
	Ticks     uint64
	Seed      int64
	EndReason string
}
