package model

// Zone is the readiness zone derived from the recovery score.
type Zone string

const (
	ZoneRed    Zone = "RED"
	ZoneYellow Zone = "YELLOW"
	ZoneGreen  Zone = "GREEN"
)

// Recommendation is the engine's output for a single day. Produced fresh
// per call and never mutated afterwards.
type Recommendation struct {
	Zone             Zone     `json:"zone"`
	Intensity        string   `json:"intensity"`
	TargetStrainLow  float64  `json:"target_strain_low"`
	TargetStrainHigh float64  `json:"target_strain_high"`
	Rationale        []string `json:"rationale"`
	Warnings         []string `json:"warnings,omitempty"`
}
