package models

// Goal представляет измеримую цель (например, "прочитать 12 книг").
// Current всегда находится в диапазоне [0, Target].
type Goal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Deadline Date    `json:"deadline,omitempty"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
}

// GetID returns the goal id.
func (g Goal) GetID() string { return g.ID }

// ClampProgress limits v to [0, target]. A non-positive target clamps to 0.
func ClampProgress(v, target float64) float64 {
	if v > target {
		v = target
	}
	if v < 0 {
		v = 0
	}
	return v
}

// WithProgress returns a copy of the goal with Current set to v clamped to [0, Target].
func (g Goal) WithProgress(v float64) Goal {
	g.Current = ClampProgress(v, g.Target)
	return g
}
