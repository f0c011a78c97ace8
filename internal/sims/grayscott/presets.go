package grayscott

// Preset names a (feed, kill) pair known to produce a distinct
// pattern-forming regime.
type Preset struct {
	Name string
	Feed float32
	Kill float32
}

// ModelPresets returns the built-in feed/kill presets in cycling order.
func ModelPresets() []Preset {
	return []Preset{
		{Name: "Soliton Collapse", Feed: 0.022, Kill: 0.060},
		{Name: "Brain Coral", Feed: 0.0545, Kill: 0.062},
		{Name: "Fingerprint", Feed: 0.037, Kill: 0.060},
		{Name: "Mitosis", Feed: 0.0367, Kill: 0.0649},
		{Name: "Ripples", Feed: 0.018, Kill: 0.051},
		{Name: "U-Skate World", Feed: 0.062, Kill: 0.061},
		{Name: "Undulating", Feed: 0.026, Kill: 0.051},
	}
}
