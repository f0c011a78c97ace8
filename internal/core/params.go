package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter reports the current value of a single tunable exposed by a sim.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterControl describes an adjustable parameter that the UI layer may
// step up or down. Bounds are interpreted based on the parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of UI-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
	Parameters() []Parameter
}

// FloatParameterSetter allows UI interactions to update floating point
// parameters. The setter reports whether the key was recognized.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
