package core

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form parameters such as file paths.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that expose their tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows callers to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows callers to update floating point parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Int64Param builds an integer parameter entry from an int64.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam builds a floating point parameter entry.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// StringParam builds a free-form parameter entry.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// WriteText prints the snapshot as aligned key/value columns grouped by name.
func (s ParameterSnapshot) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, g := range s.Groups {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "[%s]\n", g.Name)
		if g.Summary != "" {
			fmt.Fprintf(tw, "# %s\n", g.Summary)
		}
		for _, p := range g.Params {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Key, p.Value, p.Label)
		}
	}
	return tw.Flush()
}

// Apply pushes key=value overrides into sim through whichever setter
// interfaces it implements. It returns the keys that could not be applied,
// sorted.
func Apply(sim Sim, overrides map[string]string) []string {
	intSetter, _ := sim.(IntParameterSetter)
	floatSetter, _ := sim.(FloatParameterSetter)
	var rejected []string
	for key, raw := range overrides {
		if intSetter != nil {
			if v, err := strconv.Atoi(raw); err == nil && intSetter.SetIntParameter(key, v) {
				continue
			}
		}
		if floatSetter != nil {
			if v, err := strconv.ParseFloat(raw, 64); err == nil && floatSetter.SetFloatParameter(key, v) {
				continue
			}
		}
		rejected = append(rejected, key)
	}
	sort.Strings(rejected)
	return rejected
}
