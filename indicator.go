package finassist

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Indicator is a chart indicator request. The backend accepts two wire
// shapes for historical reasons: a bare string ("SMA") or an object with a
// name, an optional target panel, and arbitrary numeric or string
// parameters ({"name":"SMA","panel":"main","window":20}). Both normalize
// into this one type; there is no runtime type sniffing past the decoder.
type Indicator struct {
	Name   string
	Panel  string
	Params map[string]any // values are float64 or string
}

// SimpleIndicator returns the bare-name form of an indicator.
func SimpleIndicator(name string) Indicator { return Indicator{Name: name} }

// IsSimple reports whether the indicator carries no configuration besides
// its name, in which case it marshals back to the compact string form.
func (in Indicator) IsSimple() bool { return in.Panel == "" && len(in.Params) == 0 }

// UnmarshalJSON accepts both wire shapes and produces the normalized form.
func (in *Indicator) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		if name == "" {
			return fmt.Errorf("indicator name is empty")
		}
		*in = SimpleIndicator(name)
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("indicator is neither a string nor an object: %w", err)
	}

	out := Indicator{}
	for k, v := range obj {
		switch k {
		case "name":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("indicator name is not a string: %v", v)
			}
			out.Name = s
		case "panel":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("indicator panel is not a string: %v", v)
			}
			out.Panel = s
		default:
			switch v.(type) {
			case float64, string:
			default:
				return fmt.Errorf("indicator parameter %q is neither a number nor a string: %v", k, v)
			}
			if out.Params == nil {
				out.Params = make(map[string]any)
			}
			out.Params[k] = v
		}
	}
	if out.Name == "" {
		return fmt.Errorf("indicator object has no name")
	}
	*in = out
	return nil
}

// MarshalJSON emits the compact string form for simple indicators, the
// object form otherwise.
func (in Indicator) MarshalJSON() ([]byte, error) {
	if in.IsSimple() {
		return json.Marshal(in.Name)
	}
	obj := make(map[string]any, len(in.Params)+2)
	obj["name"] = in.Name
	if in.Panel != "" {
		obj["panel"] = in.Panel
	}
	for k, v := range in.Params {
		obj[k] = v
	}
	return json.Marshal(obj)
}

// ParamNames returns the configured parameter keys in a stable order.
func (in Indicator) ParamNames() []string {
	names := make([]string, 0, len(in.Params))
	for k := range in.Params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// String renders a short human form, e.g. "SMA(window=20)".
func (in Indicator) String() string {
	if in.IsSimple() {
		return in.Name
	}
	s := in.Name + "("
	for i, k := range in.ParamNames() {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%v", k, in.Params[k])
	}
	return s + ")"
}
