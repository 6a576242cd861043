package callback

// Parameter represents a decoded query parameter
type Parameter struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Parameters represents query parameters in display order, names are unique
type Parameters []Parameter

// Lookup returns the value for name, names are case-sensitive
func (p Parameters) Lookup(name string) (string, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return "", false
}

// Names returns parameter names in display order
func (p Parameters) Names() []string {
	result := make([]string, 0, len(p))
	for _, param := range p {
		result = append(result, param.Name)
	}
	return result
}

// Map returns parameters as a map
func (p Parameters) Map() map[string]string {
	result := make(map[string]string, len(p))
	for _, param := range p {
		result[param.Name] = param.Value
	}
	return result
}

// State represents the last received redirect
type State struct {
	Scheme     string     `yaml:"scheme" json:"scheme"`
	Host       string     `yaml:"host" json:"host"`
	Parameters Parameters `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// HasData returns true if both scheme and host are set
func (s *State) HasData() bool {
	return s != nil && s.Scheme != "" && s.Host != ""
}

// Parameter returns parameter value
func (s *State) Parameter(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	return s.Parameters.Lookup(name)
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	if s == nil {
		return &State{}
	}
	ret := *s
	if len(s.Parameters) > 0 {
		ret.Parameters = append(Parameters(nil), s.Parameters...)
	} else {
		ret.Parameters = nil
	}
	return &ret
}
