package targeting

import (
	"encoding/json"
	"fmt"
)

// Options describes a targeting audience as supplied by the caller.
type Options struct {
	// Countries are ISO country codes. Required; defaults to none.
	Countries []string `json:"countries,omitempty"`
	// Keywords are interest keywords. Either Keywords or Connections must be set; defaults to none.
	Keywords StringList `json:"keywords,omitempty"`
	// Connections are page or application ids. Either Keywords or Connections must be set; defaults to none.
	Connections []string `json:"connections,omitempty"`
	// Gender is "male" or "female". Defaults to "" (both).
	Gender string `json:"gender,omitempty"`
	// AgeClass is "young" or "old". Defaults to "" (no age restriction).
	AgeClass string `json:"age_class,omitempty"`
}

// HasTargetingMode reports whether keywords or connections are set.
func (o Options) HasTargetingMode() bool {
	return len(o.Keywords) > 0 || len(o.Connections) > 0
}

// StringList is a list of strings that also accepts a single JSON string.
type StringList []string

// UnmarshalJSON decodes either "foo" or ["foo", "bar"].
func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	*l = list
	return nil
}
