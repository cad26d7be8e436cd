package vars

import "fmt"

// OnOff is a tri-state switch value. The zero value means unset.
type OnOff string

func (o OnOff) IsSet() bool {
	return o != ""
}

func (o OnOff) Bool() (bool, error) {
	v, ok := ParseBool(string(o))
	if !ok {
		return false, fmt.Errorf("must be \"on\" or \"off\", got %q", string(o))
	}
	return v, nil
}
