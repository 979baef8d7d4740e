package app

import "fmt"

// MalformedRecordError reports a command whose target coordinate is missing
// or cannot be read as an integer.
type MalformedRecordError struct {
	Index int    // position of the record in the list handed to the stage
	Field string // target_x or target_y
	Value string // raw JSON value, empty when the field is missing
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("command %d: missing %s", e.Index, e.Field)
	}
	return fmt.Sprintf("command %d: %s value %s is not an integer: %v", e.Index, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// MissingConfigError reports a required configuration key that is absent
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required configuration key %q", e.Key)
}
