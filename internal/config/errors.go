package config

import "fmt"

type InvalidYAMLError struct {
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", ConfigFile, e.Wrapped)
}

type InvalidOutputFormatError struct {
	Value string
}

func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("%s property output has invalid value '%s': must be 'text' or 'json'", ConfigFile, e.Value)
}
