package app

import (
	"fmt"

	"github.com/bitshepherds/yamlschema/internal/config"
)

type ValidationFailedError struct{}

func (e *ValidationFailedError) Error() string {
	return "the data does not conform to the schema definition"
}

type MissingFlagError struct {
	Flag string
}

func (e *MissingFlagError) Error() string {
	return fmt.Sprintf("required flag --%s not provided (and no default configured in %s)", e.Flag, config.ConfigFile)
}

type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("the specified path %s doesn't exist", e.Path)
}

type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("the specified path %s is a folder and not a file", e.Path)
}
