package app

import (
	"errors"
	"io/fs"
	"os"
)

// formatValue implements pflag.Value to provide a custom type name in help
// text and validation for output formats. The empty value means "use the
// configured default".
type formatValue string

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(v string) error {
	if v != "json" && v != "text" {
		return errors.New("must be 'text' or 'json'")
	}
	*f = formatValue(v)
	return nil
}

func (f *formatValue) Type() string {
	return "<format>"
}

// checkFilePath verifies that a flag points at an existing regular file.
func checkFilePath(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &FileNotFoundError{Path: path}
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &NotAFileError{Path: path}
	}
	return nil
}
