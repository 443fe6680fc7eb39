package messages

import (
	"errors"
	"fmt"
)

var (
	ErrParsingCancelled  = errors.New("messages: parsing cancelled")
	ErrFailedToParseJSON = errors.New("messages: failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("messages: failed to parse YAML content")
	ErrInvalidStructure  = errors.New("messages: content must map languages to message trees")
	ErrFailedToReadFile  = errors.New("messages: failed to read file")
	ErrUnsupportedFormat = errors.New("messages: unsupported file format")
)

// ErrLanguageNotSupported indicates that the requested language is not loaded.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("messages: language not supported: %s", e.Lang)
}
