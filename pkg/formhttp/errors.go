package formhttp

import "errors"

var (
	ErrInvalidMarkup = errors.New("formhttp: invalid form markup")
	ErrParseRequest  = errors.New("formhttp: failed to parse request body")
	ErrEngine        = errors.New("formhttp: failed to create form validation")
	ErrWriteResponse = errors.New("formhttp: failed to write response")
)
