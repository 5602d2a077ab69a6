package charref

import "errors"

// ErrUnknownOption is returned when an option name does not match any value
// of its enumeration.
var ErrUnknownOption = errors.New("charref: unknown option value")
