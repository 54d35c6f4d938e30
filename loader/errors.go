package loader

import "errors"

var INVALID_LINE_ERROR = errors.New("Invalid line. Expected a key followed by a value")
