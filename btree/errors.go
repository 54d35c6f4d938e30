package btree

import "errors"

var KEY_NOT_FOUND_ERROR = errors.New("Key not found")
var INVALID_DEGREE_ERROR = errors.New("Invalid degree. The minimum degree must be at least 2")
var INVALID_SPLIT_ERROR = errors.New("Invalid split. The parent must not be full and the child must be full")
