package repository

import "errors"

// errNoMatch aborts a mutation without writing.
var errNoMatch = errors.New("no matching record")
