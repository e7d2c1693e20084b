package qdrant

import "errors"

// ErrConnectivity is returned when the server stays unreachable after the
// connection retry budget is exhausted. Fatal at startup.
var ErrConnectivity = errors.New("qdrant unreachable")
