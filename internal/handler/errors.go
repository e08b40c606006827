package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server has nowhere
// to listen.
var errNoHTTPAddress = errors.New("handler: server HTTP address is empty")
