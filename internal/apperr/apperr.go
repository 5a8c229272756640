// Package apperr holds the error classes shared by the window shell.
//
// Concrete failures wrap one of the sentinels below with fmt.Errorf("%w: ...")
// so callers can classify them with errors.Is.
package apperr

import "errors"

var (
	// ErrConfiguration marks a missing template or development URL.
	ErrConfiguration = errors.New("configuration error")

	// ErrMenuDiscovery marks a menu tree that could not be located or built.
	ErrMenuDiscovery = errors.New("menu discovery error")

	// ErrWindowConstruction marks a window that the host failed to build.
	ErrWindowConstruction = errors.New("window construction error")
)

