//go:build dev
// +build dev

package buildmode

// Development is true when the binary was built with `-tags dev`.
const Development = true

func Name() string {
	return "development"
}
