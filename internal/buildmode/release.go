//go:build !dev
// +build !dev

package buildmode

const Development = false

func Name() string {
	return "release"
}
