//go:build !windows

package ui

func wrapIcon(pngData []byte) []byte { return pngData }
