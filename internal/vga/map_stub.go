//go:build !linux

package vga

import "fmt"

// MapPhysical is unsupported off Linux; only emulated buffers are
// available.
func MapPhysical(device string) (*FrameBuffer, error) {
	return nil, fmt.Errorf("physical text-mode mapping is only supported on linux")
}

func munmap(data []byte) error {
	return nil
}
