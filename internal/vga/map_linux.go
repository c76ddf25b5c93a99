//go:build linux

package vga

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// PhysAddr is the physical address of the text-mode surface. The platform
// guarantees [PhysAddr, PhysAddr+BufferSize) is valid, aligned, and owned
// by this driver for the process lifetime. MapPhysical below is the single
// place that turns this constant into live structured memory; nothing else
// may duplicate the binding.
const PhysAddr = 0xB8000

// DefaultMemDevice is the character device exposing physical memory.
const DefaultMemDevice = "/dev/mem"

// MapPhysical maps the text-mode surface from the physical memory device.
// Requires a platform that exposes legacy VGA text memory and a process
// privileged enough to map it.
func MapPhysical(device string) (*FrameBuffer, error) {
	if device == "" {
		device = DefaultMemDevice
	}
	f, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	defer f.Close()

	data, err := unix.Mmap(int(f.Fd()), PhysAddr, BufferSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s at %#x: %w", device, PhysAddr, err)
	}
	return &FrameBuffer{
		words:  (*[Height * Width]uint16)(unsafe.Pointer(&data[0])),
		mapped: data,
	}, nil
}

func munmap(data []byte) error {
	return unix.Munmap(data)
}
