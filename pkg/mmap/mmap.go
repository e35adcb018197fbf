// Package mmap maps device memory, such as /dev/gpiomem0, for 32-bit
// register access.
package mmap

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Region is a window of 32-bit registers
type Region struct {
	region []byte
	mapped bool
}

// Map maps size bytes of path starting at offset
func Map(path string, offset int64, size int) (*Region, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	region, err := unix.Mmap(int(f.Fd()), offset, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap %s: %w", path, err)
	}
	return &Region{region: region, mapped: true}, nil
}

// FromBytes wraps b as a region. Close does not unmap it.
func FromBytes(b []byte) *Region {
	return &Region{region: b}
}

// Len returns the size of the region in bytes
func (r *Region) Len() int {
	return len(r.region)
}

func (r *Region) word(offset int) *uint32 {
	if offset%4 != 0 || offset < 0 || offset+4 > len(r.region) {
		panic(fmt.Sprintf("mmap: register offset 0x%x outside region of 0x%x bytes", offset, len(r.region)))
	}
	return (*uint32)(unsafe.Pointer(&r.region[offset]))
}

// Read32 reads the register at offset
func (r *Region) Read32(offset int) uint32 {
	return atomic.LoadUint32(r.word(offset))
}

// Write32 writes the register at offset
func (r *Region) Write32(offset int, value uint32) {
	atomic.StoreUint32(r.word(offset), value)
}

// Close unmaps the region
func (r *Region) Close() error {
	if !r.mapped || r.region == nil {
		return nil
	}
	err := unix.Munmap(r.region)
	r.region = nil
	return err
}
