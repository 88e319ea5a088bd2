// Package boot provides the program images executed by the CPU. An
// image is copied into memory one byte at a time, usually at 0x0000
// for a boot ROM.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

var (
	// ErrImageEmpty is returned when loading an image with no data.
	ErrImageEmpty = errors.New("boot: empty image")
	// ErrImageTooLarge is returned when an image does not fit in the
	// 16-bit address space.
	ErrImageTooLarge = errors.New("boot: image does not fit in memory")
)

// addressSpace is the number of addressable bytes.
const addressSpace = 0x10000

// ByteWriter is anything an image can be written into, such as a CPU.
type ByteWriter interface {
	Write(address uint16, value uint8)
}

// ROM represents a program image. The most common image is the boot
// ROM, which is identified by its MD5 checksum.
type ROM struct {
	raw         []byte // the raw image
	checksum    string // the MD5 checksum of the image
	fingerprint uint64 // xxhash64 of the image
}

// LoadROM creates a ROM from the given bytes. The image may be any
// size from 1 byte up to the full 64kB address space.
func LoadROM(b []byte) (*ROM, error) {
	if len(b) == 0 {
		return nil, ErrImageEmpty
	}
	if len(b) > addressSpace {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(b))
	}

	sum := md5.Sum(b)

	return &ROM{
		raw:         b,
		checksum:    hex.EncodeToString(sum[:]),
		fingerprint: xxhash.Sum64(b),
	}, nil
}

// Len returns the size of the image in bytes.
func (b *ROM) Len() int {
	return len(b.raw)
}

// Read returns the byte at the given offset into the image.
func (b *ROM) Read(offset uint16) byte {
	return b.raw[offset]
}

// LoadInto writes the image to w starting at origin.
func (b *ROM) LoadInto(w ByteWriter, origin uint16) error {
	if int(origin)+len(b.raw) > addressSpace {
		return fmt.Errorf("%w: %d bytes at 0x%04X", ErrImageTooLarge, len(b.raw), origin)
	}
	for i, v := range b.raw {
		w.Write(origin+uint16(i), v)
	}
	return nil
}

// Checksum returns the MD5 checksum of the image.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Fingerprint returns the xxhash64 of the image, used to tell images
// apart in logs and traces.
func (b *ROM) Fingerprint() uint64 {
	if b == nil {
		return 0
	}
	return b.fingerprint
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the image.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

// knownBootROMChecksums is a map of known boot rom checksums,
// with the key being the checksum, and the value being the
// model of the boot rom.
var knownBootROMChecksums = map[string]string{
	DMG0: "Game Boy (DMG-0)",
	DMG:  "Game Boy (DMG-01)",
	MGB:  "Game Boy Pocket",
	SGB:  "Super Game Boy",
	SGB2: "Super Game Boy 2",
	CGB0: "Game Boy Color (CGB-0)",
	CGB:  "Game Boy Color (CGB-A/B/C/D/E)",
}

const (
	// DMG0 is the checksum of the early DMG boot ROM.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the DMG-01 boot ROM.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF into A.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB sends the cartridge header to the SNES instead of
	// scrolling the logo.
	SGB  = "d574d4f9c12f305074798f54c091a8b4"
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	CGB0 = "7c773f3c0b01cb73bca8e83227287b7f"
	CGB  = "dbfce9db9deaa2567f6a84fde55f9680"
)
