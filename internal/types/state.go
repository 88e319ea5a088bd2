package types

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash"
)

var (
	// ErrStateTruncated is returned when a State is read past its end.
	ErrStateTruncated = errors.New("state: truncated")
	// ErrStateChecksum is returned when a sealed State fails verification.
	ErrStateChecksum = errors.New("state: checksum mismatch")
)

// checksumSize is the size of the xxhash64 trailer appended by Seal.
const checksumSize = 8

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State represents the emulator state. This is used to
// save and load states between runs.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error  // first read error
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// OpenState verifies the checksum trailer written by Seal and
// returns a State positioned at the start of the payload.
func OpenState(sealed []byte) (*State, error) {
	if len(sealed) < checksumSize {
		return nil, ErrStateTruncated
	}
	payload := sealed[:len(sealed)-checksumSize]
	if binary.LittleEndian.Uint64(sealed[len(payload):]) != xxhash.Sum64(payload) {
		return nil, ErrStateChecksum
	}
	return StateFromBytes(payload), nil
}

// ResetPosition resets the read position and any read error,
// allowing the state to be read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.err = nil
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = binary.LittleEndian.AppendUint16(s.raw, value)
}

func (s *State) Write32(value uint32) {
	s.raw = binary.LittleEndian.AppendUint32(s.raw, value)
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// next returns the next n bytes, or nil once the State is exhausted.
func (s *State) next(n int) []byte {
	if s.err != nil {
		return nil
	}
	if s.readPosition+n > len(s.raw) {
		s.err = ErrStateTruncated
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	if b := s.next(1); b != nil {
		return b[0]
	}
	return 0
}

func (s *State) Read16() uint16 {
	if b := s.next(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (s *State) Read32() uint32 {
	if b := s.next(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

func (s *State) ReadData(p []byte) {
	if b := s.next(len(p)); b != nil {
		copy(p, b)
	}
}

// Err returns the first error encountered while reading, if any.
func (s *State) Err() error {
	return s.err
}

// Bytes returns the raw state data.
func (s *State) Bytes() []byte {
	return s.raw
}

// Seal returns the raw state data followed by its xxhash64 checksum.
func (s *State) Seal() []byte {
	sealed := make([]byte, len(s.raw), len(s.raw)+checksumSize)
	copy(sealed, s.raw)
	return binary.LittleEndian.AppendUint64(sealed, xxhash.Sum64(s.raw))
}
