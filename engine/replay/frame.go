// Package replay records the pilot's input stream so a run can be
// played back deterministically. A tape holds the world seed and tick
// rate plus one frame per tick that had any input; ticks without a
// frame replay as silence.
package replay

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/relayzero/drift-engine/engine/core"
)

var tapeMagic = [4]byte{'D', 'R', 'F', 'T'}

const tapeVersion uint16 = 1

// Header opens every tape: the seed and tick rate needed to rebuild
// the exact same world
type Header struct {
	Seed     int64
	TickRate float64
}

// Encode writes the header to binary
func (h *Header) Encode(w io.Writer) error {
	if _, err := w.Write(tapeMagic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, tapeVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.Seed); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, h.TickRate)
}

// Decode reads and validates the header
func (h *Header) Decode(r io.Reader) error {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return err
	}
	if magic != tapeMagic {
		return fmt.Errorf("not a replay tape")
	}
	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return err
	}
	if version != tapeVersion {
		return fmt.Errorf("unsupported tape version %d", version)
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Seed); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &h.TickRate)
}

// Frame is one tick of recorded input
type Frame struct {
	Tick  uint64
	Input core.InputFrame
}

// Encode writes a frame to binary
func (f *Frame) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, f.Tick); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.Input.Move.X); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.Input.Move.Y); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.Input.Aim.X); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.Input.Aim.Y); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint16(f.Input.Buttons))
}

// Decode reads a frame from binary
func (f *Frame) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.Tick); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.Input.Move.X); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.Input.Move.Y); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.Input.Aim.X); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.Input.Aim.Y); err != nil {
		return err
	}
	var buttons uint16
	if err := binary.Read(r, binary.LittleEndian, &buttons); err != nil {
		return err
	}
	f.Input.Buttons = core.ButtonMask(buttons)
	return nil
}
