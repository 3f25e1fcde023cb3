package replay

import (
	"bufio"
	"log"
	"os"

	"github.com/relayzero/drift-engine/engine/core"
)

// Recorder streams frames to disk as the game runs. Call Record once
// per tick that has input, Close when the run ends.
type Recorder struct {
	file   *os.File
	writer *bufio.Writer
	frames int
}

// NewRecorder creates the tape file and writes the header
func NewRecorder(path string, header Header) (*Recorder, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	writer := bufio.NewWriter(file)
	if err := header.Encode(writer); err != nil {
		file.Close()
		return nil, err
	}
	return &Recorder{file: file, writer: writer}, nil
}

// Record appends one frame to the tape
func (r *Recorder) Record(tick uint64, input core.InputFrame) error {
	frame := Frame{Tick: tick, Input: input}
	if err := frame.Encode(r.writer); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Frames reports how many frames have been recorded so far
func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes and closes the tape file
func (r *Recorder) Close() error {
	if err := r.writer.Flush(); err != nil {
		r.file.Close()
		return err
	}
	log.Printf("Replay: recorded %d frames", r.frames)
	return r.file.Close()
}

// Tape is a loaded replay ready for playback
type Tape struct {
	Header Header
	Frames []Frame

	cursor int
}

// Load reads a whole tape into memory. Frames are read until the file
// ends, so a tape cut short by a crash still plays back up to the cut.
func Load(path string) (*Tape, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	tape := &Tape{}
	if err := tape.Header.Decode(reader); err != nil {
		return nil, err
	}
	for {
		var frame Frame
		if err := frame.Decode(reader); err != nil {
			break
		}
		tape.Frames = append(tape.Frames, frame)
	}
	log.Printf("Replay: loaded %d frames (seed %d)", len(tape.Frames), tape.Header.Seed)
	return tape, nil
}

// FrameForTick returns the input recorded for a tick, or a zero frame
// when the tick was silent. Ticks must be queried in ascending order.
func (t *Tape) FrameForTick(tick uint64) core.InputFrame {
	for t.cursor < len(t.Frames) && t.Frames[t.cursor].Tick < tick {
		t.cursor++
	}
	if t.cursor < len(t.Frames) && t.Frames[t.cursor].Tick == tick {
		return t.Frames[t.cursor].Input
	}
	return core.InputFrame{}
}

// Done reports whether playback has passed the last recorded frame
func (t *Tape) Done(tick uint64) bool {
	if len(t.Frames) == 0 {
		return true
	}
	return tick > t.Frames[len(t.Frames)-1].Tick
}

// Rewind resets playback to the start of the tape
func (t *Tape) Rewind() {
	t.cursor = 0
}
