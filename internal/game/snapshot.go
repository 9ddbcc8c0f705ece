package game

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrSnapshotShape is returned when a snapshot's grid does not match its
// declared dimensions.
var ErrSnapshotShape = errors.New("snapshot shape mismatch")

// fieldSnapshot is the wire form of a Field: occupancy only, bit-packed in
// column-major order. The surface cache is derived and never stored.
type fieldSnapshot struct {
	Width  int    `msgpack:"w"`
	Height int    `msgpack:"h"`
	Bits   []byte `msgpack:"bits"`
}

// MarshalSnapshot encodes the occupancy grid.
func (f *Field) MarshalSnapshot() ([]byte, error) {
	snap := fieldSnapshot{
		Width:  f.width,
		Height: f.height,
		Bits:   make([]byte, (len(f.solid)+7)/8),
	}
	for i, s := range f.solid {
		if s {
			snap.Bits[i/8] |= 1 << (i % 8)
		}
	}
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("encode field snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot rebuilds a field from MarshalSnapshot output and
// recomputes its surface cache.
func UnmarshalSnapshot(data []byte) (*Field, error) {
	var snap fieldSnapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode field snapshot: %w", err)
	}
	if snap.Width < 1 || snap.Height < 1 {
		return nil, fmt.Errorf("field %dx%d: %w", snap.Width, snap.Height, ErrSnapshotShape)
	}
	cells := snap.Width * snap.Height
	if want := (cells + 7) / 8; len(snap.Bits) != want {
		return nil, fmt.Errorf("field %dx%d has %d bytes, want %d: %w",
			snap.Width, snap.Height, len(snap.Bits), want, ErrSnapshotShape)
	}

	f := NewField(snap.Width, snap.Height)
	for i := 0; i < cells; i++ {
		f.solid[i] = snap.Bits[i/8]&(1<<(i%8)) != 0
	}
	f.recompute()
	return f, nil
}
