package accel

import (
	"errors"
	"testing"

	"github.com/stride-hpc/stride/internal/vec"
)

func TestNewWorkDiv(t *testing.T) {
	tests := []struct {
		name    string
		blocks  vec.Vec
		threads vec.Vec
		elems   vec.Vec
		wantErr bool
	}{
		{"valid 1d", vec.New(8), vec.New(1), vec.New(1), false},
		{"valid 2d", vec.New(2, 4), vec.New(1, 1), vec.New(1, 1), false},
		{"valid 3d", vec.New(2, 2, 2), vec.New(4, 2, 1), vec.New(2, 1, 1), false},
		{"zero block extent", vec.New(0), vec.New(1), vec.New(1), true},
		{"zero thread extent", vec.New(8), vec.New(0), vec.New(1), true},
		{"zero element extent", vec.New(8), vec.New(1), vec.New(0), true},
		{"negative extent", vec.New(-2), vec.New(1), vec.New(1), true},
		{"mixed dimensionality", vec.New(2, 4), vec.New(1), vec.New(1, 1), true},
		{"empty", vec.Vec{}, vec.Vec{}, vec.Vec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorkDiv(tt.blocks, tt.threads, tt.elems)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewWorkDiv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBadWorkDiv) {
				t.Errorf("error %v does not wrap ErrBadWorkDiv", err)
			}
		})
	}
}

func TestWorkDivGridThreadExtent(t *testing.T) {
	div := MustWorkDiv(vec.New(4, 2), vec.New(8, 3), vec.New(1, 1))
	if got := div.GridThreadExtent(); !got.Equal(vec.New(32, 6)) {
		t.Errorf("GridThreadExtent() = %v, want [32 6]", got)
	}
}

func TestWorkDivImmutable(t *testing.T) {
	blocks := vec.New(8)
	div := MustWorkDiv(blocks, vec.New(2), vec.New(1))

	// Mutating the input or an accessor result must not affect the WorkDiv.
	blocks[0] = 99
	div.BlocksPerGrid()[0] = 77

	if got := div.BlocksPerGrid(); !got.Equal(vec.New(8)) {
		t.Errorf("BlocksPerGrid() = %v after caller mutation, want [8]", got)
	}
}

func TestMustWorkDivPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustWorkDiv did not panic on invalid extent")
		}
	}()
	MustWorkDiv(vec.New(0), vec.New(1), vec.New(1))
}
