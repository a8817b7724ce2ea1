package vec

import "testing"

func TestSize(t *testing.T) {
	tests := []struct {
		vec  Vec
		size int
	}{
		{New(8), 8},
		{New(2, 4), 8},
		{New(3, 5, 7), 105},
		{New(1, 1), 1},
		{Vec{}, 1},
	}

	for _, tt := range tests {
		if got := tt.vec.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.vec, got, tt.size)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		vec     Vec
		wantErr bool
	}{
		{New(1), false},
		{New(2, 4), false},
		{New(0), true},
		{New(3, 0, 2), true},
		{New(-1), true},
		{Vec{}, true},
	}

	for _, tt := range tests {
		err := tt.vec.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%v.Validate() error = %v, wantErr %v", tt.vec, err, tt.wantErr)
		}
	}
}

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	extent := New(2, 4, 3)
	seen := make(map[int]bool)
	Coords(extent, func(coord Vec) {
		linear := Flatten(coord, extent)
		if seen[linear] {
			t.Fatalf("linear index %d produced twice", linear)
		}
		seen[linear] = true
		if got := Unflatten(linear, extent); !got.Equal(coord) {
			t.Errorf("Unflatten(Flatten(%v)) = %v", coord, got)
		}
	})
	if len(seen) != extent.Size() {
		t.Errorf("visited %d coordinates, want %d", len(seen), extent.Size())
	}
}

func TestStrides(t *testing.T) {
	extent := New(2, 4, 3)
	strides := extent.Strides()
	want := []int{12, 3, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("Strides()[%d] = %d, want %d", i, strides[i], want[i])
		}
	}
}

func TestMul(t *testing.T) {
	got := New(2, 4).Mul(New(3, 5))
	if !got.Equal(New(6, 20)) {
		t.Errorf("Mul = %v, want [6 20]", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	v := New(2, 4)
	c := v.Clone()
	c[0] = 99
	if v[0] != 2 {
		t.Errorf("Clone shares storage with original")
	}
}
