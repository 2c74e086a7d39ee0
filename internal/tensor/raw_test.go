package tensor

import "testing"

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != Float64 {
		t.Errorf("dtype = %s, want float64", raw.DType())
	}
	if raw.ByteSize() != 48 {
		t.Errorf("byte size = %d, want 48", raw.ByteSize())
	}
	for _, v := range raw.AsFloat64() {
		if v != 0 {
			t.Fatal("new tensor not zero-initialized")
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float64); err == nil {
		t.Error("NewRaw with zero dimension: want error")
	}
}

func TestFromSlice(t *testing.T) {
	raw, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	data := raw.AsFloat64()
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if data[i] != want {
			t.Errorf("data[%d] = %v, want %v", i, data[i], want)
		}
	}

	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 3}); err == nil {
		t.Error("FromSlice with wrong element count: want error")
	}
}

func TestFromScalar(t *testing.T) {
	raw := FromScalar(int64(42))
	if len(raw.Shape()) != 0 {
		t.Errorf("scalar rank = %d, want 0", len(raw.Shape()))
	}
	if raw.NumElements() != 1 {
		t.Errorf("scalar elements = %d, want 1", raw.NumElements())
	}
	if raw.AsInt64()[0] != 42 {
		t.Errorf("scalar value = %d, want 42", raw.AsInt64()[0])
	}
}

func TestCloneSharesBuffer(t *testing.T) {
	raw, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	clone := raw.Clone()

	if raw.IsUnique() {
		t.Error("buffer should not be unique after Clone")
	}
	raw.AsFloat64()[0] = 99
	if clone.AsFloat64()[0] != 99 {
		t.Error("clone does not share the buffer")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("buffer should be unique again after Release")
	}
}

func TestReshapeView(t *testing.T) {
	raw, _ := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	view := raw.Reshape(Shape{3, 2})

	if !view.Shape().Equal(Shape{3, 2}) {
		t.Errorf("view shape = %v, want [3 2]", view.Shape())
	}
	// A view shares storage.
	raw.AsInt64()[0] = 7
	if view.AsInt64()[0] != 7 {
		t.Error("reshape did not return a view")
	}
}

func TestForceNonUnique(t *testing.T) {
	raw, _ := FromSlice([]float64{1}, Shape{1})
	release := raw.ForceNonUnique()
	if raw.IsUnique() {
		t.Error("tensor should not be unique while fenced")
	}
	release()
	if !raw.IsUnique() {
		t.Error("tensor should be unique after the fence is released")
	}
}

func TestRawEqual(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	c, _ := FromSlice([]float64{1, 2, 4}, Shape{3})
	d, _ := FromSlice([]float64{1, 2, 3}, Shape{3, 1})

	if !a.Equal(b) {
		t.Error("equal tensors reported unequal")
	}
	if a.Equal(c) {
		t.Error("different values reported equal")
	}
	if a.Equal(d) {
		t.Error("different shapes reported equal")
	}
}
