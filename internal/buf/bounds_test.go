package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if got, ok := MulOverflowSafe(1000, 16); !ok || got != 16000 {
		t.Fatalf("MulOverflowSafe(1000,16)=%d,%v want 16000,true", got, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2, 3); ok {
		t.Fatalf("expected overflow for MaxInt/2 * 3")
	}
	if got, ok := MulOverflowSafe(0, math.MaxInt); !ok || got != 0 {
		t.Fatalf("zero multiplication should be safe")
	}
}

func TestCheckListBounds(t *testing.T) {
	// 32-byte header + 4 records of 16 bytes.
	end, err := CheckListBounds(96, 32, 4, 16)
	if err != nil || end != 96 {
		t.Fatalf("CheckListBounds = %d, %v; want 96, nil", end, err)
	}
	if _, err := CheckListBounds(95, 32, 4, 16); err == nil {
		t.Fatalf("expected out-of-bounds error for short buffer")
	}
	if _, err := CheckListBounds(96, 32, -1, 16); err == nil {
		t.Fatalf("expected error for negative count")
	}
	if _, err := CheckListBounds(96, 32, math.MaxInt/8, 16); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
}
