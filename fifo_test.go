package trinet_test

import (
	"testing"

	"github.com/trinets/trinet"
)

func TestFIFO_Order(t *testing.T) {
	f := trinet.NewFIFO[int]()
	f.Push(1, 2)
	f.Push(3)
	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", f.Len())
	}
	for _, want := range []int{1, 2, 3} {
		got, ok := f.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %d, %v, want %d", got, ok, want)
		}
	}
	if _, ok := f.Pop(); ok {
		t.Error("Pop() on an empty queue should report false")
	}
}
