package memory

import "testing"

type thing struct{ id int }

func TestRetireRingBasic(t *testing.T) {
	r := NewRetireRing(4)
	a := &thing{id: 1}
	b := &thing{id: 2}

	if !r.Push(a) || !r.Push(b) {
		t.Fatal("push failed unexpectedly")
	}
	if r.Len() != 2 {
		t.Errorf("expected len 2, got %d", r.Len())
	}
	if r.Pop() != a {
		t.Error("expected first pop to be a")
	}
	if r.Pop() != b {
		t.Error("expected second pop to be b")
	}
	if r.Pop() != nil {
		t.Error("expected empty ring to return nil")
	}
}

func TestRetireRingFull(t *testing.T) {
	r := NewRetireRing(2)
	if !r.Push(&thing{}) || !r.Push(&thing{}) {
		t.Fatal("push failed unexpectedly")
	}
	if r.Push(&thing{}) {
		t.Error("push into a full ring should fail")
	}
	_ = r.Pop()
	if !r.Push(&thing{}) {
		t.Error("push after pop should succeed")
	}
}

func TestRetireRingBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non power-of-two size")
		}
	}()
	NewRetireRing(3)
}

func TestAdvanceEpochAndReclaim(t *testing.T) {
	ring := NewRetireRing(8)
	pool := NewPool(func() *thing { return &thing{} })

	ring.Push(&thing{id: 1})
	ring.Push(&thing{id: 2})

	// No active readers: everything reclaims.
	if n := AdvanceEpochAndReclaim(ring, pool); n != 2 {
		t.Fatalf("expected 2 reclaimed, got %d", n)
	}
	if ring.Len() != 0 {
		t.Errorf("ring should be empty, len=%d", ring.Len())
	}

	// An active reader blocks the pass.
	reader := NewReaderEpoch()
	reader.Enter()
	ring.Push(&thing{id: 3})
	if n := AdvanceEpochAndReclaim(ring, pool, reader); n != 0 {
		t.Fatalf("expected 0 reclaimed under active reader, got %d", n)
	}
	if ring.Len() != 1 {
		t.Errorf("retired object must stay queued, len=%d", ring.Len())
	}

	reader.Exit()
	if n := AdvanceEpochAndReclaim(ring, pool, reader); n != 1 {
		t.Fatalf("expected 1 reclaimed after reader exit, got %d", n)
	}
}
