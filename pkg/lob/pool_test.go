package lob

import "testing"

func TestOrderPoolCap(t *testing.T) {
	p := newOrderPool(2)

	a := p.acquire()
	b := p.acquire()
	if a == nil || b == nil {
		t.Fatal("Acquire failed under the cap")
	}
	if p.acquire() != nil {
		t.Error("Acquire succeeded at the cap")
	}

	p.release(a)
	if p.acquire() == nil {
		t.Error("Acquire failed after a release freed capacity")
	}
}

func TestOrderPoolUnbounded(t *testing.T) {
	p := newOrderPool(0)
	for i := 0; i < 10_000; i++ {
		if p.acquire() == nil {
			t.Fatalf("Unbounded pool refused acquire %d", i)
		}
	}
}

func TestOrderPoolReleaseZeroes(t *testing.T) {
	p := newOrderPool(0)

	o := p.acquire()
	o.ID = 7
	o.Side = Sell
	o.Price = 100.50
	o.Quantity = 42
	o.Timestamp = 99
	o.next = &Order{}
	o.prev = &Order{}
	o.level = &level{}
	o.active = true
	p.release(o)

	got := p.acquire()
	if *got != (Order{}) {
		t.Errorf("Recycled node not zeroed: %+v", got)
	}
}
