package lob

import "testing"

func TestBidSideOrdersDescending(t *testing.T) {
	bs := newBookSide(Buy)
	for _, p := range []float64{100.25, 100.75, 100.50} {
		bs.getOrCreate(p)
	}

	if best := bs.best(); best == nil || best.price != 100.75 {
		t.Fatalf("Expected best bid 100.75, got %+v", best)
	}

	var prices []float64
	bs.scan(func(l *level) bool {
		prices = append(prices, l.price)
		return true
	})
	want := []float64{100.75, 100.50, 100.25}
	for i := range want {
		if prices[i] != want[i] {
			t.Errorf("Bid scan order wrong at %d: got %v want %v", i, prices, want)
			break
		}
	}
}

func TestAskSideOrdersAscending(t *testing.T) {
	as := newBookSide(Sell)
	for _, p := range []float64{100.75, 100.25, 100.50} {
		as.getOrCreate(p)
	}

	if best := as.best(); best == nil || best.price != 100.25 {
		t.Fatalf("Expected best ask 100.25, got %+v", best)
	}

	var prices []float64
	as.scan(func(l *level) bool {
		prices = append(prices, l.price)
		return true
	})
	want := []float64{100.25, 100.50, 100.75}
	for i := range want {
		if prices[i] != want[i] {
			t.Errorf("Ask scan order wrong at %d: got %v want %v", i, prices, want)
			break
		}
	}
}

func TestSideGetOrCreateReuses(t *testing.T) {
	bs := newBookSide(Buy)
	first := bs.getOrCreate(100.50)
	second := bs.getOrCreate(100.50)
	if first != second {
		t.Error("getOrCreate allocated a second level for the same price")
	}
	if bs.len() != 1 {
		t.Errorf("Expected one level, got %d", bs.len())
	}
	if got := bs.get(100.50); got != first {
		t.Error("get did not find the created level")
	}
	if bs.get(101.00) != nil {
		t.Error("get invented a level")
	}
}

func TestSideDrop(t *testing.T) {
	bs := newBookSide(Sell)
	l := bs.getOrCreate(100.50)
	bs.getOrCreate(100.75)

	bs.drop(l)
	if bs.len() != 1 {
		t.Fatalf("Expected one level after drop, got %d", bs.len())
	}
	if bs.get(100.50) != nil {
		t.Error("Dropped level still reachable")
	}
	if best := bs.best(); best == nil || best.price != 100.75 {
		t.Errorf("Expected best 100.75 after drop, got %+v", best)
	}
}

func TestSideBestEmpty(t *testing.T) {
	if newBookSide(Buy).best() != nil {
		t.Error("Empty side returned a best level")
	}
}

func TestSideClear(t *testing.T) {
	bs := newBookSide(Buy)
	for _, p := range []float64{100.25, 100.50, 100.75} {
		bs.getOrCreate(p)
	}

	bs.clear()
	if bs.len() != 0 {
		t.Fatalf("Expected empty side after clear, got %d levels", bs.len())
	}
	if bs.best() != nil {
		t.Error("Cleared side returned a best level")
	}

	// The side keeps its sort direction afterwards.
	bs.getOrCreate(100.25)
	bs.getOrCreate(100.75)
	if best := bs.best(); best == nil || best.price != 100.75 {
		t.Errorf("Expected best bid 100.75 after refill, got %+v", best)
	}
}
