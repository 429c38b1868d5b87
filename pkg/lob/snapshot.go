package lob

// SnapshotLevel is one aggregated price level in a snapshot.
type SnapshotLevel struct {
	Price         float64
	TotalQuantity uint64
	OrderCount    int
}

// BookSnapshot is a depth-limited aggregate view of both sides, best level
// first. It carries no order identities.
type BookSnapshot struct {
	Bids []SnapshotLevel
	Asks []SnapshotLevel
}

// Snapshot copies the top depth levels of each side. depth <= 0 means
// every level.
func (b *Book) Snapshot(depth int) BookSnapshot {
	return BookSnapshot{
		Bids: sideLevels(b.bids, depth),
		Asks: sideLevels(b.asks, depth),
	}
}

func sideLevels(bs *bookSide, depth int) []SnapshotLevel {
	n := bs.len()
	if depth > 0 && depth < n {
		n = depth
	}
	out := make([]SnapshotLevel, 0, n)
	bs.scan(func(l *level) bool {
		out = append(out, SnapshotLevel{
			Price:         l.price,
			TotalQuantity: l.totalQuantity,
			OrderCount:    l.orderCount,
		})
		return depth <= 0 || len(out) < depth
	})
	return out
}
