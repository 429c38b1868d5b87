package lob

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

const (
	renderHeader = "\n=== ORDER BOOK ===\n" +
		"Bids (Buy)          | Asks (Sell)\n" +
		"Price    | Quantity | Price    | Quantity\n" +
		"---------|----------|----------|----------\n"
	renderBlankCell = "         |          "
)

// Render writes a two-column view of the book, best levels first, followed
// by the best bid, best ask and spread. Empty sides render as "-" in the
// footer. depth <= 0 prints every level.
func (b *Book) Render(w io.Writer, depth int) {
	snap := b.Snapshot(depth)

	fmt.Fprint(w, renderHeader)
	rows := len(snap.Bids)
	if len(snap.Asks) > rows {
		rows = len(snap.Asks)
	}
	for i := 0; i < rows; i++ {
		if i < len(snap.Bids) {
			fmt.Fprintf(w, "%8.2f | %8d", snap.Bids[i].Price, snap.Bids[i].TotalQuantity)
		} else {
			fmt.Fprint(w, renderBlankCell)
		}
		fmt.Fprint(w, " | ")
		if i < len(snap.Asks) {
			fmt.Fprintf(w, "%8.2f | %8d", snap.Asks[i].Price, snap.Asks[i].TotalQuantity)
		} else {
			fmt.Fprint(w, renderBlankCell)
		}
		fmt.Fprint(w, "\n")
	}

	bestBid := "-"
	if b.bids.len() > 0 {
		bestBid = formatPrice(b.BestBid())
	}
	bestAsk := "-"
	spread := "-"
	if b.asks.len() > 0 {
		bestAsk = formatPrice(b.BestAsk())
		// Subtract in decimal: a float difference of two clean prices
		// carries binary noise that would print as a 17-digit tail.
		spread = decimal.NewFromFloat(b.BestAsk()).
			Sub(decimal.NewFromFloat(b.BestBid())).String()
	}
	fmt.Fprintf(w, "\nBest Bid: %s\nBest Ask: %s\nSpread: %s\n", bestBid, bestAsk, spread)
}

// formatPrice renders a price the way the MATCH stream prints it: decimal
// with trailing zeros trimmed, so 100.60 comes out as 100.6.
func formatPrice(p float64) string {
	return decimal.NewFromFloat(p).String()
}
