package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/luxfi/log"
	"github.com/shopspring/decimal"

	"github.com/luxfi/lob/pkg/lob"
)

type Config struct {
	LogLevel string
	Depth    int
}

func main() {
	config := &Config{}

	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.IntVar(&config.Depth, "depth", 10, "Levels per side to render")
	flag.Parse()

	level, _ := log.ToLevel(config.LogLevel)
	logger := log.NewTestLogger(level)

	fmt.Println("=== Order Book Demo ===")
	if err := runScenario(os.Stdout, config.Depth); err != nil {
		logger.Crit("Scenario failed", "error", err)
		os.Exit(1)
	}
}

// runScenario walks one book through the full operation surface: resting
// adds, a crossing add, a snapshot, a cancel, then the three amend shapes
// (quantity only, price move that rests, price move that trades).
func runScenario(w io.Writer, depth int) error {
	book := lob.New("DEMO", &lob.Config{Sink: lob.NewStreamSink(w)})

	seed := []lob.Order{
		{ID: 1, Side: lob.Buy, Price: 100.50, Quantity: 1000, Timestamp: 1234567890},
		{ID: 2, Side: lob.Buy, Price: 100.25, Quantity: 500, Timestamp: 1234567891},
		{ID: 3, Side: lob.Sell, Price: 100.75, Quantity: 750, Timestamp: 1234567892},
		{ID: 4, Side: lob.Sell, Price: 100.60, Quantity: 300, Timestamp: 1234567893},
	}
	for _, o := range seed {
		if _, err := book.Add(o); err != nil {
			return fmt.Errorf("seed order %d: %w", o.ID, err)
		}
	}

	fmt.Fprintln(w, "Initial book:")
	book.Render(w, depth)

	// Crosses the 100.60 ask; the resting order is earlier, so the trade
	// prints at 100.6.
	if _, err := book.Add(lob.Order{ID: 5, Side: lob.Buy, Price: 100.80, Quantity: 200, Timestamp: 1234567894}); err != nil {
		return fmt.Errorf("crossing order: %w", err)
	}

	fmt.Fprintln(w, "\nAfter matching:")
	book.Render(w, depth)

	snap := book.Snapshot(3)
	fmt.Fprintln(w, "\nSnapshot (top 3 levels):")
	fmt.Fprintln(w, "Bids:")
	for _, l := range snap.Bids {
		fmt.Fprintf(w, "  %s : %d\n", decimal.NewFromFloat(l.Price), l.TotalQuantity)
	}
	fmt.Fprintln(w, "Asks:")
	for _, l := range snap.Asks {
		fmt.Fprintf(w, "  %s : %d\n", decimal.NewFromFloat(l.Price), l.TotalQuantity)
	}

	if err := book.Cancel(2); err != nil {
		return fmt.Errorf("cancel order 2: %w", err)
	}
	fmt.Fprintln(w, "\nAfter canceling order 2:")
	book.Render(w, depth)

	// Quantity-only amend keeps the order's spot in the queue.
	if _, err := book.Amend(4, 100.60, 150); err != nil {
		return fmt.Errorf("amend order 4: %w", err)
	}
	fmt.Fprintln(w, "\nAfter amending order 4 to quantity 150:")
	book.Render(w, depth)

	// Price move re-queues order 3 at the new level's tail.
	if _, err := book.Amend(3, 100.55, 750); err != nil {
		return fmt.Errorf("amend order 3: %w", err)
	}
	fmt.Fprintln(w, "\nAfter moving order 3 to 100.55:")
	book.Render(w, depth)

	// Moving below the best bid crosses and trades on the spot.
	if _, err := book.Amend(3, 100.45, 750); err != nil {
		return fmt.Errorf("amend order 3 across: %w", err)
	}
	fmt.Fprintln(w, "\nAfter moving order 3 through the bid:")
	book.Render(w, depth)

	fmt.Fprintf(w, "\nOpen orders: %d, book version: %d\n", book.Len(), book.Version())
	return nil
}
