package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/luxfi/log"
	metric "github.com/luxfi/metric"

	"github.com/luxfi/lob/pkg/lob"
	"github.com/luxfi/lob/pkg/metrics"
)

type Config struct {
	Orders      int
	Seed        int64
	Depth       int
	LogLevel    string
	MetricsAddr string
}

// benchCounters mirror the throughput numbers into luxfi/metric so an
// embedding host can scrape them; the printed report uses local tallies.
type benchCounters struct {
	submitted metric.Counter
	cancelled metric.Counter
	trades    metric.Counter
	volume    metric.Counter
}

func newBenchCounters() *benchCounters {
	return &benchCounters{
		submitted: metric.NewCounter("lob_bench_orders_submitted"),
		cancelled: metric.NewCounter("lob_bench_orders_cancelled"),
		trades:    metric.NewCounter("lob_bench_trades"),
		volume:    metric.NewCounter("lob_bench_volume"),
	}
}

func main() {
	config := &Config{}

	flag.IntVar(&config.Orders, "orders", 10000, "Number of orders to submit")
	flag.Int64Var(&config.Seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flag.IntVar(&config.Depth, "depth", 5, "Levels per side in the final render")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&config.MetricsAddr, "metrics-addr", "", "Prometheus listen address (empty disables)")
	flag.Parse()

	level, _ := log.ToLevel(config.LogLevel)
	logger := log.NewTestLogger(level)

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	counters := newBenchCounters()

	var tradeCount, tradedVolume uint64
	sink := lob.TradeSinkFunc(func(t lob.Trade) {
		tradeCount++
		tradedVolume += t.Quantity
		counters.trades.Inc()
		counters.volume.Add(float64(t.Quantity))
	})

	bookMetrics := metrics.NewBookMetrics("BENCH")
	book := lob.New("BENCH", &lob.Config{
		Sink: lob.MultiSink(sink, bookMetrics.Sink()),
	})
	if config.MetricsAddr != "" {
		bookMetrics.StartServer(config.MetricsAddr)
	}

	logger.Info("Starting stress run", "orders", config.Orders, "seed", seed)

	var cancels int
	start := time.Now()
	for i := 1; i <= config.Orders; i++ {
		o := randomOrder(rng, uint64(i))

		if _, err := book.Add(o); err != nil {
			bookMetrics.RecordReject()
			logger.Warn("Order rejected", "id", i, "error", err)
			continue
		}
		bookMetrics.RecordAdd()
		counters.submitted.Inc()

		if i%100 == 0 {
			// Most of these are long gone by now; only count the live hits.
			err := book.Cancel(uint64(i - 50))
			switch {
			case err == nil:
				cancels++
				bookMetrics.RecordCancel()
				counters.cancelled.Inc()
			case errors.Is(err, lob.ErrOrderNotFound):
			default:
				logger.Warn("Cancel failed", "id", i-50, "error", err)
			}
		}
	}
	elapsed := time.Since(start)
	bookMetrics.Observe(book)

	fmt.Println("\nStress run completed:")
	fmt.Printf("Total orders: %d\n", config.Orders)
	fmt.Printf("Time taken: %d ms\n", elapsed.Milliseconds())
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Printf("Orders per second: %.0f\n", float64(config.Orders)/secs)
	}
	fmt.Printf("Trades: %d (volume %d)\n", tradeCount, tradedVolume)
	fmt.Printf("Cancels: %d\n", cancels)
	fmt.Printf("Open orders: %d, book version: %d\n", book.Len(), book.Version())

	book.Render(os.Stdout, config.Depth)

	if config.MetricsAddr != "" {
		logger.Info("Holding for scrape, interrupt to exit", "addr", config.MetricsAddr)
		select {}
	}
}

// randomOrder builds one stress order, stamped off the wall clock.
// Prices land on cents inside a ten-dollar band so levels collide and
// the matcher stays busy.
func randomOrder(rng *rand.Rand, id uint64) lob.Order {
	side := lob.Sell
	if rng.Intn(2) == 0 {
		side = lob.Buy
	}
	return lob.Order{
		ID:        id,
		Side:      side,
		Price:     100.0 + float64(rng.Intn(1000))/100.0,
		Quantity:  uint64(rng.Intn(1000) + 1),
		Timestamp: uint64(time.Now().UnixNano()),
	}
}
