package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// scenario is one kind of request the load test sends
type scenario struct {
	Name string
	// build returns the path and body of the request
	build func(r *rand.Rand, buyerID uint64) (string, any)
}

var scenarios = []scenario{
	{"Infer vision", inferScenario(1)},
	{"Infer language", inferScenario(2)},
	{"Infer audio", inferScenario(3)},
	{"Purchase prompt", purchaseScenario},
}

func inferScenario(modelID uint64) func(*rand.Rand, uint64) (string, any) {
	return func(_ *rand.Rand, buyerID uint64) (string, any) {
		return fmt.Sprintf("/api/models/%d/infer", modelID), map[string]any{
			"input":  map[string]any{"prompt": "load test"},
			"userId": buyerID,
		}
	}
}

func purchaseScenario(r *rand.Rand, buyerID uint64) (string, any) {
	hash := make([]byte, 32)
	r.Read(hash)
	return fmt.Sprintf("/api/prompts/%d/purchase", r.Intn(3)+1), map[string]any{
		"buyerId":         buyerID,
		"transactionHash": hexutil.Encode(hash),
	}
}

// result contains metrics for a single request
type result struct {
	Scenario     string
	ResponseTime time.Duration
	StatusCode   int
	Err          error
}

// stats aggregates the results of a run
type stats struct {
	mu            sync.Mutex
	responseTimes []time.Duration
	errorCounts   map[string]int
	scenarioStats map[string]int

	succeeded *atomic.Int64
	failed    *atomic.Int64
}

func newStats(total int) *stats {
	return &stats{
		responseTimes: make([]time.Duration, 0, total),
		errorCounts:   make(map[string]int),
		scenarioStats: make(map[string]int),
		succeeded:     atomic.NewInt64(0),
		failed:        atomic.NewInt64(0),
	}
}

func (s *stats) record(res result) {
	if res.Err == nil {
		s.succeeded.Inc()
	} else {
		s.failed.Inc()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.responseTimes = append(s.responseTimes, res.ResponseTime)
	s.scenarioStats[res.Scenario]++
	if res.Err != nil {
		s.errorCounts[res.Err.Error()]++
	}
}

func main() {
	app := &cli.App{
		Name:  "load-test",
		Usage: "Drive inference and purchase traffic against a running marketplace",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "c", Value: 5, Usage: "number of concurrent workers"},
			&cli.IntFlag{Name: "n", Value: 100, Usage: "total number of requests"},
			&cli.StringFlag{Name: "url", Value: "http://localhost:5000", Usage: "base URL of the API"},
			&cli.Uint64SliceFlag{Name: "u", Value: cli.NewUint64Slice(1, 2, 3), Usage: "user ids acting as buyers"},
			&cli.DurationFlag{Name: "delay", Value: 100 * time.Millisecond, Usage: "delay before each request"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cctx *cli.Context) error {
	total := cctx.Int("n")
	concurrency := cctx.Int("c")
	baseURL := cctx.String("url")
	delay := cctx.Duration("delay")
	buyers := cctx.Uint64Slice("u")
	if len(buyers) == 0 {
		buyers = []uint64{1}
	}
	if total <= 0 || concurrency <= 0 {
		return fmt.Errorf("-n and -c must be positive")
	}

	fmt.Printf("Load testing %s with %d requests on %d workers (buyers %v)\n", baseURL, total, concurrency, buyers)

	st := newStats(total)
	client := &http.Client{Timeout: 10 * time.Second}

	grp, ctx := errgroup.WithContext(cctx.Context)
	grp.SetLimit(concurrency)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			done := st.succeeded.Load() + st.failed.Load()
			fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n", done, total, float64(done)/float64(total)*100)
		}
	}()

	start := time.Now()
	for i := 0; i < total; i++ {
		seed := int64(i)
		grp.Go(func() error {
			r := rand.New(rand.NewSource(time.Now().UnixNano() + seed))
			if delay > 0 {
				time.Sleep(delay)
			}
			st.record(send(ctx, client, baseURL, scenarios[r.Intn(len(scenarios))], r, buyers[r.Intn(len(buyers))]))
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	printResults(st, total, time.Since(start))
	return nil
}

func send(ctx context.Context, client *http.Client, baseURL string, sc scenario, r *rand.Rand, buyerID uint64) result {
	res := result{Scenario: sc.Name}

	path, body := sc.build(r, buyerID)
	payload, err := json.Marshal(body)
	if err != nil {
		res.Err = err
		return res
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		res.Err = err
		return res
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := client.Do(req)
	res.ResponseTime = time.Since(started)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		res.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return res
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(st *stats, total int, elapsed time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()

	succeeded := st.succeeded.Load()
	failed := st.failed.Load()

	sorted := make([]time.Duration, len(st.responseTimes))
	copy(sorted, st.responseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", total)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", succeeded, float64(succeeded)/float64(total)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", failed, float64(failed)/float64(total)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(succeeded)/elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for _, sc := range scenarios {
		count := st.scenarioStats[sc.Name]
		fmt.Printf("%-16s: %d requests (%.1f%%)\n", sc.Name, count, float64(count)/float64(total)*100)
	}

	if failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range st.errorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
