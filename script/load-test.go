package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
)

// Scenario is one kind of record the load test posts
type Scenario struct {
	Name     string
	Kind     string // income or expense
	Category string
	Cents    int64
}

// Options configure a load test run
type Options struct {
	BaseURL     string
	Concurrency int
	Requests    int
	Users       int
	Delay       time.Duration
}

// Stats aggregates the outcome of a run
type Stats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	BalanceMismatches  int
	lock               sync.Mutex
}

type account struct {
	email string
	token string

	mu       sync.Mutex
	expected int64 // cents of successful posts
}

type result struct {
	success      bool
	responseTime time.Duration
	err          error
}

var scenarios = []Scenario{
	{"Salary", "income", "Salary", 500000},
	{"Bonus", "income", "Bonus", 25050},
	{"Rent", "expense", "Rent", 150000},
	{"Food", "expense", "Food", 1299},
	{"Transport", "expense", "Transport", 450},
}

func main() {
	opts := Options{}
	flag.StringVar(&opts.BaseURL, "url", "http://localhost:5000", "Base URL for the API")
	flag.IntVar(&opts.Concurrency, "c", 5, "Number of concurrent goroutines")
	flag.IntVar(&opts.Requests, "n", 100, "Total number of records to post")
	flag.IntVar(&opts.Users, "u", 3, "Number of accounts to register and spread load across")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()
	opts.Delay = time.Duration(*delayMs) * time.Millisecond

	stats, err := run(context.Background(), opts, &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResults(os.Stdout, stats)
	if stats.BalanceMismatches > 0 {
		os.Exit(2)
	}
}

// run registers accounts, posts records concurrently and verifies every
// account's dashboard balance against what was accepted
func run(ctx context.Context, opts Options, client *http.Client) (*Stats, error) {
	if opts.Concurrency <= 0 || opts.Requests <= 0 || opts.Users <= 0 {
		return nil, errors.New("concurrency, requests and users must be positive")
	}

	accounts := make([]*account, 0, opts.Users)
	for range opts.Users {
		acc, err := register(ctx, client, opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("register account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	stats := &Stats{
		TotalRequests: opts.Requests,
		ErrorCounts:   make(map[string]int),
		ScenarioStats: make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, opts.Requests),
	}

	jobs := make(chan int, opts.Requests)
	for i := range opts.Requests {
		jobs <- i
	}
	close(jobs)

	results := make(chan result, opts.Requests)
	start := time.Now()

	var wg sync.WaitGroup
	for range opts.Concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, client, opts, accounts, jobs, results, stats)
		}()
	}
	wg.Wait()
	close(results)
	stats.TotalTime = time.Since(start)

	for r := range results {
		stats.ResponseTimes = append(stats.ResponseTimes, r.responseTime)
		if r.success {
			stats.SuccessfulRequests++
			continue
		}
		stats.FailedRequests++
		msg := "unknown"
		if r.err != nil {
			msg = r.err.Error()
		}
		stats.ErrorCounts[msg]++
	}

	for _, acc := range accounts {
		balance, err := fetchBalance(ctx, client, opts.BaseURL, acc.token)
		if err != nil {
			return nil, fmt.Errorf("fetch balance for %s: %w", acc.email, err)
		}
		if int64(balance*100+0.5*sign(balance)) != acc.expected {
			stats.BalanceMismatches++
		}
	}

	return stats, nil
}

func worker(ctx context.Context, client *http.Client, opts Options, accounts []*account, jobs <-chan int, results chan<- result, stats *Stats) {
	for range jobs {
		if opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}

		acc := accounts[rand.Intn(len(accounts))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.lock.Lock()
		stats.ScenarioStats[scenario.Name]++
		stats.lock.Unlock()

		body := map[string]any{
			"category": scenario.Category,
			"amount":   fmt.Sprintf("%d.%02d", scenario.Cents/100, scenario.Cents%100),
		}

		began := time.Now()
		status, err := postJSON(ctx, client, opts.BaseURL+"/api/transactions/"+scenario.Kind, acc.token, body, nil)
		r := result{responseTime: time.Since(began), err: err}
		if err == nil && status == http.StatusOK {
			r.success = true
			acc.mu.Lock()
			if scenario.Kind == "income" {
				acc.expected += scenario.Cents
			} else {
				acc.expected -= scenario.Cents
			}
			acc.mu.Unlock()
		} else if err == nil {
			r.err = fmt.Errorf("HTTP status code %d", status)
		}
		results <- r
	}
}

func register(ctx context.Context, client *http.Client, baseURL string) (*account, error) {
	email := fmt.Sprintf("load-%s@example.com", ksuid.New().String())
	var resp struct {
		Token string `json:"token"`
	}
	status, err := postJSON(ctx, client, baseURL+"/api/auth/register", "", map[string]any{
		"fullName": "Load Test",
		"email":    email,
		"password": "load-test-password",
	}, &resp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated || resp.Token == "" {
		return nil, fmt.Errorf("HTTP status code %d", status)
	}
	return &account{email: email, token: resp.Token}, nil
}

func fetchBalance(ctx context.Context, client *http.Client, baseURL, token string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/dashboard", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var body struct {
		Balance float64 `json:"balance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Balance, nil
}

func postJSON(ctx context.Context, client *http.Client, url, token string, payload, out any) (int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// percentile expects sorted input
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(w io.Writer, stats *Stats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	tps := 0.0
	if stats.TotalTime > 0 {
		tps = float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	}

	fmt.Fprintln(w, "================= TEST RESULTS =================")
	fmt.Fprintf(w, "Total Requests:      %d\n", stats.TotalRequests)
	fmt.Fprintf(w, "Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Fprintf(w, "Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Fprintf(w, "Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Fprintf(w, "TPS:                 %.2f\n", tps)

	fmt.Fprintln(w, "----------------- RESPONSE TIMES -----------------")
	fmt.Fprintf(w, "Average Response:    %v\n", avg)
	fmt.Fprintf(w, "P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Fprintf(w, "P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Fprintf(w, "P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Fprintln(w, "----------------- SCENARIO DISTRIBUTION -----------------")
	for _, s := range scenarios {
		fmt.Fprintf(w, "%-15s: %d requests\n", s.Name, stats.ScenarioStats[s.Name])
	}

	if stats.FailedRequests > 0 {
		fmt.Fprintln(w, "----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Fprintf(w, "%-40s: %d\n", msg, count)
		}
	}

	fmt.Fprintln(w, "================= BALANCE CHECK =================")
	if stats.BalanceMismatches == 0 {
		fmt.Fprintln(w, "All account balances match the accepted records")
	} else {
		fmt.Fprintf(w, "%d account balances do not match the accepted records\n", stats.BalanceMismatches)
	}
}
