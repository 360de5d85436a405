package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"
)

// WithdrawalPayload is the body of POST /api/withdraw
type WithdrawalPayload struct {
	Amount        string `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	AccountNumber string `json:"accountNumber"`
}

// ProcessPayload is the body of PUT /api/withdraw/:id/process
type ProcessPayload struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// RequestResponse is the part of a request response this check reads
type RequestResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount string `json:"amount"`
}

// WalletResponse is the part of GET /api/wallet this check reads
type WalletResponse struct {
	Balance string `json:"balance"`
}

// TestResult contains metrics for a single admin action
type TestResult struct {
	RequestID    string
	Decision     string
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalActions      int
	TotalTime         time.Duration
	MinResponseTime   time.Duration
	MaxResponseTime   time.Duration
	TotalResponseTime time.Duration
	ResponseTimes     []time.Duration
	StatusCounts      map[int]int
	ErrorCounts       map[string]int
	WinnersByRequest  map[string]int
	FinalStatus       map[string]string
	Lock              sync.Mutex
}

type client struct {
	baseURL    string
	http       *http.Client
	userToken  string
	adminToken string
}

func main() {
	// Define command line flags
	requests := flag.Int("n", 20, "Number of withdrawal requests to create")
	racers := flag.Int("c", 5, "Concurrent admin actions fired at each request")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	userToken := flag.String("user-token", os.Getenv("AW_USER_TOKEN"), "Bearer token of the requesting player")
	adminToken := flag.String("admin-token", os.Getenv("AW_ADMIN_TOKEN"), "Bearer token of the reviewing admin")
	amount := flag.String("amount", "1.00", "Amount of each withdrawal")
	delayMs := flag.Int("delay", 100, "Delay between submissions in milliseconds")
	flag.Parse()

	if *userToken == "" || *adminToken == "" {
		fmt.Println("Both -user-token and -admin-token are required (see cmd/devtoken)")
		os.Exit(2)
	}

	api := &client{
		baseURL:    *baseURL,
		http:       &http.Client{Timeout: 10 * time.Second},
		userToken:  *userToken,
		adminToken: *adminToken,
	}

	fmt.Printf("Creating %d withdrawals of %s, then racing %d admin actions on each\n", *requests, *amount, *racers)

	before, err := api.balance()
	if err != nil {
		fmt.Printf("Failed to read starting balance: %v\n", err)
		os.Exit(1)
	}

	var ids []string
	for i := 0; i < *requests; i++ {
		if *delayMs > 0 && i > 0 {
			time.Sleep(time.Duration(*delayMs) * time.Millisecond)
		}
		created, err := api.submitWithdrawal(WithdrawalPayload{
			Amount:        *amount,
			PaymentMethod: "bkash",
			AccountNumber: fmt.Sprintf("0171%07d", rand.IntN(10000000)),
		})
		if err != nil {
			fmt.Printf("Submission %d failed: %v\n", i, err)
			continue
		}
		ids = append(ids, created.ID)
	}

	// Initialize test statistics
	stats := &TestStats{
		TotalActions:     len(ids) * *racers,
		MinResponseTime:  time.Hour, // Start with a high value that will be replaced
		StatusCounts:     make(map[int]int),
		ErrorCounts:      make(map[string]int),
		WinnersByRequest: make(map[string]int),
		FinalStatus:      make(map[string]string),
	}

	// Channel to collect results
	results := make(chan TestResult, stats.TotalActions)

	// Start the timer
	startTime := time.Now()
	fmt.Println("Test running...")

	var wg sync.WaitGroup
	for _, id := range ids {
		// All racers for one request start together
		start := make(chan struct{})
		for i := 0; i < *racers; i++ {
			decision := "completed"
			if rand.IntN(2) == 0 {
				decision = "rejected"
			}
			wg.Add(1)
			go func(id, decision string) {
				defer wg.Done()
				<-start
				results <- api.process(id, decision)
			}(id, decision)
		}
		close(start)
	}

	wg.Wait()
	close(results)
	stats.TotalTime = time.Since(startTime)

	for result := range results {
		record(stats, result)
	}

	after, err := api.balance()
	if err != nil {
		fmt.Printf("Failed to read final balance: %v\n", err)
		os.Exit(1)
	}

	printResults(stats, before, after)
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.StatusCounts[result.StatusCode]++
	if result.Error != nil {
		stats.ErrorCounts[result.Error.Error()]++
	}
	if result.StatusCode == http.StatusOK {
		stats.WinnersByRequest[result.RequestID]++
		stats.FinalStatus[result.RequestID] = result.Decision
	}

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	stats.TotalResponseTime += result.ResponseTime
	stats.MinResponseTime = min(stats.MinResponseTime, result.ResponseTime)
	stats.MaxResponseTime = max(stats.MaxResponseTime, result.ResponseTime)
}

func (c *client) submitWithdrawal(payload WithdrawalPayload) (*RequestResponse, error) {
	var created RequestResponse
	status, err := c.do(http.MethodPost, "/api/withdraw", c.userToken, payload, &created)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("HTTP status code %d", status)
	}
	return &created, nil
}

func (c *client) process(id, decision string) TestResult {
	startTime := time.Now()
	status, err := c.do(http.MethodPut, "/api/withdraw/"+id+"/process", c.adminToken,
		ProcessPayload{Status: decision, Notes: "race check"}, nil)

	result := TestResult{
		RequestID:    id,
		Decision:     decision,
		ResponseTime: time.Since(startTime),
		StatusCode:   status,
		Error:        err,
	}
	if err == nil && status != http.StatusOK && status != http.StatusConflict {
		result.Error = fmt.Errorf("HTTP status code %d", status)
	}
	return result
}

func (c *client) balance() (string, error) {
	var wallet WalletResponse
	status, err := c.do(http.MethodGet, "/api/wallet", c.userToken, nil, &wallet)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("HTTP status code %d", status)
	}
	return wallet.Balance, nil
}

func (c *client) do(method, path, token string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func printResults(stats *TestStats, before, after string) {
	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := slices.Clone(stats.ResponseTimes)
		slices.Sort(sortedTimes)
		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	// Print results
	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Actions:       %d\n", stats.TotalActions)
	fmt.Printf("Requests Raced:      %d\n", len(stats.WinnersByRequest))
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Balance Before:      %s\n", before)
	fmt.Printf("Balance After:       %s\n", after)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- STATUS DISTRIBUTION -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("HTTP %d: %d (%.1f%%)\n", code, count, float64(count)/float64(stats.TotalActions)*100)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	// Exactly one action per request may win; everything else must be a 409
	violations := 0
	for id, winners := range stats.WinnersByRequest {
		if winners != 1 {
			violations++
			fmt.Printf("Request %s had %d winning transitions\n", id, winners)
		}
	}

	completed, rejected := 0, 0
	for _, status := range stats.FinalStatus {
		if status == "completed" {
			completed++
		} else {
			rejected++
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	fmt.Printf("Completed: %d, rejected and refunded: %d\n", completed, rejected)
	if violations == 0 && len(stats.ErrorCounts) == 0 {
		fmt.Println("✅ Every request transitioned exactly once")
	} else {
		fmt.Printf("❌ %d requests broke single-shot transitions, %d unexpected errors\n", violations, len(stats.ErrorCounts))
		os.Exit(1)
	}
	fmt.Println("================================================")
}
