package models

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewTransactionIDFormat(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewTransactionID(now)

	pattern := regexp.MustCompile(`^ESC_\d+_[0-9a-f]{10}$`)
	if !pattern.MatchString(id) {
		t.Fatalf("transaction id %q does not match ESC_<epoch-ms>_<suffix>", id)
	}

	parts := strings.Split(id, "_")
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		t.Fatalf("timestamp part %q is not an integer: %v", parts[1], err)
	}
	if ms != now.UnixMilli() {
		t.Errorf("timestamp part = %d, want %d", ms, now.UnixMilli())
	}
}

func TestNewTransactionIDUniqueConcurrent(t *testing.T) {
	const goroutines = 20
	const perGoroutine = 100

	now := time.Now()
	var mu sync.Mutex
	seen := make(map[string]struct{}, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]string, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				// same timestamp on purpose: the random suffix must carry uniqueness
				ids = append(ids, NewTransactionID(now))
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				if _, dup := seen[id]; dup {
					t.Errorf("duplicate transaction id %q", id)
				}
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	if len(seen) != goroutines*perGoroutine {
		t.Errorf("generated %d unique ids, want %d", len(seen), goroutines*perGoroutine)
	}
}
