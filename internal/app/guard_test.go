package app

import (
	"sync"
	"testing"
)

func TestGuardAdmitsOne(t *testing.T) {
	var g guard
	token, ok := g.acquire()
	if !ok || token == "" {
		t.Fatalf("first acquire should succeed with a token")
	}
	if _, ok := g.acquire(); ok {
		t.Fatalf("second acquire should be rejected")
	}
	g.release("someone-else")
	if !g.busy() {
		t.Fatalf("release with a foreign token must not free the guard")
	}
	g.release(token)
	if g.busy() {
		t.Fatalf("guard should be free after release")
	}
	next, ok := g.acquire()
	if !ok || next == token {
		t.Fatalf("expected a fresh token, got %q (ok=%v)", next, ok)
	}
}

func TestGuardConcurrentAcquire(t *testing.T) {
	var g guard
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := g.acquire(); ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}
}
