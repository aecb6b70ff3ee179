// Package fetch guards catalog loads with per-endpoint circuit breakers.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/git-pkgs/catalog"
	"github.com/git-pkgs/catalog/client"
)

// ErrUpstreamDown is returned while an endpoint's breaker is open.
var ErrUpstreamDown = errors.New("catalog endpoint unavailable")

// tripThreshold is the number of consecutive failures that opens a breaker.
const tripThreshold = 5

// CircuitBreakerLoader wraps a catalog.Loader with a circuit breaker keyed by
// endpoint host. It is meant for repeated reloads of a long-lived session;
// a single load still issues at most one request.
type CircuitBreakerLoader struct {
	loader   catalog.Loader
	breakers map[string]*circuit.Breaker
	mu       sync.RWMutex
}

// NewCircuitBreakerLoader creates a new circuit breaker wrapper for a loader.
func NewCircuitBreakerLoader(l catalog.Loader) *CircuitBreakerLoader {
	return &CircuitBreakerLoader{
		loader:   l,
		breakers: make(map[string]*circuit.Breaker),
	}
}

// getBreaker returns or creates the circuit breaker for host.
func (cbl *CircuitBreakerLoader) getBreaker(host string) *circuit.Breaker {
	cbl.mu.RLock()
	breaker, exists := cbl.breakers[host]
	cbl.mu.RUnlock()

	if exists {
		return breaker
	}

	cbl.mu.Lock()
	defer cbl.mu.Unlock()

	if breaker, exists := cbl.breakers[host]; exists {
		return breaker
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	breaker = circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(tripThreshold),
	})

	cbl.breakers[host] = breaker
	return breaker
}

// Endpoint returns the wrapped loader's endpoint.
func (cbl *CircuitBreakerLoader) Endpoint() string {
	return cbl.loader.Endpoint()
}

// Load runs the wrapped loader unless the endpoint's breaker is open.
func (cbl *CircuitBreakerLoader) Load(ctx context.Context) ([]catalog.Record, error) {
	endpoint := cbl.loader.Endpoint()
	host := client.Host(endpoint)
	breaker := cbl.getBreaker(host)

	if !breaker.Ready() {
		return nil, &catalog.LoadError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("circuit breaker open for %s: %w", host, ErrUpstreamDown),
		}
	}

	var records []catalog.Record
	err := breaker.Call(func() error {
		var loadErr error
		records, loadErr = cbl.loader.Load(ctx)
		return loadErr
	}, 0)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GetBreakerState returns "open" or "closed" per endpoint host.
func (cbl *CircuitBreakerLoader) GetBreakerState() map[string]string {
	cbl.mu.RLock()
	defer cbl.mu.RUnlock()

	states := make(map[string]string)
	for host, breaker := range cbl.breakers {
		if breaker.Tripped() {
			states[host] = "open"
		} else {
			states[host] = "closed"
		}
	}
	return states
}
