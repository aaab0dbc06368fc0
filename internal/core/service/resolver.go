package service

import (
	"context"
	"sync"
	"time"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/MikeRez0/coinsend/internal/core/port"
	"go.uber.org/zap"
)

const (
	lookupOutcomeFound      = "found"
	lookupOutcomeNotFound   = "not_found"
	lookupOutcomeError      = "error"
	lookupOutcomeSuperseded = "superseded"
)

// Resolver turns username edits into a validity verdict. Lookups start only
// after the input has been quiet for the debounce window, and results are
// applied only if no newer edit happened since they were started.
type Resolver struct {
	lookup  port.UserLookup
	metrics port.Metrics
	logger  *zap.Logger
	window  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	input        string
	generation   uint64
	timer        *time.Timer
	cancelLookup context.CancelFunc
	validity     domain.Validity
	recipient    *domain.Recipient
}

func NewResolver(lookup port.UserLookup, metrics port.Metrics,
	window time.Duration, logger *zap.Logger) *Resolver {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Resolver{
		lookup:   lookup,
		metrics:  metrics,
		logger:   logger,
		window:   window,
		ctx:      ctx,
		cancel:   cancel,
		input:    domain.UsernameMarker,
		validity: domain.IdleValidity,
	}
}

// SetInput records an edit and returns the normalized username. A changed
// value drops the current verdict right away; an unchanged one keeps the
// verdict and any pending or in-flight lookup.
func (r *Resolver) SetInput(raw string) string {
	username := domain.NormalizeUsername(raw)

	r.mu.Lock()
	defer r.mu.Unlock()

	if username == r.input {
		return username
	}

	r.supersede()
	r.input = username
	if r.ctx.Err() != nil {
		return username
	}

	gen := r.generation
	r.wg.Add(1)
	r.timer = time.AfterFunc(r.window, func() {
		defer r.wg.Done()
		r.settle(gen)
	})

	return username
}

// Reset clears the input and abandons any pending or in-flight lookup.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.supersede()
	r.input = domain.UsernameMarker
}

// State returns the current input, verdict and resolved recipient.
func (r *Resolver) State() (string, domain.Validity, *domain.Recipient) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recipient *domain.Recipient
	if r.recipient != nil {
		rc := *r.recipient
		recipient = &rc
	}
	return r.input, r.validity, recipient
}

// Close stops pending work and waits for running lookups to return.
func (r *Resolver) Close() {
	r.mu.Lock()
	r.cancel()
	r.supersede()
	r.mu.Unlock()

	r.wg.Wait()
}

// supersede must be called with mu held.
func (r *Resolver) supersede() {
	r.generation++
	if r.timer != nil {
		if r.timer.Stop() {
			r.wg.Done()
		}
		r.timer = nil
	}
	if r.cancelLookup != nil {
		r.cancelLookup()
		r.cancelLookup = nil
	}
	r.validity = domain.IdleValidity
	r.recipient = nil
}

func (r *Resolver) settle(gen uint64) {
	r.mu.Lock()
	if gen != r.generation {
		r.mu.Unlock()
		return
	}
	r.timer = nil
	username := r.input
	if len(username) <= len(domain.UsernameMarker) {
		r.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(r.ctx)
	defer cancel()
	r.cancelLookup = cancel
	r.validity = domain.LoadingValidity
	r.mu.Unlock()

	r.logger.Debug("Start user lookup", zap.String("username", username))
	result, err := r.lookup.Lookup(ctx, username)
	r.apply(gen, username, result, err)
}

func (r *Resolver) apply(gen uint64, username string, result *port.LookupResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.generation {
		r.logger.Debug("Drop superseded lookup result", zap.String("username", username))
		r.metrics.ObserveLookup(lookupOutcomeSuperseded)
		return
	}
	r.cancelLookup = nil

	switch {
	case err != nil:
		r.logger.Warn("User lookup failed", zap.String("username", username), zap.Error(err))
		r.metrics.ObserveLookup(lookupOutcomeError)
		r.validity = domain.NotFoundValidity
	case result == nil || !result.Found:
		r.metrics.ObserveLookup(lookupOutcomeNotFound)
		r.validity = domain.NotFoundValidity
	default:
		r.metrics.ObserveLookup(lookupOutcomeFound)
		r.validity = domain.ValidValidity
		r.recipient = &domain.Recipient{Username: username, AvatarURL: result.AvatarURL}
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveLookup(string) {}
func (nopMetrics) ObserveSend(int64)    {}
func (nopMetrics) SetBalance(int64)     {}
