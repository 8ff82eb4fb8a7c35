// Package lifetime implements the stay-alive token used by background
// reminder work. A component that starts asynchronous work holds a token
// for its duration; daemon shutdown waits for all tokens to be released
// before tearing the process down, so in-flight dispatches and recovery
// sweeps are never silently truncated.
package lifetime

import (
	"context"
	"sync"
)

// Keeper tracks outstanding stay-alive tokens.
// The zero value is ready to use.
type Keeper struct {
	wg sync.WaitGroup
}

// Token is a scoped lifetime-extension handle. Release is idempotent and
// must be called exactly once on every exit path; callers defer it
// immediately after Hold.
type Token struct {
	scope   string
	release sync.Once
	k       *Keeper
}

// Hold acquires a stay-alive token for the named scope.
func (k *Keeper) Hold(scope string) *Token {
	k.wg.Add(1)
	return &Token{scope: scope, k: k}
}

// Release returns the token. Safe to call multiple times; only the first
// call has an effect.
func (t *Token) Release() {
	t.release.Do(func() {
		t.k.wg.Done()
	})
}

// Scope returns the name the token was acquired under.
func (t *Token) Scope() string {
	return t.scope
}

// Wait blocks until all tokens are released or ctx expires.
// Returns nil when all work finished, or ctx.Err() on timeout.
func (k *Keeper) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		k.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
