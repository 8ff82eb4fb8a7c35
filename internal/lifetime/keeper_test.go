package lifetime

import (
	"context"
	"testing"
	"time"
)

func TestKeeper_WaitReturnsWhenAllReleased(t *testing.T) {
	var k Keeper

	tok1 := k.Hold("dispatch")
	tok2 := k.Hold("sweep")

	go func() {
		time.Sleep(50 * time.Millisecond)
		tok1.Release()
		tok2.Release()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := k.Wait(ctx); err != nil {
		t.Fatalf("expected clean wait, got %v", err)
	}
}

func TestKeeper_WaitTimesOutOnHeldToken(t *testing.T) {
	var k Keeper

	tok := k.Hold("dispatch")
	defer tok.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := k.Wait(ctx); err == nil {
		t.Fatal("expected timeout while token is held")
	}
}

func TestToken_ReleaseIsIdempotent(t *testing.T) {
	var k Keeper

	tok := k.Hold("dispatch")
	tok.Release()
	// A second release must not panic the WaitGroup counter.
	tok.Release()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := k.Wait(ctx); err != nil {
		t.Fatalf("expected clean wait after double release, got %v", err)
	}
}

func TestToken_Scope(t *testing.T) {
	var k Keeper
	tok := k.Hold("sweep")
	defer tok.Release()
	if tok.Scope() != "sweep" {
		t.Errorf("expected scope 'sweep', got %q", tok.Scope())
	}
}

func TestKeeper_WaitWithNoTokens(t *testing.T) {
	var k Keeper
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := k.Wait(ctx); err != nil {
		t.Fatalf("expected immediate return with no tokens, got %v", err)
	}
}
