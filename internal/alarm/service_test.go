package alarm

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestService_ArmAndFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	fired := make(map[int64]bool)
	onTrigger := func(id int64) {
		mu.Lock()
		fired[id] = true
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	s.ArmOnce(7, time.Now().Add(100*time.Millisecond))

	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if !fired[7] {
		t.Fatal("expected wake-up for id 7 to fire")
	}
}

func TestService_DisarmBeforeFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	fired := make(map[int64]bool)
	onTrigger := func(id int64) {
		mu.Lock()
		fired[id] = true
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	s.ArmOnce(9, time.Now().Add(2*time.Second))

	// Give the goroutine time to process the arm
	time.Sleep(100 * time.Millisecond)

	s.Disarm(9)

	// Wait past the trigger time
	time.Sleep(2200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired[9] {
		t.Fatal("expected wake-up NOT to fire after disarm")
	}
}

func TestService_ArmReplacesExisting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var count int
	onTrigger := func(id int64) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	// Arm twice for the same id; only the second registration survives.
	s.ArmOnce(5, time.Now().Add(150*time.Millisecond))
	s.ArmOnce(5, time.Now().Add(250*time.Millisecond))

	time.Sleep(600 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Fatalf("expected exactly 1 firing after re-arm, got %d", count)
	}
}

func TestService_ShutdownViaContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	fired := make(map[int64]bool)
	onTrigger := func(id int64) {
		mu.Lock()
		fired[id] = true
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	s.ArmOnce(3, time.Now().Add(500*time.Millisecond))

	cancel()

	time.Sleep(700 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired[3] {
		t.Fatal("expected wake-up NOT to fire after context cancel")
	}
	_ = s
}

func TestService_EmptyDoesNotFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firedCount := 0
	onTrigger := func(id int64) {
		firedCount++
	}

	_ = New(ctx, onTrigger)

	time.Sleep(200 * time.Millisecond)

	if firedCount != 0 {
		t.Fatalf("expected no triggers on empty service, got %d", firedCount)
	}
}

func TestService_MultipleWakeupsFireInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var fired []int64
	onTrigger := func(id int64) {
		mu.Lock()
		fired = append(fired, id)
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	s.ArmOnce(1, time.Now().Add(100*time.Millisecond))
	s.ArmOnce(2, time.Now().Add(200*time.Millisecond))

	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 2 {
		t.Fatalf("expected 2 triggers, got %d", len(fired))
	}
	if fired[0] != 1 || fired[1] != 2 {
		t.Errorf("expected firing order [1 2], got %v", fired)
	}
}

func TestService_DisarmNonexistent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(ctx, func(int64) {})

	// Disarming an unknown id must not panic or block.
	s.Disarm(12345)
}

func TestService_CanArmPrecise(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(ctx, func(int64) {})
	if !s.CanArmPrecise() {
		t.Error("default service should report precise wake-ups")
	}

	imprecise := New(ctx, func(int64) {}, WithoutPreciseWakeups())
	if imprecise.CanArmPrecise() {
		t.Error("service with WithoutPreciseWakeups should not report precise wake-ups")
	}
}
