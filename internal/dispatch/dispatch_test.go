package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/noteping/noteping/internal/lifetime"
	"github.com/noteping/noteping/internal/notify"
	"github.com/noteping/noteping/internal/store"
	"github.com/noteping/noteping/pkg/logger"
)

// fakeLookup serves notes from a map and can fail lookups.
type fakeLookup struct {
	notes map[int64]*store.Note
	err   error
}

func (f *fakeLookup) GetById(id int64) (*store.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	n, ok := f.notes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return n, nil
}

type doneSignal struct {
	noteId int64
	final  State
}

func newTestDispatcher(lookup *fakeLookup, presenter notify.Presenter) (*Dispatcher, *lifetime.Keeper, chan doneSignal, *logger.MockLogger) {
	ml := logger.NewMockLogger()
	keeper := &lifetime.Keeper{}
	d := New(ml, lookup, presenter, keeper)
	done := make(chan doneSignal, 1)
	d.SetDoneHook(func(noteId int64, final State) {
		done <- doneSignal{noteId: noteId, final: final}
	})
	return d, keeper, done, ml
}

func waitDone(t *testing.T, done chan doneSignal) doneSignal {
	t.Helper()
	select {
	case sig := <-done:
		return sig
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for completion signal")
		return doneSignal{}
	}
}

func TestDispatch_PresentsExistingNote(t *testing.T) {
	presenter := &notify.MockPresenter{}
	lookup := &fakeLookup{notes: map[int64]*store.Note{
		7: {Id: 7, Text: "Buy milk"},
	}}
	d, keeper, done, _ := newTestDispatcher(lookup, presenter)

	d.Dispatch(7)

	sig := waitDone(t, done)
	if sig.final != StatePresenting {
		t.Fatalf("expected terminal branch presenting, got %s", sig.final)
	}
	if len(presenter.Shown) != 1 || presenter.Shown[0].Text != "Buy milk" {
		t.Fatalf("expected one presentation of 'Buy milk', got %+v", presenter.Shown)
	}
	if presenter.Refreshes != 1 {
		t.Errorf("expected a summary refresh after presenting, got %d", presenter.Refreshes)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := keeper.Wait(ctx); err != nil {
		t.Errorf("stay-alive token not released: %v", err)
	}
}

func TestDispatch_DeletedNoteSkipsButCompletes(t *testing.T) {
	presenter := &notify.MockPresenter{}
	lookup := &fakeLookup{notes: map[int64]*store.Note{}}
	d, keeper, done, _ := newTestDispatcher(lookup, presenter)

	d.Dispatch(9)

	sig := waitDone(t, done)
	if sig.final != StateSkipped {
		t.Fatalf("expected skipped for deleted note, got %s", sig.final)
	}
	if len(presenter.Shown) != 0 {
		t.Fatal("deleted note must not be presented")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := keeper.Wait(ctx); err != nil {
		t.Errorf("stay-alive token not released: %v", err)
	}
}

func TestDispatch_InvalidPayload(t *testing.T) {
	presenter := &notify.MockPresenter{}
	d, _, done, ml := newTestDispatcher(&fakeLookup{}, presenter)

	d.Dispatch(-1)

	sig := waitDone(t, done)
	if sig.final != StateFailed {
		t.Fatalf("expected failed for invalid payload, got %s", sig.final)
	}
	if len(ml.ErrorCalls) == 0 {
		t.Error("expected invalid payload to be logged")
	}
}

func TestDispatch_LookupFailure(t *testing.T) {
	presenter := &notify.MockPresenter{}
	lookup := &fakeLookup{err: errors.New("db locked")}
	d, _, done, ml := newTestDispatcher(lookup, presenter)

	d.Dispatch(7)

	sig := waitDone(t, done)
	if sig.final != StateFailed {
		t.Fatalf("expected failed on lookup error, got %s", sig.final)
	}
	if len(presenter.Shown) != 0 {
		t.Error("lookup failure must not present")
	}
	if len(ml.ErrorCalls) == 0 {
		t.Error("expected lookup failure to be logged")
	}
}

func TestDispatch_PresentationFailureStillCompletes(t *testing.T) {
	presenter := &notify.MockPresenter{Err: errors.New("bus gone")}
	lookup := &fakeLookup{notes: map[int64]*store.Note{
		7: {Id: 7, Text: "Buy milk"},
	}}
	d, keeper, done, ml := newTestDispatcher(lookup, presenter)

	d.Dispatch(7)

	sig := waitDone(t, done)
	if sig.final != StatePresenting {
		t.Fatalf("expected presenting branch despite failure, got %s", sig.final)
	}
	if len(ml.ErrorCalls) == 0 {
		t.Error("expected presentation failure to be logged")
	}
	if presenter.Refreshes != 0 {
		t.Error("failed presentation should not refresh the summary")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := keeper.Wait(ctx); err != nil {
		t.Errorf("stay-alive token not released on failure path: %v", err)
	}
}

// panicLookup triggers the dispatcher's panic guard.
type panicLookup struct{}

func (panicLookup) GetById(int64) (*store.Note, error) {
	panic("boom")
}

func TestDispatch_PanicStillSignalsCompletion(t *testing.T) {
	ml := logger.NewMockLogger()
	keeper := &lifetime.Keeper{}
	d := New(ml, panicLookup{}, &notify.MockPresenter{}, keeper)
	done := make(chan doneSignal, 1)
	d.SetDoneHook(func(noteId int64, final State) {
		done <- doneSignal{noteId: noteId, final: final}
	})

	d.Dispatch(7)

	sig := waitDone(t, done)
	if sig.final != StateFailed {
		t.Fatalf("expected failed after panic, got %s", sig.final)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := keeper.Wait(ctx); err != nil {
		t.Errorf("stay-alive token not released after panic: %v", err)
	}
}
