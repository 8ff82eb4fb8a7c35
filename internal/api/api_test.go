package api

import (
	"errors"
	"testing"
	"time"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/store"
	"github.com/noteping/noteping/pkg/logger"
)

// fakeStore is an in-memory NoteStore that records the order of calls
// relative to the scheduler, so tests can assert cancel-before-persist.
type fakeStore struct {
	notes  map[int64]*store.Note
	nextId int64
	calls  *[]string

	insertErr error
	updateErr error
}

func newFakeStore(calls *[]string) *fakeStore {
	return &fakeStore{
		notes:  make(map[int64]*store.Note),
		nextId: 1,
		calls:  calls,
	}
}

func (f *fakeStore) record(op string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, op)
	}
}

func (f *fakeStore) Insert(n *store.Note) (int64, error) {
	f.record("insert")
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	n.Id = f.nextId
	f.nextId++
	cp := *n
	f.notes[n.Id] = &cp
	return n.Id, nil
}

func (f *fakeStore) Update(n *store.Note) error {
	f.record("update")
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.notes[n.Id]; !ok {
		return store.ErrNotFound
	}
	cp := *n
	f.notes[n.Id] = &cp
	return nil
}

func (f *fakeStore) Delete(id int64) error {
	f.record("delete")
	delete(f.notes, id)
	return nil
}

func (f *fakeStore) GetById(id int64) (*store.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return n, nil
}

func (f *fakeStore) GetAll() ([]*store.Note, error) {
	var notes []*store.Note
	for _, n := range f.notes {
		notes = append(notes, n)
	}
	return notes, nil
}

func (f *fakeStore) GetNextDueAfter(afterMs int64) (*store.Note, error) {
	var best *store.Note
	for _, n := range f.notes {
		if n.DueAt == nil || *n.DueAt <= afterMs {
			continue
		}
		if best == nil || *n.DueAt < *best.DueAt {
			best = n
		}
	}
	return best, nil
}

// fakeSched records schedule/cancel calls.
type fakeSched struct {
	calls     *[]string
	scheduled []int64
	cancelled []int64
	armFails  bool
}

func (f *fakeSched) Schedule(noteId, dueMs int64) bool {
	if f.calls != nil {
		*f.calls = append(*f.calls, "schedule")
	}
	if f.armFails {
		return false
	}
	f.scheduled = append(f.scheduled, noteId)
	return true
}

func (f *fakeSched) Cancel(noteId int64) {
	if f.calls != nil {
		*f.calls = append(*f.calls, "cancel")
	}
	f.cancelled = append(f.cancelled, noteId)
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
}

func newTestApi(st *fakeStore, sched *fakeSched) *Api {
	a := NewApi(logger.NewMockLogger(), st, sched)
	a.now = fixedNow
	return a
}

func futureMs(d time.Duration) *int64 {
	ms := fixedNow().Add(d).UnixMilli()
	return &ms
}

func TestAdd_InsertsThenArms(t *testing.T) {
	var calls []string
	st := newFakeStore(&calls)
	sched := &fakeSched{calls: &calls}
	a := newTestApi(st, sched)

	res, err := a.Add(&common.AddParams{Text: "water the plants", DueAt: futureMs(time.Hour)})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res.Id == 0 {
		t.Fatal("expected assigned id")
	}
	if !res.Armed {
		t.Fatal("expected reminder armed")
	}
	if len(calls) != 2 || calls[0] != "insert" || calls[1] != "schedule" {
		t.Fatalf("expected insert before schedule, got %v", calls)
	}
}

func TestAdd_EmptyTextRejected(t *testing.T) {
	a := newTestApi(newFakeStore(nil), &fakeSched{})
	if _, err := a.Add(&common.AddParams{Text: "   "}); err != ErrTextRequired {
		t.Fatalf("expected ErrTextRequired, got %v", err)
	}
}

func TestAdd_NoRemindDefers(t *testing.T) {
	st := newFakeStore(nil)
	sched := &fakeSched{}
	a := newTestApi(st, sched)

	res, err := a.Add(&common.AddParams{Text: "buy milk", DueAt: futureMs(time.Hour), NoRemind: true})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !res.Deferred || res.Armed {
		t.Fatalf("expected deferred save, got %+v", res)
	}
	if len(sched.scheduled) != 0 {
		t.Fatal("no wake-up should be armed")
	}
}

func TestAdd_NoDueTime(t *testing.T) {
	st := newFakeStore(nil)
	sched := &fakeSched{}
	a := newTestApi(st, sched)

	res, err := a.Add(&common.AddParams{Text: "someday"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res.Armed || res.Deferred {
		t.Fatalf("expected plain save, got %+v", res)
	}
}

func TestEdit_CancelsBeforePersisting(t *testing.T) {
	var calls []string
	st := newFakeStore(&calls)
	sched := &fakeSched{calls: &calls}
	a := newTestApi(st, sched)

	res, err := a.Add(&common.AddParams{Text: "old text", DueAt: futureMs(time.Hour)})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	calls = calls[:0]

	_, err = a.Edit(&common.EditParams{Id: res.Id, Text: "new text", DueAt: futureMs(2 * time.Hour)})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if len(calls) != 3 || calls[0] != "cancel" || calls[1] != "update" || calls[2] != "schedule" {
		t.Fatalf("expected cancel, update, schedule in order, got %v", calls)
	}
	n, _ := st.GetById(res.Id)
	if n.Text != "new text" {
		t.Fatalf("text not updated: %s", n.Text)
	}
}

func TestEdit_MissingNote(t *testing.T) {
	a := newTestApi(newFakeStore(nil), &fakeSched{})
	_, err := a.Edit(&common.EditParams{Id: 99, Text: "x"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEdit_FailedUpdateLeavesNoTimer(t *testing.T) {
	var calls []string
	st := newFakeStore(&calls)
	st.updateErr = errors.New("db locked")
	sched := &fakeSched{calls: &calls}
	a := newTestApi(st, sched)

	_, err := a.Edit(&common.EditParams{Id: 5, Text: "x", DueAt: futureMs(time.Hour)})
	if err == nil {
		t.Fatal("expected update error")
	}
	// The old wake-up was released and no new one armed.
	if len(sched.cancelled) != 1 || sched.cancelled[0] != 5 {
		t.Fatalf("expected cancel for note 5, got %v", sched.cancelled)
	}
	if len(sched.scheduled) != 0 {
		t.Fatal("no wake-up should be armed after a failed update")
	}
}

func TestEdit_RemovingDueTimeDisarms(t *testing.T) {
	st := newFakeStore(nil)
	sched := &fakeSched{}
	a := newTestApi(st, sched)

	res, _ := a.Add(&common.AddParams{Text: "with due", DueAt: futureMs(time.Hour)})
	sched.scheduled = nil

	out, err := a.Edit(&common.EditParams{Id: res.Id, Text: "without due"})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if out.Armed {
		t.Fatal("expected no reminder armed")
	}
	if len(sched.cancelled) == 0 {
		t.Fatal("expected old wake-up cancelled")
	}
	if len(sched.scheduled) != 0 {
		t.Fatal("no new wake-up should be armed")
	}
}

func TestDelete_CancelsThenDeletes(t *testing.T) {
	var calls []string
	st := newFakeStore(&calls)
	sched := &fakeSched{calls: &calls}
	a := newTestApi(st, sched)

	res, _ := a.Add(&common.AddParams{Text: "gone soon", DueAt: futureMs(time.Hour)})
	calls = calls[:0]

	if err := a.Delete(&common.DeleteParams{Id: res.Id}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(calls) != 2 || calls[0] != "cancel" || calls[1] != "delete" {
		t.Fatalf("expected cancel before delete, got %v", calls)
	}
	if _, err := st.GetById(res.Id); !errors.Is(err, store.ErrNotFound) {
		t.Fatal("note should be gone")
	}
}

func TestDelete_AbsentNoteIsNoError(t *testing.T) {
	a := newTestApi(newFakeStore(nil), &fakeSched{})
	if err := a.Delete(&common.DeleteParams{Id: 42}); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestRestore_ReportsIdDrift(t *testing.T) {
	st := newFakeStore(nil)
	st.nextId = 10
	sched := &fakeSched{}
	a := newTestApi(st, sched)

	res, err := a.Restore(&common.RestoreParams{Note: common.NoteInfo{
		Id:    3,
		Text:  "undeleted",
		DueAt: futureMs(time.Hour),
	}})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if res.OldId != 3 || res.NewId != 10 {
		t.Fatalf("expected id drift 3 -> 10, got %+v", res)
	}
	if !res.Armed {
		t.Fatal("expected reminder re-armed under the new id")
	}
	if len(sched.scheduled) != 1 || sched.scheduled[0] != 10 {
		t.Fatalf("wake-up must use the new id, got %v", sched.scheduled)
	}
}

func TestGet_ReturnsNote(t *testing.T) {
	st := newFakeStore(nil)
	a := newTestApi(st, &fakeSched{})

	res, _ := a.Add(&common.AddParams{Text: "hello"})
	got, err := a.Get(&common.GetParams{Id: res.Id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Note.Text != "hello" {
		t.Fatalf("unexpected note: %+v", got.Note)
	}
}

func TestList_DueOnlyFilter(t *testing.T) {
	st := newFakeStore(nil)
	a := newTestApi(st, &fakeSched{})

	_, _ = a.Add(&common.AddParams{Text: "plain"})
	_, _ = a.Add(&common.AddParams{Text: "due", DueAt: futureMs(time.Hour)})

	all, err := a.List(&common.ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(all.Notes))
	}

	due, err := a.List(&common.ListParams{DueOnly: true})
	if err != nil {
		t.Fatalf("list due only: %v", err)
	}
	if len(due.Notes) != 1 || due.Notes[0].Text != "due" {
		t.Fatalf("unexpected due-only listing: %+v", due.Notes)
	}
}

func TestNext_ReturnsEarliestUpcoming(t *testing.T) {
	st := newFakeStore(nil)
	a := newTestApi(st, &fakeSched{})

	_, _ = a.Add(&common.AddParams{Text: "later", DueAt: futureMs(2 * time.Hour)})
	soon, _ := a.Add(&common.AddParams{Text: "soon", DueAt: futureMs(time.Hour)})

	res, err := a.Next(&common.NextParams{})
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if res.Note == nil || res.Note.Id != soon.Id {
		t.Fatalf("expected soonest note, got %+v", res.Note)
	}
}

func TestNext_EmptyWhenNothingUpcoming(t *testing.T) {
	st := newFakeStore(nil)
	a := newTestApi(st, &fakeSched{})

	_, _ = a.Add(&common.AddParams{Text: "no due"})
	res, err := a.Next(&common.NextParams{})
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if res.Note != nil {
		t.Fatalf("expected no upcoming note, got %+v", res.Note)
	}
}

func TestMutationsFireChangeHook(t *testing.T) {
	st := newFakeStore(nil)
	a := newTestApi(st, &fakeSched{})
	changes := 0
	a.SetChangeHook(func() { changes++ })

	res, _ := a.Add(&common.AddParams{Text: "a"})
	_, _ = a.Edit(&common.EditParams{Id: res.Id, Text: "b"})
	_ = a.Delete(&common.DeleteParams{Id: res.Id})

	if changes != 3 {
		t.Fatalf("expected 3 change notifications, got %d", changes)
	}
}

func TestReads_DoNotFireChangeHook(t *testing.T) {
	st := newFakeStore(nil)
	a := newTestApi(st, &fakeSched{})
	res, _ := a.Add(&common.AddParams{Text: "a"})

	changes := 0
	a.SetChangeHook(func() { changes++ })

	_, _ = a.Get(&common.GetParams{Id: res.Id})
	_, _ = a.List(&common.ListParams{})
	_, _ = a.Next(&common.NextParams{})

	if changes != 0 {
		t.Fatalf("reads must not fire change notifications, got %d", changes)
	}
}
