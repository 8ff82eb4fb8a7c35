package pingcli

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/noteping/noteping/common"
)

// serveOnce answers a single framed request on the server side of a pipe
// with the given response.
func serveOnce(t *testing.T, conn net.Conn, check func(*Request), resp *Response) {
	t.Helper()
	go func() {
		buf, err := read(conn)
		if err != nil {
			return
		}
		var req Request
		if err := json.Unmarshal(buf, &req); err != nil {
			return
		}
		if check != nil {
			check(&req)
		}
		out, _ := json.Marshal(resp)
		_ = write(conn, out)
	}()
}

func TestFramingRoundTrip(t *testing.T) {
	c1, c2 := net.Pipe()
	defer c1.Close()
	defer c2.Close()

	data := []byte(`{"method":"list"}`)
	go func() {
		_ = write(c1, data)
	}()
	got, err := read(c2)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestFramingRejectsOversizedPayload(t *testing.T) {
	c1, c2 := net.Pipe()
	defer c1.Close()
	defer c2.Close()

	go func() {
		_, _ = c1.Write(intToBytes(uint32(common.MaxMessageSize + 1)))
	}()
	if _, err := read(c2); err == nil {
		t.Fatal("expected error for oversized payload")
	}
}

func TestAddNote_InvokesAddMethod(t *testing.T) {
	cliConn, srvConn := net.Pipe()
	c := NewClientForTesting(cliConn)
	defer c.Close()

	due := int64(1790000000000)
	msg, _ := json.Marshal(&common.AddResponse{Id: 7, Armed: true, DueAt: due})
	serveOnce(t, srvConn, func(req *Request) {
		if req.Method != common.UPDATE_ADD {
			t.Errorf("expected add method, got %s", req.Method)
		}
	}, &Response{
		Ok:     true,
		Update: &Update{Type: common.UPDATE_ADD, Message: msg},
	})

	res, err := c.AddNote("water the plants", &due, false)
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if res.Id != 7 || !res.Armed {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestInvoke_ErrorResponse(t *testing.T) {
	cliConn, srvConn := net.Pipe()
	c := NewClientForTesting(cliConn)
	defer c.Close()

	serveOnce(t, srvConn, nil, &Response{Ok: false, Error: "text is required"})

	_, err := c.AddNote("", nil, false)
	if err == nil || err.Error() != "text is required" {
		t.Fatalf("expected server error, got %v", err)
	}
}

func TestGetNote_RoundTrip(t *testing.T) {
	cliConn, srvConn := net.Pipe()
	c := NewClientForTesting(cliConn)
	defer c.Close()

	msg, _ := json.Marshal(&common.GetResponse{Note: common.NoteInfo{Id: 3, Text: "buy milk"}})
	serveOnce(t, srvConn, nil, &Response{
		Ok:     true,
		Update: &Update{Type: common.UPDATE_GET, Message: msg},
	})

	res, err := c.GetNote(3)
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if res.Note.Text != "buy milk" {
		t.Fatalf("unexpected note: %+v", res.Note)
	}
}

func TestReminderHandler_FiltersByAction(t *testing.T) {
	var fired []int64
	h := NewReminderHandler(common.ReminderFired, func(u *common.ReminderUpdate) error {
		fired = append(fired, u.Id)
		return nil
	})

	msg, _ := json.Marshal(&common.ReminderUpdate{Action: common.ReminderFired, Id: 5, Text: "hi"})
	if err := h.Handle(msg); err != nil {
		t.Fatalf("handle: %v", err)
	}
	other, _ := json.Marshal(&common.ReminderUpdate{Action: common.SummaryRefresh})
	if err := h.Handle(other); err != nil {
		t.Fatalf("handle other action: %v", err)
	}

	if len(fired) != 1 || fired[0] != 5 {
		t.Fatalf("expected only the fired update, got %v", fired)
	}
}

func TestDispatcher_RoutesPushedUpdate(t *testing.T) {
	d := &Dispatcher{Handlers: make(map[common.UpdateType]Handler)}
	var got *common.ReminderUpdate
	d.Handlers[common.UPDATE_REMINDER] = NewReminderHandler("", func(u *common.ReminderUpdate) error {
		got = u
		return nil
	})

	msg, _ := json.Marshal(&common.ReminderUpdate{Action: common.ReminderFired, Id: 9, Text: "stretch"})
	buf, _ := json.Marshal(&Response{
		Ok:     true,
		Update: &Update{Type: common.UPDATE_REMINDER, Message: msg},
	})
	if err := d.process(buf); err != nil {
		t.Fatalf("process: %v", err)
	}
	if got == nil || got.Id != 9 {
		t.Fatalf("expected routed update, got %+v", got)
	}
}
