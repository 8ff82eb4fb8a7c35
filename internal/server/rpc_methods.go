package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/store"
)

// Custom JSON-RPC error codes for note operations.
const (
	codeNoteNotFound  = jrpc2.Code(-32001)
	codeInvalidParams = jrpc2.Code(-32602)
)

// NoteService is the note API surface exposed over JSON-RPC. internal/api
// provides the implementation; the indirection keeps this package free of
// a dependency on the orchestration layer.
type NoteService interface {
	Add(p *common.AddParams) (*common.AddResponse, error)
	Edit(p *common.EditParams) (*common.EditResponse, error)
	Delete(p *common.DeleteParams) error
	Restore(p *common.RestoreParams) (*common.RestoreResponse, error)
	Get(p *common.GetParams) (*common.GetResponse, error)
	List(p *common.ListParams) (*common.ListResponse, error)
	Next(p *common.NextParams) (*common.NextResponse, error)
}

// RPCConfig holds configuration for the JSON-RPC endpoint.
type RPCConfig struct {
	Secret    string // Auth token (required -- empty means RPC disabled)
	ListenAll bool   // If true, bind to 0.0.0.0 instead of 127.0.0.1
	Port      int    // HTTP listen port
	Version   string // Daemon version
	Commit    string // Git commit
	BuildType string // Build type
}

// RPCServer manages the JSON-RPC 2.0 bridge and method handlers. The
// bridge serves request/response methods over HTTP; the WebSocket
// endpoint carries the same methods plus push notifications for fired
// reminders and summary refreshes.
type RPCServer struct {
	bridge    jhttp.Bridge
	methods   handler.Map
	secret    string
	listenAll bool
	port      int
	version   string
	commit    string
	buildType string
	svc       NoteService
	notifier  *RPCNotifier
	log       *log.Logger
	httpSrv   *http.Server
}

// VersionResult is the response for system.getVersion.
type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildType string `json:"buildType,omitempty"`
}

// EmptyResult is a placeholder for methods that return no data.
type EmptyResult struct{}

// NewRPCServer creates a new RPCServer with method handlers and HTTP bridge.
func NewRPCServer(l *log.Logger, cfg *RPCConfig, svc NoteService, notifier *RPCNotifier) *RPCServer {
	rs := &RPCServer{
		secret:    cfg.Secret,
		listenAll: cfg.ListenAll,
		port:      cfg.Port,
		version:   cfg.Version,
		commit:    cfg.Commit,
		buildType: cfg.BuildType,
		svc:       svc,
		notifier:  notifier,
		log:       l,
	}

	rs.methods = handler.Map{
		"system.getVersion": handler.New(rs.systemGetVersion),
		"note.add":          handler.New(rs.noteAdd),
		"note.update":       handler.New(rs.noteUpdate),
		"note.remove":       handler.New(rs.noteRemove),
		"note.restore":      handler.New(rs.noteRestore),
		"note.get":          handler.New(rs.noteGet),
		"note.list":         handler.New(rs.noteList),
		"note.next":         handler.New(rs.noteNext),
	}

	rs.bridge = jhttp.NewBridge(rs.methods, nil)
	return rs
}

func (rs *RPCServer) systemGetVersion(_ context.Context) (*VersionResult, error) {
	return &VersionResult{
		Version:   rs.version,
		Commit:    rs.commit,
		BuildType: rs.buildType,
	}, nil
}

// rpcError translates service errors into jrpc2 error codes.
func rpcError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return &jrpc2.Error{Code: codeNoteNotFound, Message: "note not found"}
	}
	return &jrpc2.Error{Code: codeInvalidParams, Message: err.Error()}
}

func (rs *RPCServer) noteAdd(_ context.Context, p *common.AddParams) (*common.AddResponse, error) {
	res, err := rs.svc.Add(p)
	if err != nil {
		return nil, rpcError(err)
	}
	return res, nil
}

func (rs *RPCServer) noteUpdate(_ context.Context, p *common.EditParams) (*common.EditResponse, error) {
	res, err := rs.svc.Edit(p)
	if err != nil {
		return nil, rpcError(err)
	}
	return res, nil
}

func (rs *RPCServer) noteRemove(_ context.Context, p *common.DeleteParams) (*EmptyResult, error) {
	if err := rs.svc.Delete(p); err != nil {
		return nil, rpcError(err)
	}
	return &EmptyResult{}, nil
}

func (rs *RPCServer) noteRestore(_ context.Context, p *common.RestoreParams) (*common.RestoreResponse, error) {
	res, err := rs.svc.Restore(p)
	if err != nil {
		return nil, rpcError(err)
	}
	return res, nil
}

func (rs *RPCServer) noteGet(_ context.Context, p *common.GetParams) (*common.GetResponse, error) {
	res, err := rs.svc.Get(p)
	if err != nil {
		return nil, rpcError(err)
	}
	return res, nil
}

func (rs *RPCServer) noteList(_ context.Context, p *common.ListParams) (*common.ListResponse, error) {
	res, err := rs.svc.List(p)
	if err != nil {
		return nil, rpcError(err)
	}
	return res, nil
}

func (rs *RPCServer) noteNext(_ context.Context, p *common.NextParams) (*common.NextResponse, error) {
	res, err := rs.svc.Next(p)
	if err != nil {
		return nil, rpcError(err)
	}
	return res, nil
}

// Handler returns the HTTP handler serving the bridge at /rpc and the
// WebSocket endpoint at /events, both behind token authentication.
func (rs *RPCServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/rpc", requireToken(rs.secret, rs.bridge))
	mux.HandleFunc("/events", rs.handleWS)
	return mux
}

// Close shuts down the jrpc2 bridge, releasing internal goroutines.
func (rs *RPCServer) Close() {
	rs.bridge.Close()
}
