package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	cws "github.com/coder/websocket"
	"github.com/creachadair/jrpc2"

	"github.com/noteping/noteping/common"
)

// wsChannel adapts a coder/websocket.Conn to the jrpc2 Channel interface.
// Each WebSocket connection gets one wsChannel that bridges read/write
// operations between the WebSocket transport and the jrpc2 server.
type wsChannel struct {
	conn *cws.Conn
	ctx  context.Context
}

// Send writes a JSON-RPC message to the WebSocket connection.
func (c *wsChannel) Send(data []byte) error {
	return c.conn.Write(c.ctx, cws.MessageText, data)
}

// Recv reads a JSON-RPC message from the WebSocket connection.
func (c *wsChannel) Recv() ([]byte, error) {
	_, data, err := c.conn.Read(c.ctx)
	return data, err
}

// Close shuts down the WebSocket connection with a normal closure status.
func (c *wsChannel) Close() error {
	return c.conn.Close(cws.StatusNormalClosure, "")
}

// handleWS upgrades a request to a WebSocket carrying a jrpc2 session.
// The session serves the full method map and is registered with the
// notifier so the client receives reminder and summary pushes.
func (rs *RPCServer) handleWS(w http.ResponseWriter, r *http.Request) {
	if !validToken(rs.secret, r.Header.Get("Authorization")) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	conn, err := cws.Accept(w, r, nil)
	if err != nil {
		rs.log.Printf("WebSocket accept failed: %v", err)
		return
	}

	ch := &wsChannel{conn: conn, ctx: r.Context()}
	srv := jrpc2.NewServer(rs.methods, &jrpc2.ServerOptions{AllowPush: true}).Start(ch)
	if rs.notifier != nil {
		rs.notifier.Register(srv)
		defer rs.notifier.Unregister(srv)
	}
	_ = srv.Wait()
}

// Serve runs the HTTP endpoint for the JSON-RPC bridge and WebSocket
// sessions. It blocks until the context is canceled. A disabled endpoint
// (empty secret) returns immediately.
func (rs *RPCServer) Serve(ctx context.Context) error {
	if rs.secret == "" {
		rs.log.Println("RPC endpoint disabled (no secret configured)")
		return nil
	}
	host := common.TCPHost
	if rs.listenAll {
		host = "0.0.0.0"
	}
	rs.httpSrv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", host, rs.port),
		Handler: rs.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = rs.httpSrv.Shutdown(shutdownCtx)
	}()

	rs.log.Printf("RPC endpoint listening on %s", rs.httpSrv.Addr)
	err := rs.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
