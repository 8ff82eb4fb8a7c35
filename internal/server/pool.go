package server

import (
	"fmt"
	"log"
	"net"
	"sync"
)

// Pool tracks connections that attached for push updates. Attached
// clients (the widget, `noteping watch`) receive reminder and summary
// broadcasts until they disconnect.
type Pool struct {
	mu *sync.RWMutex
	m  []net.Conn
	l  *log.Logger
}

func NewPool(l *log.Logger) *Pool {
	return &Pool{
		mu: &sync.RWMutex{},
		m:  []net.Conn{},
		l:  l,
	}
}

// Attach registers a connection for push updates.
func (p *Pool) Attach(conn net.Conn) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m = append(p.m, conn)
}

// Count returns the number of attached connections.
func (p *Pool) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.m)
}

// Broadcast writes a framed message to every attached connection.
// Connections that fail the write are dropped from the pool.
func (p *Pool) Broadcast(data []byte) error {
	head := intToBytes(uint32(len(data)))
	p.mu.RLock()
	conns := make([]net.Conn, len(p.m))
	copy(conns, p.m)
	p.mu.RUnlock()

	var firstErr error
	for _, conn := range conns {
		if _, err := conn.Write(head); err != nil {
			p.removeConn(conn)
			if firstErr == nil {
				firstErr = fmt.Errorf("error writing: %s", err.Error())
			}
			continue
		}
		if _, err := conn.Write(data); err != nil {
			p.removeConn(conn)
			if firstErr == nil {
				firstErr = fmt.Errorf("error writing: %s", err.Error())
			}
		}
	}
	return firstErr
}

func (p *Pool) removeConn(conn net.Conn) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, c := range p.m {
		if c != conn {
			continue
		}
		_ = c.Close()
		// shift last connection to the current index
		p.m[i] = p.m[len(p.m)-1]
		p.m = p.m[:len(p.m)-1]
		return
	}
}
