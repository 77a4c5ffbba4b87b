// Package dispatch owns the client sockets. Each connection gets a reader
// goroutine that frames newline-terminated UTF-8 lines, but every framed
// line funnels into one request channel consumed by a single goroutine, so
// all command handling, and therefore every ledger mutation, is
// serialized. A connection has at most one request in flight because its
// reader blocks until the response comes back.
package dispatch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// maxLineBytes bounds a single request line. A client that exceeds it gets
// an explicit error and is disconnected; the stream cannot be resynced
// mid-line.
const maxLineBytes = 1024

const writeTimeout = 10 * time.Second

var lineTooLongMessage = fmt.Sprintf("input line exceeds %d bytes", maxLineBytes)

// Handler turns one request line into one response, which may span
// multiple lines.
type Handler interface {
	Handle(sess *Session, line string) string
}

type request struct {
	sess *Session
	line string
	resp chan string
}

type Dispatcher struct {
	handler  Handler
	requests chan request

	mu    sync.Mutex
	conns map[net.Conn]*Session
}

func New(handler Handler) *Dispatcher {
	return &Dispatcher{
		handler:  handler,
		requests: make(chan request),
		conns:    make(map[net.Conn]*Session),
	}
}

// ConnCount reports the number of open client connections.
func (d *Dispatcher) ConnCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.conns)
}

// Serve accepts connections until the context is canceled. It blocks.
func (d *Dispatcher) Serve(ctx context.Context, lis net.Listener) error {
	go d.handleRequests(ctx)
	go func() {
		<-ctx.Done()
		lis.Close()
	}()

	zap.L().Info("accepting client connections", zap.String("addr", lis.Addr().String()))
	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}
		go d.handleConn(ctx, conn)
	}
}

// handleRequests is the single goroutine that owns all command handling.
func (d *Dispatcher) handleRequests(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-d.requests:
			req.resp <- d.handler.Handle(req.sess, req.line)
		}
	}
}

func (d *Dispatcher) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	sess := NewSession(conn.RemoteAddr().String())
	d.register(conn, sess)
	defer d.deregister(conn)

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	zap.L().Info("new connection", zap.String("remote", sess.RemoteAddr()))

	resp := make(chan string)
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, maxLineBytes), maxLineBytes)

	for sc.Scan() {
		line := sc.Text()
		if !utf8.ValidString(line) {
			zap.L().Warn("malformed utf-8 from client, closing", zap.String("remote", sess.RemoteAddr()))
			return
		}

		select {
		case <-ctx.Done():
			return
		case d.requests <- request{sess: sess, line: line, resp: resp}:
		}
		out := <-resp

		if err := d.write(conn, out); err != nil {
			zap.L().Warn("write to client failed, closing", zap.String("remote", sess.RemoteAddr()), zap.Error(err))
			return
		}
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			d.write(conn, lineTooLongMessage)
			zap.L().Warn("oversized line from client, closing", zap.String("remote", sess.RemoteAddr()))
			return
		}
		zap.L().Warn("connection error", zap.String("remote", sess.RemoteAddr()), zap.Error(err))
		return
	}
	zap.L().Info("connection closed by client", zap.String("remote", sess.RemoteAddr()))
}

// write sends the whole response followed by a trailing newline in a
// single write. A stalled peer gets a bounded amount of time, never a
// silently dropped response.
func (d *Dispatcher) write(conn net.Conn, out string) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	_, err := conn.Write([]byte(out + "\n"))
	return err
}

func (d *Dispatcher) register(conn net.Conn, sess *Session) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.conns[conn] = sess
}

func (d *Dispatcher) deregister(conn net.Conn) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.conns, conn)
}
