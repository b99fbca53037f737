package tcp

import (
	"net"
	"sync"

	"github.com/google/uuid"

	"github.com/playgrid/gomoku-backend/internal/transport"
)

const outboundQueueSize = 64

type tcpConn struct {
	id   string
	sock net.Conn
	buf  transport.Buffer

	out    chan []byte
	closed chan struct{}
	once   sync.Once
}

func newConn(sock net.Conn) *tcpConn {
	return &tcpConn{
		id:     uuid.NewString(),
		sock:   sock,
		out:    make(chan []byte, outboundQueueSize),
		closed: make(chan struct{}),
	}
}

func (that *tcpConn) ID() string { return that.id }

func (that *tcpConn) Peek() []byte { return that.buf.Peek() }

func (that *tcpConn) Discard(n int) { that.buf.Discard(n) }

// Send queues one frame without ever blocking the caller; if the queue
// is full the frame is dropped and the next tick's broadcast catches the
// client up.
func (that *tcpConn) Send(frame []byte) {
	select {
	case <-that.closed:
	default:
		select {
		case that.out <- frame:
		default:
		}
	}
}

func (that *tcpConn) Close() {
	that.once.Do(func() {
		close(that.closed)
		that.sock.Close()
	})
}

func (that *tcpConn) writeLoop() {
	for {
		select {
		case frame := <-that.out:
			if _, err := that.sock.Write(frame); err != nil {
				that.Close()
				return
			}
		case <-that.closed:
			return
		}
	}
}
