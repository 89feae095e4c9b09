package transport

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robolink/go-rvr/protocol"
)

// Dispatcher errors.
var (
	// ErrTimeout reports that no matching response arrived within the
	// configured response timeout.
	ErrTimeout = errors.New("timeout waiting for response")

	// ErrClosed reports a send attempted after Close.
	ErrClosed = errors.New("dispatcher is closed")
)

// readErrorBackoff delays the reader's retry after a non-transient read
// error so a persistently failing channel cannot spin a CPU.
const readErrorBackoff = 10 * time.Millisecond

// Dispatcher multiplexes command/response exchanges and unsolicited
// notifications over one duplex byte channel.
//
// A background reader runs for the dispatcher's lifetime: it reads chunks
// from the channel, feeds them through the protocol parser, and routes each
// completed packet. Responses are matched to callers strictly by sequence
// number, never by arrival order. Per-frame parser errors are logged and
// recovered inside the reader; they never reach a caller.
//
// All methods are safe for concurrent use.
type Dispatcher struct {
	ch  io.ReadWriteCloser
	cfg Config

	// writeMu serializes the write+drain of one frame
	writeMu sync.Mutex

	// nextSeq wraps at 255; only the low byte is used
	nextSeq atomic.Uint32

	// pending maps an in-flight sequence number to its response slot.
	// At most one live entry per sequence number; entries are removed
	// exactly once, by the matching response or by the timed-out caller.
	mu      sync.Mutex
	pending map[byte]chan *protocol.Packet

	notifications chan *protocol.Packet
	notifMu       sync.Mutex
	notifTaken    bool

	done       chan struct{}
	readerDone chan struct{}
	closeOnce  sync.Once
	closeErr   error
}

// NewDispatcher starts a dispatcher on ch and launches its background
// reader. The dispatcher takes ownership of ch; Close closes it.
func NewDispatcher(ch io.ReadWriteCloser, opts ...Option) *Dispatcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dispatcher{
		ch:            ch,
		cfg:           cfg,
		pending:       make(map[byte]chan *protocol.Packet),
		notifications: make(chan *protocol.Packet, cfg.NotificationBuffer),
		done:          make(chan struct{}),
		readerDone:    make(chan struct{}),
	}

	go d.readLoop()

	return d
}

// SendCommand assigns the next sequence number to pkt, writes the framed
// packet, and blocks until the matching response arrives or the response
// timeout elapses. The caller's packet is not modified; the sequence number
// is assigned on a copy.
//
// Concurrent callers get distinct sequence numbers and wait independently.
// Known limitation: sequence numbers wrap at 256, so with more than 256
// requests in flight at once a new request collides with a still-pending
// one; the stale request is abandoned to its timeout.
func (d *Dispatcher) SendCommand(pkt *protocol.Packet) (*protocol.Packet, error) {
	select {
	case <-d.done:
		return nil, ErrClosed
	default:
	}

	cmd := *pkt
	cmd.Seq = byte(d.nextSeq.Add(1) - 1)

	slot := make(chan *protocol.Packet, 1)
	d.mu.Lock()
	if _, exists := d.pending[cmd.Seq]; exists {
		d.cfg.Logger.Warn("sequence number collision, abandoning stale request", "seq", cmd.Seq)
	}
	d.pending[cmd.Seq] = slot
	d.mu.Unlock()

	if err := d.writeFrame(&cmd); err != nil {
		d.removePending(cmd.Seq)
		return nil, err
	}

	timer := time.NewTimer(d.cfg.ResponseTimeout)
	defer timer.Stop()

	select {
	case resp := <-slot:
		return resp, nil
	case <-timer.C:
		d.removePending(cmd.Seq)
		// The response may have won the race: the reader removes the
		// entry before delivering, so the slot can hold a packet even
		// though the timer fired.
		select {
		case resp := <-slot:
			return resp, nil
		default:
		}
		return nil, fmt.Errorf("seq %d: %w", cmd.Seq, ErrTimeout)
	}
}

// SendWithoutResponse writes pkt as-is, fire and forget. No sequence number
// is assigned and no response slot is registered.
func (d *Dispatcher) SendWithoutResponse(pkt *protocol.Packet) error {
	select {
	case <-d.done:
		return ErrClosed
	default:
	}
	return d.writeFrame(pkt)
}

// TakeNotifications hands out the receive side of the notification channel.
// Unsolicited packets (sensor data, events) are delivered to it in parse
// order. Only the first call succeeds; every later call returns nil,
// signaling that consumption was already claimed elsewhere.
//
// The channel is closed when the dispatcher shuts down.
func (d *Dispatcher) TakeNotifications() <-chan *protocol.Packet {
	d.notifMu.Lock()
	defer d.notifMu.Unlock()
	if d.notifTaken {
		return nil
	}
	d.notifTaken = true
	return d.notifications
}

// Close signals the reader to stop, closes the channel to unblock any
// in-progress read, joins the reader, and closes the notification channel.
// Close is idempotent. Callers blocked in SendCommand are not interrupted;
// they fail via their own timeout.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		close(d.done)
		d.closeErr = d.ch.Close()
		<-d.readerDone
		close(d.notifications)
	})
	return d.closeErr
}

// writeFrame serializes, escapes, and frames pkt, then writes it under the
// write lock. The channel's Write contract guarantees the bytes are flushed
// before it returns.
func (d *Dispatcher) writeFrame(pkt *protocol.Packet) error {
	body := pkt.Bytes()
	escaped := protocol.Escape(body)

	framed := make([]byte, 0, len(escaped)+2)
	framed = append(framed, protocol.SOP)
	framed = append(framed, escaped...)
	framed = append(framed, protocol.EOP)

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	n, err := d.ch.Write(framed)
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if n < len(framed) {
		return fmt.Errorf("write frame: %w", io.ErrShortWrite)
	}

	d.cfg.Logger.Debug("frame sent",
		"seq", pkt.Seq, "device", pkt.DeviceID, "command", pkt.CommandID, "bytes", len(framed))
	return nil
}

// readLoop is the background reader. It runs until Close and must survive
// anything the wire throws at it: framing noise and bad checksums are
// logged and skipped, transient read timeouts are silent, and other read
// errors retry after a short backoff.
func (d *Dispatcher) readLoop() {
	defer close(d.readerDone)

	parser := protocol.NewParser()
	buf := make([]byte, d.cfg.ReadChunkSize)

	for {
		select {
		case <-d.done:
			return
		default:
		}

		n, err := d.ch.Read(buf)
		if err != nil {
			select {
			case <-d.done:
				return
			default:
			}
			if isTransientReadError(err) {
				continue
			}
			d.cfg.Logger.Error("channel read failed", "error", err)
			time.Sleep(readErrorBackoff)
			continue
		}
		if n == 0 {
			// Read timeout with no data; poll the shutdown signal again.
			continue
		}

		for _, b := range buf[:n] {
			pkt, perr := parser.Feed(b)
			if perr != nil {
				// Self-healing by construction; drop the frame and move on.
				d.cfg.Logger.Warn("dropped frame", "error", perr)
				continue
			}
			if pkt != nil {
				d.route(pkt)
			}
		}
	}
}

// route delivers one parsed packet: solicited responses to their pending
// slot, everything else to the notification channel on a best-effort basis.
func (d *Dispatcher) route(pkt *protocol.Packet) {
	if pkt.Flags.IsResponse {
		d.mu.Lock()
		slot, ok := d.pending[pkt.Seq]
		if ok {
			delete(d.pending, pkt.Seq)
		}
		d.mu.Unlock()

		if !ok {
			// Unknown or already timed-out sequence number; nobody is
			// waiting, so the packet is dropped.
			d.cfg.Logger.Warn("response for unknown sequence number",
				"seq", pkt.Seq, "device", pkt.DeviceID, "command", pkt.CommandID)
			return
		}
		slot <- pkt
		return
	}

	select {
	case d.notifications <- pkt:
	default:
		d.cfg.Logger.Warn("notification dropped, channel full",
			"device", pkt.DeviceID, "command", pkt.CommandID)
	}
}

func (d *Dispatcher) removePending(seq byte) {
	d.mu.Lock()
	delete(d.pending, seq)
	d.mu.Unlock()
}

// isTransientReadError reports whether a read error only means "no data
// yet": deadline expiry or anything exposing a true Timeout().
func isTransientReadError(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var timeout interface{ Timeout() bool }
	return errors.As(err, &timeout) && timeout.Timeout()
}
