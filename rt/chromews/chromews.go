// Package chromews implements the rt.Session contract over a websocket
// connection to a remote debugging endpoint. It matches command replies to
// requests by id and delivers protocol notifications on an event channel.
package chromews

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"xelf.org/cdp/log"
	"xelf.org/cdp/rt"
)

type Config struct {
	URL     string
	Timeout time.Duration
	Events  int
	*websocket.Dialer
	Log log.Logger
}

func (c Config) Default() Config {
	if c.Dialer == nil {
		c.Dialer = websocket.DefaultDialer
	}
	if c.Log == nil {
		c.Log = log.Root
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Events <= 0 {
		c.Events = 32
	}
	return c
}

// WSURL returns url with a http or https prefix replaced as ws or wss respectively.
func WSURL(url string) string {
	if strings.HasPrefix(url, "http") {
		url = "ws" + url[4:]
	}
	return url
}

// Event is a protocol notification received outside a command reply.
type Event struct {
	Method string
	Params rt.Result
}

// Session is a websocket debugging session. It is safe for concurrent use.
type Session struct {
	Config
	ctx    context.Context
	wc     *websocket.Conn
	events chan Event
	done   chan struct{}

	wmu sync.Mutex

	mu   sync.Mutex
	last int64
	pend map[int64]chan *reply
	err  error
}

type request struct {
	ID     int64     `json:"id"`
	Method string    `json:"method"`
	Params rt.Params `json:"params"`
}

type reply struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rt.Error       `json:"error"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// Dial connects to the remote debugging endpoint at conf.URL.
func Dial(ctx context.Context, conf Config) (*Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	conf = conf.Default()
	wc, _, err := conf.DialContext(ctx, WSURL(conf.URL), nil)
	if err != nil {
		return nil, err
	}
	s := &Session{Config: conf, ctx: ctx, wc: wc,
		events: make(chan Event, conf.Events),
		done:   make(chan struct{}),
		pend:   make(map[int64]chan *reply),
	}
	s.Log.Debug("chromews session connected", "url", conf.URL)
	go s.readAll()
	return s, nil
}

var _ rt.Session = (*Session)(nil)

// ExecuteCommand sends the command and blocks until the matching reply
// arrives, the call times out or the session shuts down. Protocol level
// failures are returned as *rt.Error.
func (s *Session) ExecuteCommand(method string, params rt.Params, opts rt.Opts) (rt.Result, error) {
	if params == nil {
		params = rt.Params{}
	}
	s.mu.Lock()
	if s.err != nil {
		err := s.err
		s.mu.Unlock()
		return nil, err
	}
	s.last++
	id := s.last
	ch := make(chan *reply, 1)
	s.pend[id] = ch
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pend, id)
		s.mu.Unlock()
	}()
	raw, err := json.Marshal(request{ID: id, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("encode command %s: %w", method, err)
	}
	timeout := s.Timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	if err := s.write(raw, timeout); err != nil {
		return nil, fmt.Errorf("send command %s: %w", method, err)
	}
	select {
	case r := <-ch:
		if r.Error != nil {
			return nil, r.Error
		}
		res := rt.Result{}
		if len(r.Result) > 0 {
			if err := json.Unmarshal(r.Result, &res); err != nil {
				return nil, fmt.Errorf("decode result of %s: %w", method, err)
			}
		}
		return res, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("command %s timed out after %s", method, timeout)
	case <-s.done:
		s.mu.Lock()
		err := s.err
		s.mu.Unlock()
		return nil, err
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	}
}

// Events returns the notification stream. Events arriving while the channel
// is full are dropped.
func (s *Session) Events() <-chan Event { return s.events }

// Close sends a close message and tears down the connection.
func (s *Session) Close() error {
	s.wmu.Lock()
	s.wc.SetWriteDeadline(time.Now().Add(time.Second))
	s.wc.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	s.wmu.Unlock()
	return s.wc.Close()
}

func (s *Session) write(raw []byte, timeout time.Duration) error {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	s.wc.SetWriteDeadline(time.Now().Add(timeout))
	return s.wc.WriteMessage(websocket.TextMessage, raw)
}

func (s *Session) readAll() {
	for {
		_, raw, err := s.wc.ReadMessage()
		if err != nil {
			s.fail(err)
			return
		}
		var r reply
		if err := json.Unmarshal(raw, &r); err != nil {
			s.Log.Error("chromews decode message", "err", err)
			continue
		}
		if r.Method != "" {
			ev := Event{Method: r.Method}
			if len(r.Params) > 0 {
				if err := json.Unmarshal(r.Params, &ev.Params); err != nil {
					s.Log.Error("chromews decode event", "method", r.Method, "err", err)
					continue
				}
			}
			select {
			case s.events <- ev:
			default:
				s.Log.Debug("chromews event dropped", "method", r.Method)
			}
			continue
		}
		s.mu.Lock()
		ch := s.pend[r.ID]
		s.mu.Unlock()
		if ch != nil {
			rr := r
			ch <- &rr
		}
	}
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = fmt.Errorf("session closed: %v", err)
	}
	s.mu.Unlock()
	close(s.done)
	close(s.events)
}
