package chromews

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"xelf.org/cdp/log"
	"xelf.org/cdp/rt"
)

var upgrader = websocket.Upgrader{}

func serve(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wc, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade error: %v", err)
			return
		}
		defer wc.Close()
		for {
			_, raw, err := wc.ReadMessage()
			if err != nil {
				return
			}
			var req struct {
				ID     int64     `json:"id"`
				Method string    `json:"method"`
				Params rt.Params `json:"params"`
			}
			if err := json.Unmarshal(raw, &req); err != nil {
				t.Errorf("decode request error: %v", err)
				return
			}
			switch req.Method {
			case "Page.navigate":
				wc.WriteJSON(map[string]interface{}{
					"method": "Page.loadEventFired",
					"params": map[string]interface{}{"timestamp": 12.5},
				})
				wc.WriteJSON(map[string]interface{}{
					"id":     req.ID,
					"result": map[string]interface{}{"frameId": "F1"},
				})
			default:
				wc.WriteJSON(map[string]interface{}{
					"id":    req.ID,
					"error": map[string]interface{}{"code": -32601, "message": "method not found"},
				})
			}
		}
	}))
}

func TestSession(t *testing.T) {
	srv := serve(t)
	defer srv.Close()
	s, err := Dial(context.Background(), Config{
		URL: srv.URL, Timeout: 2 * time.Second, Log: &log.Test{TB: t},
	})
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer s.Close()
	res, err := s.ExecuteCommand("Page.navigate", rt.Params{"url": "https://example.org"}, rt.Opts{})
	if err != nil {
		t.Fatalf("navigate error: %v", err)
	}
	if res["frameId"] != "F1" {
		t.Errorf("want frameId F1 got %v", res)
	}
	select {
	case ev := <-s.Events():
		if ev.Method != "Page.loadEventFired" {
			t.Errorf("want load event got %s", ev.Method)
		}
	case <-time.After(2 * time.Second):
		t.Errorf("no event received")
	}
	_, err = s.ExecuteCommand("Page.bogus", nil, rt.Opts{})
	var perr *rt.Error
	if !errors.As(err, &perr) || perr.Code != -32601 {
		t.Errorf("want protocol error got %v", err)
	}
}

func TestWSURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://localhost:9222/devtools/page/1", "ws://localhost:9222/devtools/page/1"},
		{"https://remote/devtools", "wss://remote/devtools"},
		{"ws://already", "ws://already"},
	}
	for _, test := range tests {
		if got := WSURL(test.url); got != test.want {
			t.Errorf("wsurl %s want %s got %s", test.url, test.want, got)
		}
	}
}
