package gen

import "testing"

func TestSnake(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"FrameID", "frame_id"},
		{"PageId", "page_id"},
		{"DOM", "dom"},
		{"DOMNode", "dom_node"},
		{"loadEventFired", "load_event_fired"},
		{"setExtraHTTPHeaders", "set_extra_http_headers"},
		{"TransitionType", "transition_type"},
		{"url", "url"},
		{"Type1", "type1"},
		{"LoaderId", "loader_id"},
	}
	for _, test := range tests {
		got := Snake(test.name)
		if got != test.want {
			t.Errorf("snake %s want %s got %s", test.name, test.want, got)
		}
		if again := Snake(got); again != got {
			t.Errorf("snake %s not idempotent got %s", test.name, again)
		}
	}
}
