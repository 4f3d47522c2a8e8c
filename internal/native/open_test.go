package native

import (
	"reflect"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"linux", "xdg-open", []string{"http://localhost:8501"}},
		{"freebsd", "xdg-open", []string{"http://localhost:8501"}},
		{"darwin", "open", []string{"http://localhost:8501"}},
		{"windows", "cmd", []string{"/c", "start", "", "http://localhost:8501"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := command(tt.goos, "http://localhost:8501")
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("command(%q) = %q %v, want %q %v", tt.goos, name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}
