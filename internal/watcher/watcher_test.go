package watcher

import "testing"

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"pptx", "data/input/deck.pptx", true},
		{"uppercase ext", "data/input/DECK.PPTX", true},
		{"txt script", "data/input/songs.txt", true},
		{"text script", "data/input/songs.text", true},
		{"video ignored", "data/input/clip.mp4", false},
		{"no extension", "data/input/README", false},
		{"legacy ppt ignored", "data/input/old.ppt", false},
	}

	w := &implWatcher{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.isSourceFile(tt.path); got != tt.want {
				t.Errorf("isSourceFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
