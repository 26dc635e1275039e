package main

import "testing"

func TestMapKey(t *testing.T) {
	tests := []struct {
		key string
		dir Point
		ok  bool
	}{
		{"ArrowUp", Point{0, -1}, true},
		{"ArrowDown", Point{0, 1}, true},
		{"ArrowLeft", Point{-1, 0}, true},
		{"ArrowRight", Point{1, 0}, true},
		{"w", Point{0, -1}, true},
		{"s", Point{0, 1}, true},
		{"a", Point{-1, 0}, true},
		{"d", Point{1, 0}, true},
		{"W", Point{0, -1}, true},
		{"S", Point{0, 1}, true},
		{"A", Point{-1, 0}, true},
		{"D", Point{1, 0}, true},
		{"Enter", Point{}, false},
		{"q", Point{}, false},
		{"Q", Point{}, false},
		{"", Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d, ok := mapKey(tt.key)
			if ok != tt.ok {
				t.Fatalf("mapKey(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			}
			if ok && d != tt.dir {
				t.Errorf("mapKey(%q) = %v, want %v", tt.key, d, tt.dir)
			}
		})
	}
}
