package scene

import (
	"math"
	"testing"

	"github.com/mcorwin17/Blackhole-Rendering/pkg/core"
)

func TestNewScene_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mass        float64
		expectError bool
	}{
		{"valid mass", 1.0, false},
		{"zero mass", 0.0, true},
		{"negative mass", -2.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScene(core.NewVec3(0, 0, 0), tt.mass, 800, 600)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for mass %v, got none", tt.mass)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.BlackHole == nil {
				t.Error("Scene should carry a black hole")
			}
			if s.Width != 800 || s.Height != 600 {
				t.Errorf("Scene dimensions = %dx%d, want 800x600", s.Width, s.Height)
			}
			if math.Abs(s.FieldOfView-math.Pi/4) > 1e-12 {
				t.Errorf("Default FOV = %v, want 45 degrees in radians", s.FieldOfView)
			}
		})
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.BlackHole.Mass != 1.0 {
		t.Errorf("Default mass = %v, want 1.0", s.BlackHole.Mass)
	}
	if !s.BlackHole.Position.IsZero() {
		t.Errorf("Default hole position = %v, want origin", s.BlackHole.Position)
	}
}

func TestViews(t *testing.T) {
	views := Views()

	if len(views) != 5 {
		t.Fatalf("Expected 5 camera presets, got %d", len(views))
	}

	expectedNames := []string{"front", "side", "top", "close", "wide"}
	for i, name := range expectedNames {
		if views[i].Name != name {
			t.Errorf("View %d name = %q, want %q", i, views[i].Name, name)
		}
		if !views[i].Target.IsZero() {
			t.Errorf("View %q should target the origin, got %v", views[i].Name, views[i].Target)
		}
	}

	front := views[0]
	if front.Position != core.NewVec3(0, 2, -8) {
		t.Errorf("Front view position = %v, want (0, 2, -8)", front.Position)
	}
}

func TestFindView(t *testing.T) {
	tests := []struct {
		name   string
		lookup string
		found  bool
	}{
		{"exact match", "front", true},
		{"case insensitive", "FRONT", true},
		{"another preset", "wide", true},
		{"unknown preset", "orbit", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, found := FindView(tt.lookup)
			if found != tt.found {
				t.Fatalf("FindView(%q) found = %v, want %v", tt.lookup, found, tt.found)
			}
			if found && !view.Target.IsZero() {
				t.Errorf("Preset %q should target the origin", tt.lookup)
			}
		})
	}
}

func TestView_Camera(t *testing.T) {
	view, found := FindView("front")
	if !found {
		t.Fatal("front view should exist")
	}

	camera := view.Camera(DefaultFOV)

	if camera.Position() != view.Position {
		t.Errorf("Camera position = %v, want %v", camera.Position(), view.Position)
	}

	expected := view.Target.Subtract(view.Position).Normalize()
	if camera.Direction().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Camera direction = %v, want %v", camera.Direction(), expected)
	}
}
