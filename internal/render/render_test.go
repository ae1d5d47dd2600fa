package render

import "testing"

func TestFrameResetKeepsBuffer(t *testing.T) {
	var f Frame
	f.Reset(512, 512, Background)
	f.Circle(1, 2, 3, Hostile)
	f.Line(0, 0, 1, 1, 2, Shooter)
	f.Text(10, 10, 16, AlignRight, "x", Label)
	if len(f.Commands) != 3 {
		t.Fatalf("commands = %d, want 3", len(f.Commands))
	}

	before := cap(f.Commands)
	f.Reset(512, 512, Background)
	if len(f.Commands) != 0 {
		t.Fatalf("commands after reset = %d, want 0", len(f.Commands))
	}
	if cap(f.Commands) != before {
		t.Fatalf("reset reallocated the command buffer")
	}
}

func TestFrameCount(t *testing.T) {
	var f Frame
	f.Circle(0, 0, 15, Hostile)
	f.Circle(5, 5, 15, Hostile)
	f.Circle(9, 9, 5, Projectile)

	if got := f.Count(KindCircle, Hostile); got != 2 {
		t.Fatalf("hostile circles = %d, want 2", got)
	}
	if got := f.Count(KindCircle, Projectile); got != 1 {
		t.Fatalf("projectile circles = %d, want 1", got)
	}
	if got := f.Count(KindLine, Hostile); got != 0 {
		t.Fatalf("hostile lines = %d, want 0", got)
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Fatal("Toggle must alternate between light and dark")
	}
	if ThemeLight.Chrome() == ThemeDark.Chrome() {
		t.Fatal("light and dark chrome palettes must differ")
	}
	if ThemeLabel(ThemeLight) != "Dark Theme" {
		t.Fatalf("ThemeLabel(light) = %q", ThemeLabel(ThemeLight))
	}
}

func TestControlAt(t *testing.T) {
	buttons := ChromeLayout(512, 512)

	tests := []struct {
		name string
		x, y float64
		want Control
	}{
		{"toggle button", 20, 520, ControlToggle},
		{"theme button", 500, 530, ControlTheme},
		{"gap between buttons", 256, 530, ControlNone},
		{"inside canvas", 20, 100, ControlNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ControlAt(buttons, tt.x, tt.y); got != tt.want {
				t.Fatalf("ControlAt(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
