package ps

import "testing"

func TestColorPS(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"black", Black, "0 setgray"},
		{"white", White, "1 setgray"},
		{"grey", Grey(0.5), "0.5 setgray"},
		{"rgb", RGB(1, 0.25, 0), "1 0.25 0 setrgbcolor"},
		{"clamped", RGB(2, -1, 0.5), "1 0 0.5 setrgbcolor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.PS(); got != tt.want {
				t.Errorf("PS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorResolve(t *testing.T) {
	// Explicit colors resolve to themselves.
	c := RGB(0.2, 0.4, 0.6)
	if got := c.Resolve(White); got != c {
		t.Errorf("explicit Resolve = %v, want %v", got, c)
	}

	// Deferred colors complement the background once it is known.
	if got := Complement().Resolve(White); got != Grey(0) {
		t.Errorf("complement of white = %v, want black", got)
	}
	if got := Complement().Resolve(Grey(0.3)); got != Grey(0.7) {
		t.Errorf("complement of grey 0.3 = %v, want grey 0.7", got)
	}
	if got := Complement().Resolve(RGB(1, 0, 0.25)); got != RGB(0, 1, 0.75) {
		t.Errorf("complement of rgb = %v", got)
	}
}

func TestColorDeferred(t *testing.T) {
	if !Complement().IsDeferred() {
		t.Error("Complement should be deferred")
	}
	if Black.IsDeferred() {
		t.Error("Black should not be deferred")
	}

	defer func() {
		if recover() == nil {
			t.Error("PS() on a deferred color should panic")
		}
	}()
	_ = Complement().PS()
}
