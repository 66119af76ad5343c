package core

import "testing"

func TestActionDeflection(t *testing.T) {
	tests := []struct {
		action Action
		want   Vec2
	}{
		{ActionUp, V(0, -1)},
		{ActionDown, V(0, 1)},
		{ActionLeft, V(-1, 0)},
		{ActionRight, V(1, 0)},
		{ActionButton, V(0, 0)},
		{ActionNone, V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.Deflection(); got != tc.want {
				t.Errorf("Deflection() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestParseTint(t *testing.T) {
	if tint, ok := ParseTint("amber"); !ok || tint != TintAmber {
		t.Errorf("ParseTint(amber) = %v, %v", tint, ok)
	}
	if tint, ok := ParseTint("pink"); ok || tint != TintWhite {
		t.Errorf("ParseTint(pink) = %v, %v, expected white fallback", tint, ok)
	}
}
