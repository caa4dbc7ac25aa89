package cli

import "testing"

func TestClampBlockSizes(t *testing.T) {
	tests := []struct {
		name             string
		minIn, maxIn     int
		wantMin, wantMax int
	}{
		{"valid", 3, 8, 3, 8},
		{"equal", 4, 4, 4, 4},
		{"zero min", 0, 5, 1, 5},
		{"negative min", -2, 5, 1, 5},
		{"max below min", 6, 2, 6, 6},
		{"both invalid", 0, -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := clampBlockSizes(tt.minIn, tt.maxIn)
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf(
					"clampBlockSizes(%d, %d) = (%d, %d), want (%d, %d)",
					tt.minIn, tt.maxIn, gotMin, gotMax, tt.wantMin, tt.wantMax,
				)
			}
		})
	}
}
