package slicer_test

import (
	"testing"

	"github.com/layerbylayersg/slicer-estimate-api/internal/slicer"
)

func TestParseFilamentGrams(t *testing.T) {
	tests := []struct {
		name  string
		gcode string
		want  float64
		found bool
	}{
		{
			name:  "bracket style",
			gcode: "; filament used [mm] = 4219.1\n; filament used [g] = 12.57\n; total filament cost = 0.4",
			want:  12.57,
			found: true,
		},
		{
			name:  "legacy style",
			gcode: "; Filament used: 8.3 g\n",
			want:  8.3,
			found: true,
		},
		{
			name:  "no spaces around equals",
			gcode: "; filament used [g] =3.25",
			want:  3.25,
			found: true,
		},
		{
			name:  "absent",
			gcode: "G1 X10 Y10 E0.5\n; estimated printing time (normal mode) = 5m 3s",
			want:  0,
			found: false,
		},
		{
			name:  "empty",
			gcode: "",
			want:  0,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := slicer.ParseFilamentGrams(tt.gcode)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("grams = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePrintTimeSeconds(t *testing.T) {
	tests := []struct {
		name  string
		gcode string
		want  int64
		found bool
	}{
		{
			name:  "hours minutes seconds",
			gcode: "; estimated printing time (normal mode) = 1h 35m 10s",
			want:  5710,
			found: true,
		},
		{
			name:  "minutes seconds",
			gcode: "; estimated printing time (normal mode) = 42m 7s",
			want:  2527,
			found: true,
		},
		{
			name:  "seconds only",
			gcode: "; estimated printing time (normal mode) = 58s",
			want:  58,
			found: true,
		},
		{
			name:  "case insensitive",
			gcode: "; Estimated Printing Time (silent mode) = 2h 1m 0s",
			want:  7260,
			found: true,
		},
		{
			name:  "absent",
			gcode: "; filament used [g] = 12.57",
			want:  0,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := slicer.ParsePrintTimeSeconds(tt.gcode)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("seconds = %d, want %d", got, tt.want)
			}
		})
	}
}
