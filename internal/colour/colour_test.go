package colour

import (
	"image/color"
	"math/rand"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "black",
			input: "#000000",
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:  "white",
			input: "#FFFFFF",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "mixed case",
			input: "#1A2b3C",
			want:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
		},
		{
			name:    "missing prefix",
			input:   "000000",
			wantErr: true,
		},
		{
			name:    "shorthand rejected",
			input:   "#FFF",
			wantErr: true,
		},
		{
			name:    "too many digits",
			input:   "#1234567",
			wantErr: true,
		},
		{
			name:    "too few digits",
			input:   "#12345",
			wantErr: true,
		},
		{
			name:    "non-hex digits",
			input:   "#GGHHII",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare prefix",
			input:   "#",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: "#000000",
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: "#ffffff",
		},
		{
			name: "mixed",
			rgb:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
			want: "#1a2b3c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	rgb := RGB{R: 255, G: 128, B: 0}
	want := "rgb(255, 128, 0)"
	if got := rgb.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestRGBColor(t *testing.T) {
	rgb := RGB{R: 10, G: 20, B: 30}
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got := rgb.Color(); got != want {
		t.Errorf("Color() = %+v, want %+v", got, want)
	}
}

func TestDefault(t *testing.T) {
	pal := Default()

	if len(pal) != 2 {
		t.Fatalf("Default() returned %d colours, want 2", len(pal))
	}
	if pal[0] != (RGB{R: 0, G: 0, B: 0}) {
		t.Errorf("Default()[0] = %+v, want black", pal[0])
	}
	if pal[1] != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("Default()[1] = %+v, want white", pal[1])
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    Palette
		wantErr bool
	}{
		{
			name:   "empty list",
			tokens: []string{},
			want:   Palette{},
		},
		{
			name:   "single colour",
			tokens: []string{"#FF0000"},
			want:   Palette{{R: 255, G: 0, B: 0}},
		},
		{
			name:   "multiple colours",
			tokens: []string{"#000000", "#ffffff", "#1A2B3C"},
			want: Palette{
				{R: 0, G: 0, B: 0},
				{R: 255, G: 255, B: 255},
				{R: 0x1a, G: 0x2b, B: 0x3c},
			},
		},
		{
			name:    "malformed token fails the list",
			tokens:  []string{"#000000", "FFFFFF"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.tokens)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%v) error = %v, wantErr %v", tt.tokens, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%v) returned %d colours, want %d", tt.tokens, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%v)[%d] = %+v, want %+v", tt.tokens, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPalettePick(t *testing.T) {
	pal := Palette{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}
	rng := rand.New(rand.NewSource(1))

	seen := make(map[RGB]int)
	for i := 0; i < 300; i++ {
		c := pal.Pick(rng)

		found := false
		for _, member := range pal {
			if c == member {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Pick() returned %+v, not a palette member", c)
		}
		seen[c]++
	}

	// Every member should turn up over 300 uniform picks.
	for _, member := range pal {
		if seen[member] == 0 {
			t.Errorf("Pick() never returned %+v over 300 draws", member)
		}
	}
}

func TestPalettePickDeterministic(t *testing.T) {
	pal := Default()

	first := make([]RGB, 50)
	rng := rand.New(rand.NewSource(42))
	for i := range first {
		first[i] = pal.Pick(rng)
	}

	rng = rand.New(rand.NewSource(42))
	for i := range first {
		if got := pal.Pick(rng); got != first[i] {
			t.Fatalf("Pick() draw %d = %+v, want %+v (same seed should repeat)", i, got, first[i])
		}
	}
}

func TestPaletteHexes(t *testing.T) {
	pal := Palette{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
	}

	want := []string{"#000000", "#ffffff"}
	got := pal.Hexes()

	if len(got) != len(want) {
		t.Fatalf("Hexes() returned %d entries, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Hexes()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
