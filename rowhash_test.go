package stitch

import "testing"

func TestHashBand(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		lo, hi int
	}{
		{name: "typical watch width", width: 320, lo: 96, hi: 224},
		{name: "width 10", width: 10, lo: 3, hi: 7},
		{name: "width 7 truncates", width: 7, lo: 2, hi: 4},
		{name: "width 2 single column", width: 2, lo: 0, hi: 1},
		{name: "width 1 empty", width: 1, lo: 0, hi: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := hashBand(tt.width)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("hashBand(%d) = [%d, %d), want [%d, %d)", tt.width, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestDegenerateBand(t *testing.T) {
	if !DegenerateBand(1) {
		t.Error("DegenerateBand(1) = false, want true")
	}
	if DegenerateBand(2) {
		t.Error("DegenerateBand(2) = true, want false")
	}
	if DegenerateBand(320) {
		t.Error("DegenerateBand(320) = true, want false")
	}
}

func TestRowHashes_KnownValue(t *testing.T) {
	// Width 10 samples columns [3, 7). Reproduce the Horner scheme by
	// hand and compare.
	f := NewFrame(10, 2)
	for x := 0; x < 10; x++ {
		f.SetPixel(x, 0, Pixel{R: uint8(x), G: uint8(x * 2), B: uint8(x * 3), A: 255})
		f.SetPixel(x, 1, Pixel{R: 200, G: 100, B: 50, A: 255})
	}

	want := make([]uint64, 2)
	for y := 0; y < 2; y++ {
		h := uint64(1)
		for x := 3; x < 7; x++ {
			p := f.Pixel(x, y)
			h = h*31 + (uint64(p.R)<<16 | uint64(p.G)<<8 | uint64(p.B))
		}
		want[y] = h
	}

	got := RowHashes(f)
	if len(got) != 2 {
		t.Fatalf("len(RowHashes) = %d, want 2", len(got))
	}
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d hash = %d, want %d", y, got[y], want[y])
		}
	}
}

func TestRowHashes_Deterministic(t *testing.T) {
	f := rowFrame(64, 128, func(y int) Pixel {
		return Pixel{R: uint8(y), G: uint8(y * 3), B: uint8(255 - y), A: 255}
	})

	first := RowHashes(f)
	for run := 0; run < 5; run++ {
		again := RowHashes(f)
		for y := range first {
			if again[y] != first[y] {
				t.Fatalf("run %d: row %d hash changed: %d != %d", run, y, again[y], first[y])
			}
		}
	}
}

func TestRowHashes_BandLocality(t *testing.T) {
	base := solidFrame(10, 4, Pixel{R: 120, G: 130, B: 140, A: 255})
	want := RowHashes(base)

	t.Run("edge pixels do not affect the hash", func(t *testing.T) {
		f := solidFrame(10, 4, Pixel{R: 120, G: 130, B: 140, A: 255})
		f.SetPixel(0, 1, Pixel{R: 1, G: 2, B: 3, A: 255})
		f.SetPixel(9, 1, Pixel{R: 4, G: 5, B: 6, A: 255})
		got := RowHashes(f)
		for y := range want {
			if got[y] != want[y] {
				t.Errorf("row %d hash changed by out-of-band pixel", y)
			}
		}
	})

	t.Run("band pixels do affect the hash", func(t *testing.T) {
		f := solidFrame(10, 4, Pixel{R: 120, G: 130, B: 140, A: 255})
		f.SetPixel(4, 1, Pixel{R: 1, G: 2, B: 3, A: 255})
		got := RowHashes(f)
		if got[1] == want[1] {
			t.Error("row 1 hash unchanged by in-band pixel")
		}
		if got[0] != want[0] || got[2] != want[2] {
			t.Error("other rows changed by a row 1 edit")
		}
	})

	t.Run("alpha is ignored", func(t *testing.T) {
		f := solidFrame(10, 4, Pixel{R: 120, G: 130, B: 140, A: 7})
		got := RowHashes(f)
		for y := range want {
			if got[y] != want[y] {
				t.Errorf("row %d hash depends on alpha", y)
			}
		}
	})
}

func TestRowHashes_DegenerateWidth(t *testing.T) {
	f := rowFrame(1, 3, func(y int) Pixel {
		return Pixel{R: uint8(y * 50), A: 255}
	})
	for y, h := range RowHashes(f) {
		if h != 1 {
			t.Errorf("row %d hash = %d, want seed value 1 for empty band", y, h)
		}
	}
}
