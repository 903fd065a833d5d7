package timecode

import (
	"math/rand"
	"testing"
)

func TestParse_Strict(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"00:00:00.000", 0},
		{"00:00:01.000", 1},
		{"00:00:03.500", 3.5},
		{"01:02:03.456", 3723.456},
		{"99:00:00.000", 356400},
	}
	for _, c := range cases {
		if got := Parse(c.in); got != c.want {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParse_MalformedYieldsZero(t *testing.T) {
	for _, in := range []string{"", "garbage", "1:2:3.4", "00:00:00", "00:00:00.00", "00:00:00,000", " 00:00:00.000"} {
		if got := Parse(in); got != 0 {
			t.Fatalf("Parse(%q) = %v, want 0", in, got)
		}
	}
}

func TestFormat_NegativeClamp(t *testing.T) {
	if got := Format(-5); got != "00:00:00.000" {
		t.Fatalf("Format(-5) = %q", got)
	}
	if Format(-5) != Format(0) {
		t.Fatalf("negative clamp differs from Format(0)")
	}
}

func TestFormat_TruncatesSubMillisecond(t *testing.T) {
	if got := Format(1.0005); got != "00:00:01.000" {
		t.Fatalf("Format(1.0005) = %q, want 00:00:01.000", got)
	}
}

func TestFormat_HoursUnbounded(t *testing.T) {
	if got := Format(359999.999); got != "99:59:59.999" {
		t.Fatalf("Format(359999.999) = %q", got)
	}
	if got := Format(100 * 3600); got != "100:00:00.000" {
		t.Fatalf("Format(360000) = %q", got)
	}
}

func TestRoundTrip_MillisecondGrain(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		ms := rng.Int63n(359999999 + 1)
		x := float64(ms) / 1000.0
		if got := Parse(Format(x)); got != x {
			t.Fatalf("round trip failed for %v: Format=%q Parse=%v", x, Format(x), got)
		}
	}
	for _, x := range []float64{0, 0.001, 8.3, 59.999, 3600, 359999.999} {
		if got := Parse(Format(x)); got != x {
			t.Fatalf("round trip failed for %v: Format=%q Parse=%v", x, Format(x), got)
		}
	}
}

func TestParseLenient(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0:0:1", 1},
		{"0:0:3.5", 3.5},
		{"1:2:3", 3723},
		{"00:00:01.000", 1},
		{"10:20:30.25", 37230.25},
		{" 0:0:1 ", 1},
	}
	for _, c := range cases {
		if got := ParseLenient(c.in); got != c.want {
			t.Fatalf("ParseLenient(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, in := range []string{"", "1:2", "a:b:c", "1:2:3:4", "-1:0:0"} {
		if got := ParseLenient(in); got != 0 {
			t.Fatalf("ParseLenient(%q) = %v, want 0", in, got)
		}
	}
}
