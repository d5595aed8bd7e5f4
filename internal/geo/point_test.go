package geo

import "testing"

func TestHaversineZeroAndSymmetry(t *testing.T) {
	a := Point{Lat: 407838400, Lon: -746143700}
	b := Point{Lat: 419999500, Lon: -740371000}
	if d := Haversine(a, a); d != 0 {
		t.Fatalf("distance to self = %d, want 0", d)
	}
	if Haversine(a, b) != Haversine(b, a) {
		t.Fatalf("distance not symmetric")
	}
}

func TestHaversineOneDegreeLatitude(t *testing.T) {
	// One degree of latitude on a 6371000 m sphere is 111194.92... m,
	// truncated to whole meters.
	d := Haversine(Point{}, Point{Lat: 10000000})
	if d != 111194 {
		t.Fatalf("one degree latitude = %d, want 111194", d)
	}
}

func TestHaversineTruncatesSubMeter(t *testing.T) {
	// One E7 unit is ~11 mm of latitude; whole-meter truncation yields 0.
	if d := Haversine(Point{}, Point{Lat: 1}); d != 0 {
		t.Fatalf("sub-meter distance = %d, want 0", d)
	}
}

func TestRectContains(t *testing.T) {
	cases := []struct {
		name string
		r    Rect
		p    Point
		want bool
	}{
		{"inside", Rect{Lo: Point{0, 0}, Hi: Point{10, 10}}, Point{5, 5}, true},
		{"on corner", Rect{Lo: Point{0, 0}, Hi: Point{10, 10}}, Point{10, 10}, true},
		{"on edge", Rect{Lo: Point{0, 0}, Hi: Point{10, 10}}, Point{0, 7}, true},
		{"outside lat", Rect{Lo: Point{0, 0}, Hi: Point{10, 10}}, Point{11, 5}, false},
		{"outside lon", Rect{Lo: Point{0, 0}, Hi: Point{10, 10}}, Point{5, -1}, false},
		{"swapped corners", Rect{Lo: Point{10, 10}, Hi: Point{0, 0}}, Point{5, 5}, true},
		{"negative range", Rect{Lo: Point{-10, -10}, Hi: Point{-2, -2}}, Point{-5, -5}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r.Contains(c.p); got != c.want {
				t.Fatalf("Contains(%+v)=%v want %v", c.p, got, c.want)
			}
		})
	}
}
