package geo

import "testing"

func TestInRectBoundary(t *testing.T) {
	simple := Boundary{
		NE: Point{Lat: 10, Lng: 10},
		SW: Point{Lat: -10, Lng: -10},
	}

	t.Run("Inside", func(t *testing.T) {
		if !InRectBoundary(Point{Lat: 0, Lng: 0}, simple) {
			t.Error("origin should be inside the ±10° box")
		}
	})

	t.Run("Outside", func(t *testing.T) {
		outside := []Point{
			{Lat: 20, Lng: 0},
			{Lat: -20, Lng: 0},
			{Lat: 0, Lng: 20},
			{Lat: 0, Lng: -20},
		}
		for _, p := range outside {
			if InRectBoundary(p, simple) {
				t.Errorf("point %+v should be outside the ±10° box", p)
			}
		}
	})

	t.Run("EdgesAreExclusive", func(t *testing.T) {
		edges := []Point{
			{Lat: 10, Lng: 0},   // on NE.Lat
			{Lat: -10, Lng: 0},  // on SW.Lat
			{Lat: 0, Lng: 10},   // on NE.Lng
			{Lat: 0, Lng: -10},  // on SW.Lng
			{Lat: 10, Lng: 10},  // NE corner
			{Lat: -10, Lng: -10}, // SW corner
		}
		for _, p := range edges {
			if InRectBoundary(p, simple) {
				t.Errorf("point %+v lies exactly on an edge and should be reported outside", p)
			}
		}
	})

	t.Run("AntimeridianCrossingBox", func(t *testing.T) {
		// NE.Lng < SW.Lng signals a box spanning the date line
		// (160°E eastward to 170°W).
		box := Boundary{
			NE: Point{Lat: 10, Lng: -170},
			SW: Point{Lat: -10, Lng: 160},
		}

		if !InRectBoundary(Point{Lat: 0, Lng: 170}, box) {
			t.Error("170°E should be inside the date-line-crossing box")
		}
		if !InRectBoundary(Point{Lat: 0, Lng: -175}, box) {
			t.Error("175°W should be inside the date-line-crossing box")
		}
		if InRectBoundary(Point{Lat: 0, Lng: 0}, box) {
			t.Error("0°E should be outside the date-line-crossing box")
		}
		if InRectBoundary(Point{Lat: 15, Lng: 170}, box) {
			t.Error("latitude outside the box should fail containment even in the wrapped zone")
		}
	})
}

func TestBoundaryFromPoints(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if _, err := BoundaryFromPoints(nil); err == nil {
			t.Error("expected an error for an empty point set")
		}
	})

	t.Run("SweepsMinMaxCorners", func(t *testing.T) {
		pts := []Point{
			{Lat: 47.60, Lng: -122.33},
			{Lat: 47.68, Lng: -122.38},
			{Lat: 47.55, Lng: -122.29},
		}
		b, err := BoundaryFromPoints(pts)
		if err != nil {
			t.Fatalf("BoundaryFromPoints failed: %v", err)
		}
		want := Boundary{
			NE: Point{Lat: 47.68, Lng: -122.29},
			SW: Point{Lat: 47.55, Lng: -122.38},
		}
		if b != want {
			t.Errorf("BoundaryFromPoints = %+v, want %+v", b, want)
		}
	})

	t.Run("SinglePointDegenerateBoundary", func(t *testing.T) {
		b, err := BoundaryFromPoints([]Point{{Lat: 1, Lng: 2}})
		if err != nil {
			t.Fatalf("BoundaryFromPoints failed: %v", err)
		}
		if b.NE != b.SW {
			t.Errorf("single point boundary should collapse, got %+v", b)
		}
	})
}

func TestIsValidLatLon(t *testing.T) {
	valid := [][2]float64{{47.6, -122.3}, {-33.9, 151.2}, {90, 180}, {-90, -180}}
	for _, c := range valid {
		if !IsValidLatLon(c[0], c[1]) {
			t.Errorf("IsValidLatLon(%v, %v) = false, want true", c[0], c[1])
		}
	}

	invalid := [][2]float64{{0, 0}, {91, 0}, {-91, 0}, {0, 181}, {0, -181}}
	for _, c := range invalid {
		if IsValidLatLon(c[0], c[1]) {
			t.Errorf("IsValidLatLon(%v, %v) = true, want false", c[0], c[1])
		}
	}
}

func TestBoundaryStore(t *testing.T) {
	store := NewBoundaryStore()
	box := Boundary{
		NE: Point{Lat: 48, Lng: -122},
		SW: Point{Lat: 47, Lng: -123},
	}

	t.Run("GetMissing", func(t *testing.T) {
		if _, ok := store.Get(1); ok {
			t.Error("expected no boundary before Set")
		}
	})

	t.Run("SetAndGet", func(t *testing.T) {
		store.Set(1, box)
		got, ok := store.Get(1)
		if !ok {
			t.Fatal("expected boundary after Set")
		}
		if got != box {
			t.Errorf("Get = %+v, want %+v", got, box)
		}
	})

	t.Run("Contains", func(t *testing.T) {
		inside, known := store.Contains(1, 47.5, -122.5)
		if !known {
			t.Fatal("region 1 should be known")
		}
		if !inside {
			t.Error("point should be inside region 1")
		}

		inside, known = store.Contains(1, 40, -122.5)
		if !known || inside {
			t.Errorf("point south of the box: inside=%v known=%v, want inside=false known=true", inside, known)
		}

		if _, known := store.Contains(99, 47.5, -122.5); known {
			t.Error("unknown region should report known=false")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store.Delete(1)
		if _, ok := store.Get(1); ok {
			t.Error("expected boundary to be gone after Delete")
		}
	})
}
