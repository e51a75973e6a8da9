package geo

import (
	"math"
	"testing"

	"staymate/models"
)

func TestDistanceSamePoint(t *testing.T) {
	p := models.Coordinates{Latitude: 12.9716, Longitude: 77.5946}
	if d := Distance(p, p); math.Abs(d) > 1e-9 {
		t.Errorf("Distance(p, p) = %f; want 0", d)
	}
}

func TestDistanceOneDegreeLatitudeAtEquator(t *testing.T) {
	a := models.Coordinates{Latitude: 0, Longitude: 0}
	b := models.Coordinates{Latitude: 1, Longitude: 0}
	d := Distance(a, b)
	// one degree of latitude is roughly 111 km
	if d < 110 || d > 112 {
		t.Errorf("Distance = %f km; want ~111", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := models.Coordinates{Latitude: 12.9716, Longitude: 77.5946}
	b := models.Coordinates{Latitude: 12.9279, Longitude: 77.6271}
	if d1, d2 := Distance(a, b), Distance(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestDistanceNaNPropagates(t *testing.T) {
	a := models.Coordinates{Latitude: math.NaN(), Longitude: 0}
	b := models.Coordinates{Latitude: 1, Longitude: 0}
	if d := Distance(a, b); !math.IsNaN(d) {
		t.Errorf("Distance with NaN input = %f; want NaN", d)
	}
}
