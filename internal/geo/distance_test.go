package geo

import (
	"math"
	"testing"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	if d := DistanceKm(18.5204, 73.8567, 18.5204, 73.8567); d != 0 {
		t.Errorf("расстояние до самой точки должно быть 0, получено %v", d)
	}
}

func TestDistanceKmKnownPairs(t *testing.T) {
	// Мумбаи - Пуна, по прямой около 120 км
	d := DistanceKm(19.0760, 72.8777, 18.5204, 73.8567)
	if math.Abs(d-120) > 5 {
		t.Errorf("Мумбаи-Пуна около 120 км, получено %v", d)
	}

	// Мумбаи - Гоа, около 440 км
	d = DistanceKm(19.0760, 72.8777, 15.2993, 74.1240)
	if math.Abs(d-440) > 15 {
		t.Errorf("Мумбаи-Гоа около 440 км, получено %v", d)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(19.0760, 72.8777, 15.2993, 74.1240)
	b := DistanceKm(15.2993, 74.1240, 19.0760, 72.8777)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("расстояние должно быть симметричным: %v != %v", a, b)
	}
}
