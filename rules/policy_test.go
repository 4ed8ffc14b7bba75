package rules

import (
	"reflect"
	"testing"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		v, min, max, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{11, 1, 10, 10},
	}
	for _, tc := range tests {
		if got := clampInt(tc.v, tc.min, tc.max); got != tc.want {
			t.Errorf("clampInt(%d, %d, %d) = %d, want %d", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.5, 0, 1, 0.0},
		{1.5, 0, 1, 1.0},
	}
	for _, tc := range tests {
		if got := clamp(tc.v, tc.min, tc.max); got != tc.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestDefaultPolicyIsValid(t *testing.T) {
	p := DefaultPolicy()
	before := p
	p.Validate()
	if !reflect.DeepEqual(p, before) {
		t.Errorf("Validate changed the default policy: %+v -> %+v", before, p)
	}
}

func TestPolicyValidateClamps(t *testing.T) {
	p := Policy{
		SchoolGold:      -5,
		LibraryLevel:    0,
		MaxHeroes:       99,
		SafeAttackRatio: 0.5,
		MainHeroes:      0,
	}
	p.Validate()

	if p.SchoolGold != 0 {
		t.Errorf("SchoolGold = %d, want 0", p.SchoolGold)
	}
	if p.LibraryLevel != 1 {
		t.Errorf("LibraryLevel = %d, want 1", p.LibraryLevel)
	}
	if p.MaxHeroes != 16 {
		t.Errorf("MaxHeroes = %d, want 16", p.MaxHeroes)
	}
	if p.SafeAttackRatio != 1 {
		t.Errorf("SafeAttackRatio = %f, want 1", p.SafeAttackRatio)
	}
	if p.MainHeroes != 1 {
		t.Errorf("MainHeroes = %d, want 1", p.MainHeroes)
	}
	if p.NearbyCost != 1 {
		t.Errorf("NearbyCost = %f, want 1", p.NearbyCost)
	}
}
