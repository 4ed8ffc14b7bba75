package rules

import (
	"testing"

	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/plan"
)

type pathMap map[model.Pos][]plan.Path

func (m pathMap) PathsTo(pos model.Pos) []plan.Path { return m[pos] }

func TestClusterObjects(t *testing.T) {
	near := model.Pos{X: 1}
	far := model.Pos{X: 2}
	unreachable := model.Pos{X: 3}

	objects := []model.Object{
		{ID: 1, Pos: near},
		{ID: 2, Pos: far},
		{ID: 3, Pos: unreachable},
	}
	paths := pathMap{
		near: {{Cost: 3000}, {Cost: 500}},
		far:  {{Cost: 2500}},
	}

	c := ClusterObjects(objects, paths, 2000)
	if len(c.NearbyObjects()) != 1 || c.NearbyObjects()[0].ID != 1 {
		t.Errorf("nearby = %v, want object 1", c.NearbyObjects())
	}
	if len(c.FarObjects()) != 1 || c.FarObjects()[0].ID != 2 {
		t.Errorf("far = %v, want object 2", c.FarObjects())
	}
}
