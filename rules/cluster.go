package rules

import (
	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/plan"
)

// PathSource is the part of the pathfinder the clusterer needs.
type PathSource interface {
	PathsTo(pos model.Pos) []plan.Path
}

// Clusters splits objects by travel cost: anything the cheapest known path
// reaches within the nearby radius is nearby, the rest is far. Objects no
// path reaches are left out.
type Clusters struct {
	nearby []*model.Object
	far    []*model.Object
}

func ClusterObjects(objects []model.Object, paths PathSource, nearbyCost float64) *Clusters {
	c := &Clusters{}
	for i := range objects {
		obj := &objects[i]
		cheapest, found := cheapestCost(paths.PathsTo(obj.Pos))
		if !found {
			continue
		}
		if cheapest <= nearbyCost {
			c.nearby = append(c.nearby, obj)
		} else {
			c.far = append(c.far, obj)
		}
	}
	return c
}

func (c *Clusters) NearbyObjects() []*model.Object { return c.nearby }
func (c *Clusters) FarObjects() []*model.Object    { return c.far }

func cheapestCost(paths []plan.Path) (float64, bool) {
	if len(paths) == 0 {
		return 0, false
	}
	best := paths[0].Cost
	for _, p := range paths[1:] {
		if p.Cost < best {
			best = p.Cost
		}
	}
	return best, true
}
