package capture

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/plan"
)

// CaptureObjects produces visit goals either for a fixed list of objects or
// for every clustered object matching kind/sub-id filters. The mode is fixed
// at construction.
type CaptureObjects struct {
	specific bool
	objects  []*model.Object
	kinds    []model.ObjectKind
	subIDs   []int
}

// ForObjects captures exactly the given objects.
func ForObjects(objects ...*model.Object) *CaptureObjects {
	return &CaptureObjects{specific: true, objects: objects}
}

// ForKinds captures clustered objects. An empty filter list matches
// everything; sub-ids only make sense together with kinds.
func ForKinds(kinds []model.ObjectKind, subIDs []int) *CaptureObjects {
	return &CaptureObjects{kinds: kinds, subIDs: subIDs}
}

// Specific reports whether the behavior targets an explicit object list.
func (b *CaptureObjects) Specific() bool { return b.specific }

func (b *CaptureObjects) String() string { return "Capture objects" }

// Equal reports whether two behaviors are near enough to deduplicate: same
// mode and overlapping targets. In filtered mode both the kind lists and the
// sub-id lists must share an element.
func (b *CaptureObjects) Equal(other *CaptureObjects) bool {
	if b.specific != other.specific {
		return false
	}
	if b.specific {
		return overlaps(objectIDs(b.objects), objectIDs(other.objects))
	}
	return overlaps(b.kinds, other.kinds) && overlaps(b.subIDs, other.subIDs)
}

// Decompose evaluates the candidates and returns the visit goals. Nearby
// objects go first; far ones are only scanned when nothing nearby produced a
// goal. The result never holds an Invalid goal.
func (b *CaptureObjects) Decompose(ctx context.Context, svc Services) []plan.Goal {
	start := time.Now()
	met := svc.metrics()
	var tasks []plan.Goal

	captureObjects := func(bucket string, objs []*model.Object) {
		if len(objs) == 0 {
			return
		}
		slog.Debug("scanning objects", "bucket", bucket, "count", len(objs))
		met.RecordScan(ctx, bucket, len(objs))

		for _, obj := range objs {
			slog.Debug("checking object", "object", obj.String())

			if !b.shouldVisitObject(obj) {
				continue
			}
			paths := svc.Paths.PathsTo(obj.Pos)
			slog.Debug("found paths", "object", obj.ID, "count", len(paths))

			tasks = append(tasks, visitGoals(ctx, svc, paths, obj)...)
		}

		tasks = slices.DeleteFunc(tasks, plan.IsInvalid)
	}

	if b.specific {
		captureObjects("specific", b.objects)
	} else {
		captureObjects("nearby", svc.Clusters.NearbyObjects())
		if len(tasks) == 0 {
			captureObjects("far", svc.Clusters.FarObjects())
		}
	}

	for _, g := range tasks {
		met.RecordGoal(ctx, string(g.Kind()))
	}
	met.DecomposeDuration.Record(ctx, time.Since(start).Seconds())
	return tasks
}

func (b *CaptureObjects) shouldVisitObject(obj *model.Object) bool {
	if len(b.kinds) > 0 && !slices.Contains(b.kinds, obj.Kind) {
		return false
	}
	if len(b.subIDs) > 0 && !slices.Contains(b.subIDs, obj.SubID) {
		return false
	}
	return true
}

// overlaps is true when a and b share at least one element.
func overlaps[T comparable](a, b []T) bool {
	return slices.ContainsFunc(a, func(v T) bool {
		return slices.Contains(b, v)
	})
}

func objectIDs(objs []*model.Object) []int {
	ids := make([]int, len(objs))
	for i, o := range objs {
		ids[i] = o.ID
	}
	return ids
}
