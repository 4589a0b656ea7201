package zorder

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/outofforest/zorder/fingerprint"
	"github.com/outofforest/zorder/types"
)

// Config stores configuration of batch reordering.
type Config struct {
	NumOfWorkers uint64
}

// DefaultConfig returns configuration running one worker per CPU.
func DefaultConfig() Config {
	return Config{
		NumOfWorkers: uint64(runtime.NumCPU()),
	}
}

// Mesh is the set of mesh nodes with payload aligned to them.
type Mesh[T any] struct {
	Points  []types.Point
	Payload []T
}

type layout struct {
	points []types.Point
	meshes []int
}

// ReorderAll reorders each mesh in Morton order. Permutation is computed once for meshes sharing
// the same point layout. Meshes are not modified.
func ReorderAll[T any](ctx context.Context, config Config, meshes []Mesh[T]) ([]Mesh[T], error) {
	if config.NumOfWorkers == 0 {
		return nil, errors.Wrap(types.ErrInvalidInput, "number of workers must be positive")
	}
	for i, m := range meshes {
		if len(m.Points) != len(m.Payload) {
			return nil, errors.Wrapf(types.ErrInvalidInput, "mesh %d: %d points but %d payload items", i,
				len(m.Points), len(m.Payload))
		}
	}

	if len(meshes) == 0 {
		return []Mesh[T]{}, nil
	}

	log := logger.Get(ctx)

	layouts := distinctLayouts(meshes)
	log.Debug("Reordering meshes", zap.Int("meshes", len(meshes)), zap.Int("layouts", len(layouts)))

	jobCh := make(chan int, len(layouts))
	for i := range layouts {
		jobCh <- i
	}
	close(jobCh)

	perms := make([][]int, len(layouts))
	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i := range min(config.NumOfWorkers, uint64(len(layouts))) {
			spawn(fmt.Sprintf("worker-%02d", i), parallel.Continue, func(ctx context.Context) error {
				for l := range jobCh {
					if err := ctx.Err(); err != nil {
						return errors.WithStack(err)
					}

					perm, err := Permutation(layouts[l].points)
					if err != nil {
						return errors.WithMessagef(err, "mesh %d", layouts[l].meshes[0])
					}
					perms[l] = perm

					log.Debug("Layout reordered",
						zap.Int("points", len(perm)),
						zap.Ints("meshes", layouts[l].meshes))
				}
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]Mesh[T], len(meshes))
	for l, lt := range layouts {
		for _, i := range lt.meshes {
			result[i] = Mesh[T]{
				Points:  Apply(meshes[i].Points, perms[l]),
				Payload: Apply(meshes[i].Payload, perms[l]),
			}
		}
	}

	log.Info("Meshes reordered", zap.Int("meshes", len(meshes)), zap.Int("layouts", len(layouts)))
	return result, nil
}

func distinctLayouts[T any](meshes []Mesh[T]) []layout {
	layouts := []layout{}
	byHash := map[uint64][]int{}
	for i, m := range meshes {
		hash := fingerprint.Points(m.Points)

		found := false
		for _, l := range byHash[hash] {
			if slices.Equal(layouts[l].points, m.Points) {
				layouts[l].meshes = append(layouts[l].meshes, i)
				found = true
				break
			}
		}
		if found {
			continue
		}

		byHash[hash] = append(byHash[hash], len(layouts))
		layouts = append(layouts, layout{
			points: m.Points,
			meshes: []int{i},
		})
	}
	return layouts
}
