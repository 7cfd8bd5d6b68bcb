package route

import (
	"context"
	"sync"

	"backend-walkloop/internal/goal"
	"backend-walkloop/internal/shared/geo"
)

// Generator fans a goal out to every configured route variant and collects
// whatever succeeded, in the fixed variant declaration order.
type Generator struct {
	geometric *GeometricBuilder
	street    *StreetBuilder
}

func NewGenerator(geometric *GeometricBuilder, street *StreetBuilder) *Generator {
	return &Generator{geometric: geometric, street: street}
}

// Generate resolves the goal to a target distance and runs both builders
// concurrently. Each builder owns its variant declaration order and collects
// positionally, so the output order never depends on completion order:
// geometric variants first, then street variants, dropping the ones that
// produced nothing. Every variant failing yields an empty slice, not an
// error.
func (g *Generator) Generate(ctx context.Context, start geo.Point, gl goal.Goal) []Route {
	targetM := goal.ResolveDistance(gl)

	var geometric []Route
	var street []*Route
	var wg sync.WaitGroup
	if g.geometric != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			geometric = g.geometric.Build(start, targetM)
		}()
	}
	if g.street != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			street = g.street.Build(ctx, start, targetM)
		}()
	}
	wg.Wait()

	routes := make([]Route, 0, len(geometric)+len(street))
	routes = append(routes, geometric...)
	for _, r := range street {
		if r != nil {
			routes = append(routes, *r)
		}
	}
	return routes
}
