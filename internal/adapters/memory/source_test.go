package memory

import (
	"context"
	"route-verifier-service/internal/domain"
	"route-verifier-service/internal/ports"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	ctx := context.Background()
	src := NewSource(
		[]domain.Edge{{Source: 0, Target: 1, Weight: 1}},
		Instance{Index: 7, Workers: []domain.Worker{{Location: 1, Radius: 2}}, Route: domain.Route{0, 1}},
		Instance{Index: 2, Route: domain.Route{0}},
	)

	idx, err := src.ListInstances(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 7}, idx)

	workers, err := src.LoadWorkers(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []domain.Worker{{Location: 1, Radius: 2}}, workers)

	route, err := src.LoadRoute(ctx, 7)
	require.NoError(t, err)
	route[0] = 99

	again, err := src.LoadRoute(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.Route{0, 1}, again, "loaded routes are copies")

	_, err = src.LoadWorkers(ctx, 3)
	assert.ErrorIs(t, err, ports.ErrInstanceNotFound)
	_, err = src.LoadRoute(ctx, 3)
	assert.ErrorIs(t, err, ports.ErrInstanceNotFound)
}
