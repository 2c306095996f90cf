package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resourcetypes "github.com/orcastack/core/resource/types"
	coretypes "github.com/orcastack/core/types"
)

func TestLocalProfileHasNoID(t *testing.T) {
	ctx := context.Background()
	b := newLocalBuilder(t)

	profile, err := b.Build(ctx)
	require.NoError(t, err)

	_, err = profile.ID(ctx)
	assert.ErrorIs(t, err, coretypes.ErrProfileNotRegistered)

	// still failing on retry, registration is the engine's move
	_, err = profile.ID(ctx)
	assert.ErrorIs(t, err, coretypes.ErrProfileNotRegistered)
}

func TestProfileMapsAreImmutable(t *testing.T) {
	ctx := context.Background()
	b := newLocalBuilder(t)

	tasks, err := NewTaskResourceRequests(ctx)
	require.NoError(t, err)
	tasks.Resource(ctx, "gpu", 1)

	profile, err := b.Require(ctx, tasks).Build(ctx)
	require.NoError(t, err)

	// caller-side mutation of a returned map must not show up later
	res, err := profile.TaskResources(ctx)
	require.NoError(t, err)
	res["gpu"] = resourcetypes.NewTaskResourceRequest("gpu", 100)
	delete(res, "gpu")

	again, err := profile.TaskResources(ctx)
	require.NoError(t, err)
	assert.Equal(t, again["gpu"].Amount, float64(1))

	// builder mutations after Build must not leak in either
	require.NoError(t, b.ClearTaskResourceRequests(ctx))
	again, err = profile.TaskResources(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}
