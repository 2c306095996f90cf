package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcastack/core/engine"
	resourcetypes "github.com/orcastack/core/resource/types"
	coretypes "github.com/orcastack/core/types"
)

func newLocalBuilder(t *testing.T) *ResourceProfileBuilder {
	engine.ResetSession()
	b, err := NewResourceProfileBuilder(context.Background())
	require.NoError(t, err)
	return b
}

func TestBuilderAccumulatesByName(t *testing.T) {
	ctx := context.Background()
	b := newLocalBuilder(t)

	gpus, err := NewExecutorResourceRequests(ctx)
	require.NoError(t, err)
	gpus.Resource(ctx, "gpu", 2, "/opt/bin/getGPUs.sh", "nvidia.com")

	fpgas, err := NewExecutorResourceRequests(ctx)
	require.NoError(t, err)
	fpgas.Resource(ctx, "fpga", 1, "/opt/bin/getFPGAs.sh", "xilinx.com")

	b.Require(ctx, gpus).Require(ctx, fpgas)
	require.NoError(t, b.Err())

	execRes, err := b.ExecutorResources(ctx)
	require.NoError(t, err)
	assert.Len(t, execRes, 2)
	assert.Equal(t, execRes["gpu"].Amount, int64(2))
	assert.Equal(t, execRes["fpga"].Vendor, "xilinx.com")

	taskRes, err := b.TaskResources(ctx)
	require.NoError(t, err)
	assert.Empty(t, taskRes)
}

func TestBuilderLastWriteWinsPerName(t *testing.T) {
	ctx := context.Background()
	b := newLocalBuilder(t)

	first, err := NewTaskResourceRequests(ctx)
	require.NoError(t, err)
	first.Resource(ctx, "gpu", 1).CPUs(ctx, 2)

	second, err := NewTaskResourceRequests(ctx)
	require.NoError(t, err)
	second.Resource(ctx, "gpu", 4)

	b.Require(ctx, first).Require(ctx, second)
	require.NoError(t, b.Err())

	taskRes, err := b.TaskResources(ctx)
	require.NoError(t, err)
	assert.Equal(t, taskRes["gpu"].Amount, float64(4))
	// untouched name keeps the earlier value
	assert.Equal(t, taskRes[resourcetypes.ResourceCPUs].Amount, float64(2))
}

func TestBuilderClearsAreSideIndependent(t *testing.T) {
	ctx := context.Background()
	b := newLocalBuilder(t)

	execs, err := NewExecutorResourceRequests(ctx)
	require.NoError(t, err)
	execs.Cores(ctx, 4)

	tasks, err := NewTaskResourceRequests(ctx)
	require.NoError(t, err)
	tasks.CPUs(ctx, 1)

	b.Require(ctx, execs).Require(ctx, tasks)
	require.NoError(t, b.ClearExecutorResourceRequests(ctx))

	execRes, err := b.ExecutorResources(ctx)
	require.NoError(t, err)
	assert.Empty(t, execRes)

	taskRes, err := b.TaskResources(ctx)
	require.NoError(t, err)
	assert.Len(t, taskRes, 1)

	require.NoError(t, b.ClearTaskResourceRequests(ctx))
	taskRes, err = b.TaskResources(ctx)
	require.NoError(t, err)
	assert.Empty(t, taskRes)
}

func TestBuildSnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	b := newLocalBuilder(t)

	tasks, err := NewTaskResourceRequests(ctx)
	require.NoError(t, err)
	tasks.Resource(ctx, "gpu", 1)
	b.Require(ctx, tasks)

	profile1, err := b.Build(ctx)
	require.NoError(t, err)

	more, err := NewTaskResourceRequests(ctx)
	require.NoError(t, err)
	more.Resource(ctx, "fpga", 1)
	b.Require(ctx, more)

	profile2, err := b.Build(ctx)
	require.NoError(t, err)

	res1, err := profile1.TaskResources(ctx)
	require.NoError(t, err)
	assert.Len(t, res1, 1)
	assert.NotContains(t, res1, "fpga")

	res2, err := profile2.TaskResources(ctx)
	require.NoError(t, err)
	assert.Len(t, res2, 2)
}

func TestGPUStageScenario(t *testing.T) {
	ctx := context.Background()
	b := newLocalBuilder(t)

	execs, err := NewExecutorResourceRequests(ctx)
	require.NoError(t, err)
	execs.Resource(ctx, "gpu", 2, "/opt/bin/getGPUs.sh", "nvidia.com")

	tasks, err := NewTaskResourceRequests(ctx)
	require.NoError(t, err)
	tasks.Resource(ctx, "gpu", 1)

	profile, err := b.Require(ctx, execs).Require(ctx, tasks).Build(ctx)
	require.NoError(t, err)

	execRes, err := profile.ExecutorResources(ctx)
	require.NoError(t, err)
	assert.Equal(t, execRes["gpu"].Amount, int64(2))
	assert.Equal(t, execRes["gpu"].Vendor, "nvidia.com")

	taskRes, err := profile.TaskResources(ctx)
	require.NoError(t, err)
	assert.Equal(t, taskRes["gpu"].Amount, float64(1))

	_, err = profile.ID(ctx)
	assert.ErrorIs(t, err, coretypes.ErrProfileNotRegistered)

	// same builder, task side cleared
	require.NoError(t, b.ClearTaskResourceRequests(ctx))
	profile2, err := b.Build(ctx)
	require.NoError(t, err)

	taskRes2, err := profile2.TaskResources(ctx)
	require.NoError(t, err)
	assert.Empty(t, taskRes2)

	execRes2, err := profile2.ExecutorResources(ctx)
	require.NoError(t, err)
	assert.Equal(t, execRes2["gpu"].Amount, int64(2))
}
