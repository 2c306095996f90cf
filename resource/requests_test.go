package resource

import (
	"context"
	"testing"

	"github.com/docker/go-units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcastack/core/engine"
	resourcetypes "github.com/orcastack/core/resource/types"
)

func TestTaskResourceRequestsFluent(t *testing.T) {
	ctx := context.Background()
	engine.ResetSession()

	tasks, err := NewTaskResourceRequests(ctx)
	require.NoError(t, err)

	tasks.CPUs(ctx, 2).Resource(ctx, "gpu", 0.25).Resource(ctx, "gpu", 0.5)
	require.NoError(t, tasks.Err())

	requests, err := tasks.Requests(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Equal(t, requests[resourcetypes.ResourceCPUs].Amount, float64(2))
	// last write wins
	assert.Equal(t, requests["gpu"].Amount, 0.5)
}

func TestExecutorResourceRequestsMemorySizes(t *testing.T) {
	ctx := context.Background()
	engine.ResetSession()

	execs, err := NewExecutorResourceRequests(ctx)
	require.NoError(t, err)

	execs.Memory(ctx, "1G").MemoryOverhead(ctx, "512M").OffHeapMemory(ctx, "2G").Cores(ctx, 4)
	require.NoError(t, execs.Err())

	requests, err := execs.Requests(ctx)
	require.NoError(t, err)
	assert.Equal(t, requests[resourcetypes.ResourceMemory].Amount, int64(units.GiB))
	assert.Equal(t, requests[resourcetypes.ResourceMemoryOverhead].Amount, int64(512*units.MiB))
	assert.Equal(t, requests[resourcetypes.ResourceOffHeap].Amount, int64(2*units.GiB))
	assert.Equal(t, requests[resourcetypes.ResourceCores].Amount, int64(4))
}

func TestExecutorResourceRequestsBadMemorySize(t *testing.T) {
	ctx := context.Background()
	engine.ResetSession()

	execs, err := NewExecutorResourceRequests(ctx)
	require.NoError(t, err)

	execs.Memory(ctx, "hhhh")
	assert.Error(t, execs.Err())

	// the sticky error surfaces on reads too
	_, err = execs.Requests(ctx)
	assert.Error(t, err)

	// and later settings are dropped, not applied on top of a broken group
	execs.Cores(ctx, 4)
	assert.Error(t, execs.Err())
}

func TestExecutorResourceRequestsCustomDevice(t *testing.T) {
	ctx := context.Background()
	engine.ResetSession()

	execs, err := NewExecutorResourceRequests(ctx)
	require.NoError(t, err)

	execs.Resource(ctx, "gpu", 2, "/opt/bin/getGPUs.sh", "nvidia.com")
	requests, err := execs.Requests(ctx)
	require.NoError(t, err)

	gpu := requests["gpu"]
	assert.Equal(t, gpu.ResourceName, "gpu")
	assert.Equal(t, gpu.Amount, int64(2))
	assert.Equal(t, gpu.DiscoveryScript, "/opt/bin/getGPUs.sh")
	assert.Equal(t, gpu.Vendor, "nvidia.com")
}

func TestRequestsReturnsACopy(t *testing.T) {
	ctx := context.Background()
	engine.ResetSession()

	tasks, err := NewTaskResourceRequests(ctx)
	require.NoError(t, err)
	tasks.CPUs(ctx, 1)

	requests, err := tasks.Requests(ctx)
	require.NoError(t, err)
	requests["gpu"] = resourcetypes.NewTaskResourceRequest("gpu", 1)

	again, err := tasks.Requests(ctx)
	require.NoError(t, err)
	assert.NotContains(t, again, "gpu")
}
