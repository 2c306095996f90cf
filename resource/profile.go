package resource

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"

	"github.com/orcastack/core/engine"
	"github.com/orcastack/core/metrics"
	resourcetypes "github.com/orcastack/core/resource/types"
	coretypes "github.com/orcastack/core/types"
)

// ResourceProfile is an immutable declaration of executor and task resource
// requirements, attached to a stage of work so the engine provisions matching
// executors and sizes tasks accordingly. Only ResourceProfileBuilder.Build
// produces one. A locally built profile has no identity until the engine
// registers it, a delegated one answers every read straight from its remote
// handle so it reflects whatever the engine has reconciled.
type ResourceProfile struct {
	remote engine.Profile

	taskRequests     map[string]resourcetypes.TaskResourceRequest
	executorRequests map[string]resourcetypes.ExecutorResourceRequest
}

func newLocalResourceProfile(taskRequests map[string]resourcetypes.TaskResourceRequest, executorRequests map[string]resourcetypes.ExecutorResourceRequest) *ResourceProfile {
	return &ResourceProfile{
		taskRequests:     taskRequests,
		executorRequests: executorRequests,
	}
}

func newRemoteResourceProfile(remote engine.Profile) *ResourceProfile {
	return &ResourceProfile{remote: remote}
}

// ID returns the engine-assigned identity. A locally built profile that was
// never registered fails with ErrProfileNotRegistered.
func (p *ResourceProfile) ID(ctx context.Context) (int64, error) {
	if p.remote == nil {
		return 0, coretypes.ErrProfileNotRegistered
	}
	id, err := p.remote.ID(ctx)
	metrics.Client.SendEngineCall("profile_id", err)
	return id, errors.Wrap(err, "read profile id")
}

// TaskResources returns the task requirements keyed by resource name. In
// delegated mode the map is rebuilt from the remote handle on every call,
// read-through, never cached. No side effects either way.
func (p *ResourceProfile) TaskResources(ctx context.Context) (map[string]resourcetypes.TaskResourceRequest, error) {
	if p.remote != nil {
		requests, err := p.remote.TaskResources(ctx)
		metrics.Client.SendEngineCall("profile_task_resources", err)
		return requests, errors.Wrap(err, "read profile task resources")
	}
	return maps.Clone(p.taskRequests), nil
}

// ExecutorResources is the executor-side counterpart of TaskResources,
// including discovery script and vendor
func (p *ResourceProfile) ExecutorResources(ctx context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error) {
	if p.remote != nil {
		requests, err := p.remote.ExecutorResources(ctx)
		metrics.Client.SendEngineCall("profile_executor_resources", err)
		return requests, errors.Wrap(err, "read profile executor resources")
	}
	return maps.Clone(p.executorRequests), nil
}
