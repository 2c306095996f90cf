package resource

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/orcastack/core/engine"
	"github.com/orcastack/core/log"
	"github.com/orcastack/core/metrics"
	resourcetypes "github.com/orcastack/core/resource/types"

	"golang.org/x/exp/maps"
)

// RequirementGroup is either a *TaskResourceRequests or an
// *ExecutorResourceRequests, the two sides never cross-contaminate
type RequirementGroup interface {
	requirementGroup()
}

// ResourceProfileBuilder accumulates requirement groups and finalizes them
// into immutable ResourceProfiles. It picks its mode exactly once, at
// construction: with an ambient engine session every mutation and read is
// forwarded to a remote builder handle, without one it owns plain maps.
// A builder never migrates modes, even if a session shows up later.
//
// Not safe for concurrent use, one logical caller accumulates at a time.
type ResourceProfileBuilder struct {
	session engine.Session
	remote  engine.ProfileBuilder

	taskRequests     map[string]resourcetypes.TaskResourceRequest
	executorRequests map[string]resourcetypes.ExecutorResourceRequest

	err error
}

// NewResourceProfileBuilder .
func NewResourceProfileBuilder(ctx context.Context) (*ResourceProfileBuilder, error) {
	b := &ResourceProfileBuilder{}
	if session := engine.CurrentSession(); session != nil {
		remote, err := session.NewProfileBuilder(ctx)
		metrics.Client.SendEngineCall("new_profile_builder", err)
		if err != nil {
			return nil, errors.Wrap(err, "create remote profile builder")
		}
		b.session = session
		b.remote = remote
		return b, nil
	}
	b.taskRequests = map[string]resourcetypes.TaskResourceRequest{}
	b.executorRequests = map[string]resourcetypes.ExecutorResourceRequest{}
	return b, nil
}

// Require merges the group's requirements into the matching side, keyed by
// resource name, later calls win per name. Fluent, a bridge failure is
// recorded and surfaced by Err and by the next Build.
func (b *ResourceProfileBuilder) Require(ctx context.Context, group RequirementGroup) *ResourceProfileBuilder {
	if b.err != nil {
		return b
	}
	switch g := group.(type) {
	case *TaskResourceRequests:
		b.err = b.requireTask(ctx, g)
	case *ExecutorResourceRequests:
		b.err = b.requireExecutor(ctx, g)
	}
	return b
}

func (b *ResourceProfileBuilder) requireTask(ctx context.Context, group *TaskResourceRequests) error {
	if b.remote != nil {
		handle, err := group.remoteHandle(ctx, b.session)
		if err != nil {
			return err
		}
		err = b.remote.RequireTask(ctx, handle)
		metrics.Client.SendEngineCall("require_task", err)
		return errors.Wrap(err, "require task resources")
	}
	requests, err := group.Requests(ctx)
	if err != nil {
		return err
	}
	for name, request := range requests {
		b.taskRequests[name] = request
	}
	return nil
}

func (b *ResourceProfileBuilder) requireExecutor(ctx context.Context, group *ExecutorResourceRequests) error {
	if b.remote != nil {
		handle, err := group.remoteHandle(ctx, b.session)
		if err != nil {
			return err
		}
		err = b.remote.RequireExecutor(ctx, handle)
		metrics.Client.SendEngineCall("require_executor", err)
		return errors.Wrap(err, "require executor resources")
	}
	requests, err := group.Requests(ctx)
	if err != nil {
		return err
	}
	for name, request := range requests {
		b.executorRequests[name] = request
	}
	return nil
}

// ClearTaskResourceRequests drops the task side, executor requirements stay
func (b *ResourceProfileBuilder) ClearTaskResourceRequests(ctx context.Context) error {
	if b.err != nil {
		return b.err
	}
	if b.remote != nil {
		err := b.remote.ClearTaskResourceRequests(ctx)
		metrics.Client.SendEngineCall("clear_task", err)
		return errors.Wrap(err, "clear task resources")
	}
	b.taskRequests = map[string]resourcetypes.TaskResourceRequest{}
	return nil
}

// ClearExecutorResourceRequests drops the executor side, task requirements stay
func (b *ResourceProfileBuilder) ClearExecutorResourceRequests(ctx context.Context) error {
	if b.err != nil {
		return b.err
	}
	if b.remote != nil {
		err := b.remote.ClearExecutorResourceRequests(ctx)
		metrics.Client.SendEngineCall("clear_executor", err)
		return errors.Wrap(err, "clear executor resources")
	}
	b.executorRequests = map[string]resourcetypes.ExecutorResourceRequest{}
	return nil
}

// TaskResources inspects the accumulated-but-not-yet-built task side,
// read-through in delegated mode
func (b *ResourceProfileBuilder) TaskResources(ctx context.Context) (map[string]resourcetypes.TaskResourceRequest, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.remote != nil {
		requests, err := b.remote.TaskResources(ctx)
		metrics.Client.SendEngineCall("builder_task_resources", err)
		return requests, errors.Wrap(err, "read builder task resources")
	}
	return maps.Clone(b.taskRequests), nil
}

// ExecutorResources inspects the accumulated-but-not-yet-built executor side
func (b *ResourceProfileBuilder) ExecutorResources(ctx context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.remote != nil {
		requests, err := b.remote.ExecutorResources(ctx)
		metrics.Client.SendEngineCall("builder_executor_resources", err)
		return requests, errors.Wrap(err, "read builder executor resources")
	}
	return maps.Clone(b.executorRequests), nil
}

// Err returns the first bridge error recorded by Require
func (b *ResourceProfileBuilder) Err() error {
	return b.err
}

// Build finalizes the accumulated state into an immutable ResourceProfile.
// The builder is not consumed, later Require and Clear calls keep working
// and never leak into already built profiles.
func (b *ResourceProfileBuilder) Build(ctx context.Context) (*ResourceProfile, error) {
	if b.err != nil {
		return nil, b.err
	}
	logger := log.WithFunc("resource.Build")
	if b.remote != nil {
		remoteProfile, err := b.remote.Build(ctx)
		metrics.Client.SendEngineCall("build", err)
		if err != nil {
			return nil, errors.Wrap(err, "build remote resource profile")
		}
		metrics.Client.SendProfileBuild(metrics.ModeDelegated)
		logger.Debugf(ctx, "built delegated resource profile")
		return newRemoteResourceProfile(remoteProfile), nil
	}
	// copy on build, the builder may be reused afterwards
	profile := newLocalResourceProfile(maps.Clone(b.taskRequests), maps.Clone(b.executorRequests))
	metrics.Client.SendProfileBuild(metrics.ModeLocal)
	logger.Debugf(ctx, "built local resource profile with %d executor and %d task requirements", len(b.executorRequests), len(b.taskRequests))
	return profile, nil
}
