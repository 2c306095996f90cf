package engine

import (
	"context"

	resourcetypes "github.com/orcastack/core/resource/types"
)

// Session is a live handle on a running scheduling engine. It exposes the
// narrow operation set the resource core needs: factories for remote profile
// builders and remote requirement groups. Every call is a synchronous
// round-trip which either completes or fails with a bridge-level error once
// the session is torn down.
type Session interface {
	// NewProfileBuilder creates an empty remote profile builder
	NewProfileBuilder(ctx context.Context) (ProfileBuilder, error)
	// NewTaskRequests creates a remote task requirement group seeded with the
	// given requests, nil means empty
	NewTaskRequests(ctx context.Context, requests map[string]resourcetypes.TaskResourceRequest) (TaskRequests, error)
	// NewExecutorRequests is the executor-side counterpart of NewTaskRequests
	NewExecutorRequests(ctx context.Context, requests map[string]resourcetypes.ExecutorResourceRequest) (ExecutorRequests, error)
}

// ProfileBuilder mirrors the builder operations on the engine side
type ProfileBuilder interface {
	RequireTask(ctx context.Context, requests TaskRequests) error
	RequireExecutor(ctx context.Context, requests ExecutorRequests) error
	ClearTaskResourceRequests(ctx context.Context) error
	ClearExecutorResourceRequests(ctx context.Context) error
	TaskResources(ctx context.Context) (map[string]resourcetypes.TaskResourceRequest, error)
	ExecutorResources(ctx context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error)
	Build(ctx context.Context) (Profile, error)
}

// Profile mirrors a registered profile on the engine side
type Profile interface {
	ID(ctx context.Context) (int64, error)
	TaskResources(ctx context.Context) (map[string]resourcetypes.TaskResourceRequest, error)
	ExecutorResources(ctx context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error)
}

// TaskRequests is a remote task requirement group
type TaskRequests interface {
	SetResource(ctx context.Context, request resourcetypes.TaskResourceRequest) error
	Requests(ctx context.Context) (map[string]resourcetypes.TaskResourceRequest, error)
}

// ExecutorRequests is a remote executor requirement group
type ExecutorRequests interface {
	SetResource(ctx context.Context, request resourcetypes.ExecutorResourceRequest) error
	Requests(ctx context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error)
}
