package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/orcastack/core/engine"
	resourcetypes "github.com/orcastack/core/resource/types"
)

// Session mocks engine.Session
type Session struct {
	mock.Mock
}

// NewProfileBuilder mock new profile builder
func (m *Session) NewProfileBuilder(ctx context.Context) (engine.ProfileBuilder, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(engine.ProfileBuilder), args.Error(1)
	}
	return nil, args.Error(1)
}

// NewTaskRequests mock new task requests
func (m *Session) NewTaskRequests(ctx context.Context, requests map[string]resourcetypes.TaskResourceRequest) (engine.TaskRequests, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) != nil {
		return args.Get(0).(engine.TaskRequests), args.Error(1)
	}
	return nil, args.Error(1)
}

// NewExecutorRequests mock new executor requests
func (m *Session) NewExecutorRequests(ctx context.Context, requests map[string]resourcetypes.ExecutorResourceRequest) (engine.ExecutorRequests, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) != nil {
		return args.Get(0).(engine.ExecutorRequests), args.Error(1)
	}
	return nil, args.Error(1)
}

// ProfileBuilder mocks engine.ProfileBuilder
type ProfileBuilder struct {
	mock.Mock
}

// RequireTask mock require task
func (m *ProfileBuilder) RequireTask(ctx context.Context, requests engine.TaskRequests) error {
	args := m.Called(ctx, requests)
	return args.Error(0)
}

// RequireExecutor mock require executor
func (m *ProfileBuilder) RequireExecutor(ctx context.Context, requests engine.ExecutorRequests) error {
	args := m.Called(ctx, requests)
	return args.Error(0)
}

// ClearTaskResourceRequests mock clear task side
func (m *ProfileBuilder) ClearTaskResourceRequests(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ClearExecutorResourceRequests mock clear executor side
func (m *ProfileBuilder) ClearExecutorResourceRequests(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// TaskResources mock task resources
func (m *ProfileBuilder) TaskResources(ctx context.Context) (map[string]resourcetypes.TaskResourceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]resourcetypes.TaskResourceRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

// ExecutorResources mock executor resources
func (m *ProfileBuilder) ExecutorResources(ctx context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]resourcetypes.ExecutorResourceRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

// Build mock build
func (m *ProfileBuilder) Build(ctx context.Context) (engine.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(engine.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

// Profile mocks engine.Profile
type Profile struct {
	mock.Mock
}

// ID mock id
func (m *Profile) ID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// TaskResources mock task resources
func (m *Profile) TaskResources(ctx context.Context) (map[string]resourcetypes.TaskResourceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]resourcetypes.TaskResourceRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

// ExecutorResources mock executor resources
func (m *Profile) ExecutorResources(ctx context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]resourcetypes.ExecutorResourceRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

// TaskRequests mocks engine.TaskRequests
type TaskRequests struct {
	mock.Mock
}

// SetResource mock set resource
func (m *TaskRequests) SetResource(ctx context.Context, request resourcetypes.TaskResourceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// Requests mock requests
func (m *TaskRequests) Requests(ctx context.Context) (map[string]resourcetypes.TaskResourceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]resourcetypes.TaskResourceRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

// ExecutorRequests mocks engine.ExecutorRequests
type ExecutorRequests struct {
	mock.Mock
}

// SetResource mock set resource
func (m *ExecutorRequests) SetResource(ctx context.Context, request resourcetypes.ExecutorResourceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// Requests mock requests
func (m *ExecutorRequests) Requests(ctx context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]resourcetypes.ExecutorResourceRequest), args.Error(1)
	}
	return nil, args.Error(1)
}
