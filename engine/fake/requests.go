package fake

import (
	"context"

	"golang.org/x/exp/maps"

	resourcetypes "github.com/orcastack/core/resource/types"
)

// TaskRequests implements engine.TaskRequests
type TaskRequests struct {
	session  *Session
	requests map[string]resourcetypes.TaskResourceRequest
}

// SetResource .
func (r *TaskRequests) SetResource(_ context.Context, request resourcetypes.TaskResourceRequest) error {
	if err := r.session.alive(); err != nil {
		return err
	}
	r.requests[request.ResourceName] = request
	return nil
}

// Requests .
func (r *TaskRequests) Requests(_ context.Context) (map[string]resourcetypes.TaskResourceRequest, error) {
	if err := r.session.alive(); err != nil {
		return nil, err
	}
	return maps.Clone(r.requests), nil
}

// ExecutorRequests implements engine.ExecutorRequests
type ExecutorRequests struct {
	session  *Session
	requests map[string]resourcetypes.ExecutorResourceRequest
}

// SetResource .
func (r *ExecutorRequests) SetResource(_ context.Context, request resourcetypes.ExecutorResourceRequest) error {
	if err := r.session.alive(); err != nil {
		return err
	}
	r.requests[request.ResourceName] = request
	return nil
}

// Requests .
func (r *ExecutorRequests) Requests(_ context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error) {
	if err := r.session.alive(); err != nil {
		return nil, err
	}
	return maps.Clone(r.requests), nil
}
