package fake

import (
	"context"

	"golang.org/x/exp/maps"

	resourcetypes "github.com/orcastack/core/resource/types"
)

// Profile is a registered, immutable profile inside the fake session
type Profile struct {
	session          *Session
	id               int64
	taskRequests     map[string]resourcetypes.TaskResourceRequest
	executorRequests map[string]resourcetypes.ExecutorResourceRequest
}

// ID .
func (p *Profile) ID(_ context.Context) (int64, error) {
	if err := p.session.alive(); err != nil {
		return 0, err
	}
	return p.id, nil
}

// TaskResources .
func (p *Profile) TaskResources(_ context.Context) (map[string]resourcetypes.TaskResourceRequest, error) {
	if err := p.session.alive(); err != nil {
		return nil, err
	}
	return maps.Clone(p.taskRequests), nil
}

// ExecutorResources .
func (p *Profile) ExecutorResources(_ context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error) {
	if err := p.session.alive(); err != nil {
		return nil, err
	}
	return maps.Clone(p.executorRequests), nil
}
