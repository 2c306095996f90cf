package fake

import (
	"context"

	"github.com/sanity-io/litter"
	"golang.org/x/exp/maps"

	"github.com/orcastack/core/engine"
	"github.com/orcastack/core/log"
	resourcetypes "github.com/orcastack/core/resource/types"
)

// ProfileBuilder implements engine.ProfileBuilder over session-owned maps
type ProfileBuilder struct {
	session          *Session
	taskRequests     map[string]resourcetypes.TaskResourceRequest
	executorRequests map[string]resourcetypes.ExecutorResourceRequest
}

// RequireTask .
func (b *ProfileBuilder) RequireTask(ctx context.Context, requests engine.TaskRequests) error {
	if err := b.session.alive(); err != nil {
		return err
	}
	incoming, err := requests.Requests(ctx)
	if err != nil {
		return err
	}
	for name, req := range incoming {
		b.taskRequests[name] = req
	}
	return nil
}

// RequireExecutor .
func (b *ProfileBuilder) RequireExecutor(ctx context.Context, requests engine.ExecutorRequests) error {
	if err := b.session.alive(); err != nil {
		return err
	}
	incoming, err := requests.Requests(ctx)
	if err != nil {
		return err
	}
	for name, req := range incoming {
		b.executorRequests[name] = req
	}
	return nil
}

// ClearTaskResourceRequests .
func (b *ProfileBuilder) ClearTaskResourceRequests(_ context.Context) error {
	if err := b.session.alive(); err != nil {
		return err
	}
	b.taskRequests = map[string]resourcetypes.TaskResourceRequest{}
	return nil
}

// ClearExecutorResourceRequests .
func (b *ProfileBuilder) ClearExecutorResourceRequests(_ context.Context) error {
	if err := b.session.alive(); err != nil {
		return err
	}
	b.executorRequests = map[string]resourcetypes.ExecutorResourceRequest{}
	return nil
}

// TaskResources .
func (b *ProfileBuilder) TaskResources(_ context.Context) (map[string]resourcetypes.TaskResourceRequest, error) {
	if err := b.session.alive(); err != nil {
		return nil, err
	}
	return maps.Clone(b.taskRequests), nil
}

// ExecutorResources .
func (b *ProfileBuilder) ExecutorResources(_ context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error) {
	if err := b.session.alive(); err != nil {
		return nil, err
	}
	return maps.Clone(b.executorRequests), nil
}

// Build registers a snapshot of the accumulated requirements and assigns the
// next profile id. The builder stays usable afterwards.
func (b *ProfileBuilder) Build(ctx context.Context) (engine.Profile, error) {
	if err := b.session.alive(); err != nil {
		return nil, err
	}
	profile, err := b.session.register(ctx, b.taskRequests, b.executorRequests)
	if err != nil {
		return nil, err
	}
	log.WithFunc("fake.Build").Debugf(ctx, "profile %d requirements: %s", profile.id, litter.Sdump(b.executorRequests, b.taskRequests))
	return profile, nil
}
