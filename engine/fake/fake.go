// Package fake is an in-memory scheduling engine session. It keeps the real
// accumulation and registration semantics so delegated-mode code paths can
// run in tests and in embedded single-process clusters, without a transport.
package fake

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/orcastack/core/engine"
	"github.com/orcastack/core/log"
	resourcetypes "github.com/orcastack/core/resource/types"
	coretypes "github.com/orcastack/core/types"
)

// Session implements engine.Session. A single logical caller is assumed,
// like the rest of the resource core.
type Session struct {
	id       string
	config   coretypes.Config
	closed   bool
	nextID   int64
	profiles map[int64]*Profile
}

// NewSession .
func NewSession(config coretypes.Config) *Session {
	if config.Engine.MaxProfiles <= 0 {
		config.Engine.MaxProfiles = 10000
	}
	return &Session{
		id:       uuid.NewString(),
		config:   config,
		profiles: map[int64]*Profile{},
	}
}

// ID .
func (s *Session) ID() string {
	return s.id
}

// Close tears the session down, every later call fails with ErrSessionClosed
func (s *Session) Close() {
	s.closed = true
}

// NewProfileBuilder .
func (s *Session) NewProfileBuilder(_ context.Context) (engine.ProfileBuilder, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	return &ProfileBuilder{
		session:          s,
		taskRequests:     map[string]resourcetypes.TaskResourceRequest{},
		executorRequests: map[string]resourcetypes.ExecutorResourceRequest{},
	}, nil
}

// NewTaskRequests .
func (s *Session) NewTaskRequests(_ context.Context, requests map[string]resourcetypes.TaskResourceRequest) (engine.TaskRequests, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	r := &TaskRequests{session: s, requests: map[string]resourcetypes.TaskResourceRequest{}}
	if requests != nil {
		r.requests = maps.Clone(requests)
	}
	return r, nil
}

// NewExecutorRequests .
func (s *Session) NewExecutorRequests(_ context.Context, requests map[string]resourcetypes.ExecutorResourceRequest) (engine.ExecutorRequests, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	r := &ExecutorRequests{session: s, requests: map[string]resourcetypes.ExecutorResourceRequest{}}
	if requests != nil {
		r.requests = maps.Clone(requests)
	}
	return r, nil
}

// Profile returns a registered profile by id
func (s *Session) Profile(id int64) (engine.Profile, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	profile, ok := s.profiles[id]
	if !ok {
		return nil, coretypes.ErrProfileNotRegistered
	}
	return profile, nil
}

func (s *Session) register(ctx context.Context, taskRequests map[string]resourcetypes.TaskResourceRequest, executorRequests map[string]resourcetypes.ExecutorResourceRequest) (*Profile, error) {
	if len(s.profiles) >= s.config.Engine.MaxProfiles {
		return nil, coretypes.ErrTooManyProfiles
	}
	profile := &Profile{
		session:          s,
		id:               s.nextID,
		taskRequests:     maps.Clone(taskRequests),
		executorRequests: maps.Clone(executorRequests),
	}
	s.nextID++
	s.profiles[profile.id] = profile
	log.WithFunc("fake.register").WithField("session", s.id).Debugf(ctx, "registered resource profile %d", profile.id)
	return profile, nil
}

func (s *Session) alive() error {
	if s.closed {
		return coretypes.ErrSessionClosed
	}
	return nil
}
