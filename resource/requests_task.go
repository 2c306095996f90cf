package resource

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"

	"github.com/orcastack/core/engine"
	"github.com/orcastack/core/metrics"
	resourcetypes "github.com/orcastack/core/resource/types"
)

// TaskResourceRequests groups task-level requirements by resource name before
// they are committed to a profile builder. Like the builder it is either
// local or delegated, fixed at construction by the ambient session check.
// Later settings for the same resource name overwrite earlier ones.
type TaskResourceRequests struct {
	requests map[string]resourcetypes.TaskResourceRequest
	session  engine.Session
	remote   engine.TaskRequests
	err      error
}

// NewTaskResourceRequests .
func NewTaskResourceRequests(ctx context.Context) (*TaskResourceRequests, error) {
	t := &TaskResourceRequests{}
	if session := engine.CurrentSession(); session != nil {
		remote, err := session.NewTaskRequests(ctx, nil)
		metrics.Client.SendEngineCall("new_task_requests", err)
		if err != nil {
			return nil, errors.Wrap(err, "create remote task requirement group")
		}
		t.session = session
		t.remote = remote
		return t, nil
	}
	t.requests = map[string]resourcetypes.TaskResourceRequest{}
	return t, nil
}

// CPUs sets how many cpus each task needs
func (t *TaskResourceRequests) CPUs(ctx context.Context, amount int) *TaskResourceRequests {
	return t.setResource(ctx, resourcetypes.NewTaskResourceRequest(resourcetypes.ResourceCPUs, float64(amount)))
}

// Resource sets a custom device requirement per task, e.g. gpu. Amount can be
// fractional so several tasks share one device.
func (t *TaskResourceRequests) Resource(ctx context.Context, resourceName string, amount float64) *TaskResourceRequests {
	return t.setResource(ctx, resourcetypes.NewTaskResourceRequest(resourceName, amount))
}

func (t *TaskResourceRequests) setResource(ctx context.Context, request resourcetypes.TaskResourceRequest) *TaskResourceRequests {
	if t.err != nil {
		return t
	}
	if t.remote != nil {
		err := t.remote.SetResource(ctx, request)
		metrics.Client.SendEngineCall("set_task_resource", err)
		if err != nil {
			t.err = errors.Wrapf(err, "set task resource %s", request.ResourceName)
		}
		return t
	}
	t.requests[request.ResourceName] = request
	return t
}

// Requests returns the accumulated requirements keyed by resource name,
// read-through in delegated mode
func (t *TaskResourceRequests) Requests(ctx context.Context) (map[string]resourcetypes.TaskResourceRequest, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.remote != nil {
		requests, err := t.remote.Requests(ctx)
		metrics.Client.SendEngineCall("task_requests", err)
		if err != nil {
			return nil, errors.Wrap(err, "read remote task requirement group")
		}
		return requests, nil
	}
	return maps.Clone(t.requests), nil
}

// Err returns the first error recorded by a fluent mutator
func (t *TaskResourceRequests) Err() error {
	return t.err
}

// remoteHandle normalizes the group for a delegated builder: a remote-backed
// group hands over its handle untouched, a local one is converted through the
// session factory first
func (t *TaskResourceRequests) remoteHandle(ctx context.Context, session engine.Session) (engine.TaskRequests, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.remote != nil {
		return t.remote, nil
	}
	handle, err := session.NewTaskRequests(ctx, t.requests)
	metrics.Client.SendEngineCall("new_task_requests", err)
	if err != nil {
		return nil, errors.Wrap(err, "convert local task requirement group")
	}
	return handle, nil
}

func (*TaskResourceRequests) requirementGroup() {}
