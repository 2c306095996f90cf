package resource

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"

	"github.com/orcastack/core/engine"
	"github.com/orcastack/core/metrics"
	resourcetypes "github.com/orcastack/core/resource/types"
	"github.com/orcastack/core/utils"
)

// ExecutorResourceRequests groups executor-level requirements by resource
// name. Memory sizes are given in human readable form ("512M", "2G") and
// stored in bytes. Dual-mode, see TaskResourceRequests.
type ExecutorResourceRequests struct {
	requests map[string]resourcetypes.ExecutorResourceRequest
	session  engine.Session
	remote   engine.ExecutorRequests
	err      error
}

// NewExecutorResourceRequests .
func NewExecutorResourceRequests(ctx context.Context) (*ExecutorResourceRequests, error) {
	e := &ExecutorResourceRequests{}
	if session := engine.CurrentSession(); session != nil {
		remote, err := session.NewExecutorRequests(ctx, nil)
		metrics.Client.SendEngineCall("new_executor_requests", err)
		if err != nil {
			return nil, errors.Wrap(err, "create remote executor requirement group")
		}
		e.session = session
		e.remote = remote
		return e, nil
	}
	e.requests = map[string]resourcetypes.ExecutorResourceRequest{}
	return e, nil
}

// Cores sets the core count per executor
func (e *ExecutorResourceRequests) Cores(ctx context.Context, amount int) *ExecutorResourceRequests {
	return e.setResource(ctx, resourcetypes.NewExecutorResourceRequest(resourcetypes.ResourceCores, int64(amount), "", ""))
}

// Memory sets executor heap memory
func (e *ExecutorResourceRequests) Memory(ctx context.Context, size string) *ExecutorResourceRequests {
	return e.setMemory(ctx, resourcetypes.ResourceMemory, size)
}

// MemoryOverhead sets the per executor memory overhead
func (e *ExecutorResourceRequests) MemoryOverhead(ctx context.Context, size string) *ExecutorResourceRequests {
	return e.setMemory(ctx, resourcetypes.ResourceMemoryOverhead, size)
}

// OffHeapMemory sets executor off-heap storage memory
func (e *ExecutorResourceRequests) OffHeapMemory(ctx context.Context, size string) *ExecutorResourceRequests {
	return e.setMemory(ctx, resourcetypes.ResourceOffHeap, size)
}

// Resource sets a custom device requirement per executor, discoveryScript
// tells the engine how to locate the devices on a node, vendor tags them
// for vendor specific handling, e.g. "nvidia.com"
func (e *ExecutorResourceRequests) Resource(ctx context.Context, resourceName string, amount int64, discoveryScript, vendor string) *ExecutorResourceRequests {
	return e.setResource(ctx, resourcetypes.NewExecutorResourceRequest(resourceName, amount, discoveryScript, vendor))
}

func (e *ExecutorResourceRequests) setMemory(ctx context.Context, resourceName, size string) *ExecutorResourceRequests {
	if e.err != nil {
		return e
	}
	bytes, err := utils.ParseRAMInHuman(size)
	if err != nil {
		e.err = errors.Wrapf(err, "parse %s size %s", resourceName, size)
		return e
	}
	return e.setResource(ctx, resourcetypes.NewExecutorResourceRequest(resourceName, bytes, "", ""))
}

func (e *ExecutorResourceRequests) setResource(ctx context.Context, request resourcetypes.ExecutorResourceRequest) *ExecutorResourceRequests {
	if e.err != nil {
		return e
	}
	if e.remote != nil {
		err := e.remote.SetResource(ctx, request)
		metrics.Client.SendEngineCall("set_executor_resource", err)
		if err != nil {
			e.err = errors.Wrapf(err, "set executor resource %s", request.ResourceName)
		}
		return e
	}
	e.requests[request.ResourceName] = request
	return e
}

// Requests returns the accumulated requirements keyed by resource name,
// read-through in delegated mode
func (e *ExecutorResourceRequests) Requests(ctx context.Context) (map[string]resourcetypes.ExecutorResourceRequest, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.remote != nil {
		requests, err := e.remote.Requests(ctx)
		metrics.Client.SendEngineCall("executor_requests", err)
		if err != nil {
			return nil, errors.Wrap(err, "read remote executor requirement group")
		}
		return requests, nil
	}
	return maps.Clone(e.requests), nil
}

// Err returns the first error recorded by a fluent mutator
func (e *ExecutorResourceRequests) Err() error {
	return e.err
}

func (e *ExecutorResourceRequests) remoteHandle(ctx context.Context, session engine.Session) (engine.ExecutorRequests, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.remote != nil {
		return e.remote, nil
	}
	handle, err := session.NewExecutorRequests(ctx, e.requests)
	metrics.Client.SendEngineCall("new_executor_requests", err)
	if err != nil {
		return nil, errors.Wrap(err, "convert local executor requirement group")
	}
	return handle, nil
}

func (*ExecutorResourceRequests) requirementGroup() {}
