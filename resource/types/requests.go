package types

import (
	"github.com/mitchellh/mapstructure"

	coretypes "github.com/orcastack/core/types"
)

// resource names the engine scheduler treats specially, anything else is
// a custom device name discovered via the request's discovery script
const (
	// ResourceCPUs is the task-side cpu share
	ResourceCPUs = "cpus"
	// ResourceCores is the executor-side core count
	ResourceCores = "cores"
	// ResourceMemory is executor heap memory in bytes
	ResourceMemory = "memory"
	// ResourceMemoryOverhead is executor off-heap overhead in bytes
	ResourceMemoryOverhead = "memoryOverhead"
	// ResourceOffHeap is executor off-heap storage in bytes
	ResourceOffHeap = "offHeap"
)

// TaskResourceRequest names a resource and the amount of it each task needs.
// Amount is fractional so tasks can share a single device.
type TaskResourceRequest struct {
	ResourceName string  `json:"resource_name" mapstructure:"resource_name"`
	Amount       float64 `json:"amount" mapstructure:"amount"`
}

// NewTaskResourceRequest .
func NewTaskResourceRequest(resourceName string, amount float64) TaskResourceRequest {
	return TaskResourceRequest{ResourceName: resourceName, Amount: amount}
}

// Parse .
func (t *TaskResourceRequest) Parse(rawParams coretypes.RawParams) error {
	return mapstructure.Decode(map[string]interface{}(rawParams), t)
}

// ExecutorResourceRequest names a resource every provisioned executor must
// carry, plus how the engine locates it on a node
type ExecutorResourceRequest struct {
	ResourceName    string `json:"resource_name" mapstructure:"resource_name"`
	Amount          int64  `json:"amount" mapstructure:"amount"`
	DiscoveryScript string `json:"discovery_script" mapstructure:"discovery_script"`
	Vendor          string `json:"vendor" mapstructure:"vendor"`
}

// NewExecutorResourceRequest .
func NewExecutorResourceRequest(resourceName string, amount int64, discoveryScript, vendor string) ExecutorResourceRequest {
	return ExecutorResourceRequest{
		ResourceName:    resourceName,
		Amount:          amount,
		DiscoveryScript: discoveryScript,
		Vendor:          vendor,
	}
}

// Parse .
func (e *ExecutorResourceRequest) Parse(rawParams coretypes.RawParams) error {
	return mapstructure.Decode(map[string]interface{}(rawParams), e)
}
