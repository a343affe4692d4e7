package vk

import "fmt"

// Result is a VkResult return code. Only the codes the debug-marker paths
// can observe are enumerated; anything else renders numerically.
type Result int32

const (
	Success                 Result = 0
	NotReady                Result = 1
	Timeout                 Result = 2
	ErrOutOfHostMemory      Result = -1
	ErrOutOfDeviceMemory    Result = -2
	ErrInitializationFailed Result = -3
	ErrDeviceLost           Result = -4
	ErrExtensionNotPresent  Result = -7
	ErrUnknown              Result = -13
)

// Error implements the error interface so non-success results can be
// propagated directly.
func (r Result) Error() string {
	switch r {
	case Success:
		return "SUCCESS"
	case NotReady:
		return "NOT READY"
	case Timeout:
		return "TIMEOUT"
	case ErrOutOfHostMemory:
		return "OUT OF HOST MEMORY"
	case ErrOutOfDeviceMemory:
		return "OUT OF DEVICE MEMORY"
	case ErrInitializationFailed:
		return "INITIALIZATION FAILED"
	case ErrDeviceLost:
		return "DEVICE LOST"
	case ErrExtensionNotPresent:
		return "EXTENSION NOT PRESENT"
	case ErrUnknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("VkResult(%d)", int32(r))
	}
}
