// Package driver provides the low-level boundary between the wrapper layer
// and the Vulkan implementation.
//
// The package exposes two main types:
//
//	Dispatch - the VK_EXT_debug_marker extension entry points
//	Device   - a non-owning front for a logical device: dispatch table,
//	           enabled extensions, and the table of named objects
//
// A Device does not own the underlying VkDevice. Callers signal destruction
// of the native device with Close; metadata operations attempted afterwards
// fail fast instead of dereferencing a dead dispatch table.
//
// Recorder is an in-memory Dispatch for tests and examples; it records every
// call and returns a configurable result.
package driver
