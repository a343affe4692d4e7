// Package marker implements name and tag caching for Vulkan object handles,
// forwarded to the driver through VK_EXT_debug_marker when available.
//
// Two provider shapes exist, both satisfying anvil.Named:
//
//	Provider         - fronts exactly one handle (most wrapper types)
//	DelegateProvider - fronts a set of handles with one logical identity
//	                   (composite objects such as swapchains)
//
// A set call caches the value and, when the device enables the extension and
// a handle is tracked, issues the corresponding driver call. Repeating a set
// with an unchanged value is a no-op at the driver boundary. Without the
// extension every operation is pure local caching.
//
// Contract violations - assigning a second handle to a single provider,
// duplicate or unknown delegate handles, metadata calls against a closed
// device - panic. They are programmer errors, not recoverable conditions.
package marker
