// Package report serializes the named-object table of a device into a YAML
// snapshot, and reads such snapshots back for offline tooling.
//
// Applications typically dump a report at teardown or on capture:
//
//	rep := report.FromDevice(dev)
//	if err := rep.WriteFile("markers.yaml"); err != nil { ... }
//
// The vkmarkers command browses report files.
package report
