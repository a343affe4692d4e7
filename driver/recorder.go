package driver

import "github.com/TuboFmc/anvil/vk"

// Recorder is an in-memory Dispatch that records every debug-marker call.
// The zero value returns Success from all entry points.
type Recorder struct {
	// Result is returned from every call. Zero value is Success.
	Result vk.Result

	NameCalls []vk.DebugMarkerObjectNameInfo
	TagCalls  []vk.DebugMarkerObjectTagInfo
}

func (r *Recorder) DebugMarkerSetObjectName(info *vk.DebugMarkerObjectNameInfo) vk.Result {
	r.NameCalls = append(r.NameCalls, *info)
	return r.Result
}

func (r *Recorder) DebugMarkerSetObjectTag(info *vk.DebugMarkerObjectTagInfo) vk.Result {
	rec := *info
	rec.Tag = append([]byte(nil), info.Tag...)
	r.TagCalls = append(r.TagCalls, rec)
	return r.Result
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.NameCalls = nil
	r.TagCalls = nil
}

// LastName returns the most recent name call, if any.
func (r *Recorder) LastName() (vk.DebugMarkerObjectNameInfo, bool) {
	if len(r.NameCalls) == 0 {
		return vk.DebugMarkerObjectNameInfo{}, false
	}
	return r.NameCalls[len(r.NameCalls)-1], true
}

// LastTag returns the most recent tag call, if any.
func (r *Recorder) LastTag() (vk.DebugMarkerObjectTagInfo, bool) {
	if len(r.TagCalls) == 0 {
		return vk.DebugMarkerObjectTagInfo{}, false
	}
	return r.TagCalls[len(r.TagCalls)-1], true
}
