package driver

import (
	"testing"

	"github.com/TuboFmc/anvil/vk"
)

func TestDevice_Extensions(t *testing.T) {
	dev := NewDevice(&Recorder{}, WithExtensions(vk.ExtDebugMarker))

	if !dev.SupportsExtension(vk.ExtDebugMarker) {
		t.Error("enabled extension not reported")
	}
	if dev.SupportsExtension("VK_KHR_swapchain") {
		t.Error("unrequested extension reported as enabled")
	}
}

func TestDevice_NilDispatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewDevice(nil) must panic")
		}
	}()
	NewDevice(nil)
}

func TestDevice_Close(t *testing.T) {
	dev := NewDevice(&Recorder{}, WithName("gpu0"))

	if !dev.Alive() {
		t.Fatal("fresh device must be alive")
	}
	dev.Objects().Register(0x10, vk.ObjectTypeBuffer)

	if err := dev.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if dev.Alive() {
		t.Error("closed device reported alive")
	}
	if dev.Objects().Len() != 0 {
		t.Error("object table not cleared on close")
	}

	// second close is a no-op
	if err := dev.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}

	res := rec.DebugMarkerSetObjectName(&vk.DebugMarkerObjectNameInfo{
		ObjectType: vk.ObjectTypeBuffer,
		Object:     0x10,
		Name:       "staging",
	})
	if res != vk.Success {
		t.Fatalf("result = %v, want Success", res)
	}

	tag := []byte{0xAA}
	rec.DebugMarkerSetObjectTag(&vk.DebugMarkerObjectTagInfo{
		ObjectType: vk.ObjectTypeBuffer,
		Object:     0x10,
		TagName:    1,
		Tag:        tag,
	})
	tag[0] = 0x00 // recorder must have copied

	name, ok := rec.LastName()
	if !ok || name.Name != "staging" {
		t.Errorf("LastName = %v/%v", name, ok)
	}
	got, ok := rec.LastTag()
	if !ok || got.Tag[0] != 0xAA {
		t.Errorf("recorded tag aliases caller memory: %x", got.Tag)
	}

	rec.Reset()
	if _, ok := rec.LastName(); ok {
		t.Error("Reset did not clear name calls")
	}
	if _, ok := rec.LastTag(); ok {
		t.Error("Reset did not clear tag calls")
	}
}

func TestRecorder_ConfiguredResult(t *testing.T) {
	rec := &Recorder{Result: vk.ErrDeviceLost}
	res := rec.DebugMarkerSetObjectName(&vk.DebugMarkerObjectNameInfo{Name: "x"})
	if res != vk.ErrDeviceLost {
		t.Fatalf("result = %v, want ErrDeviceLost", res)
	}
}
