package marker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/TuboFmc/anvil/vk"
)

func TestProvider_SingleHandle(t *testing.T) {
	dev, rec := newTestDevice(vk.ExtDebugMarker)
	p := NewProvider(dev, vk.ObjectTypeBuffer)
	p.SetHandle(0x10)

	p.SetName("vertex buffer")
	p.SetTag(9, []byte{0xDE, 0xAD})

	if p.Name() != "vertex buffer" {
		t.Errorf("Name() = %q", p.Name())
	}
	tagID, tag := p.Tag()
	if tagID != 9 || !bytes.Equal(tag, []byte{0xDE, 0xAD}) {
		t.Errorf("Tag() = %d/%x", tagID, tag)
	}
	if len(rec.NameCalls) != 1 || len(rec.TagCalls) != 1 {
		t.Errorf("driver calls = %d/%d, want 1/1", len(rec.NameCalls), len(rec.TagCalls))
	}

	mustPanic(t, "already tracked", func() {
		p.SetHandle(0x20)
	})
}

func TestProvider_SetNamef(t *testing.T) {
	dev, rec := newTestDevice(vk.ExtDebugMarker)
	p := NewProvider(dev, vk.ObjectTypeImage)
	p.SetHandle(0x30)

	p.SetNamef("swapchain image %d", 2)
	if p.Name() != "swapchain image 2" {
		t.Errorf("Name() = %q", p.Name())
	}
	last, _ := rec.LastName()
	if last.Name != "swapchain image 2" {
		t.Errorf("driver saw %q", last.Name)
	}
}

func TestProvider_SetNamefTruncates(t *testing.T) {
	dev, _ := newTestDevice(vk.ExtDebugMarker)
	p := NewProvider(dev, vk.ObjectTypeImage)
	p.SetHandle(0x30)

	long := strings.Repeat("x", 2000)
	p.SetNamef("%s", long)

	if got := len(p.Name()); got != nameBufferSize-1 {
		t.Fatalf("len(Name()) = %d, want %d", got, nameBufferSize-1)
	}
	if p.Name() != long[:nameBufferSize-1] {
		t.Error("truncated name is not a prefix of the formatted result")
	}

	// exactly at capacity minus terminator: untouched
	exact := strings.Repeat("y", nameBufferSize-1)
	p.SetNamef("%s", exact)
	if p.Name() != exact {
		t.Errorf("len = %d, a name of buffer capacity minus one must not be cut", len(p.Name()))
	}
}

func TestProvider_EmptyTagPanics(t *testing.T) {
	dev, _ := newTestDevice(vk.ExtDebugMarker)
	p := NewProvider(dev, vk.ObjectTypeBuffer)
	p.SetHandle(0x10)

	mustPanic(t, "empty tag data", func() {
		p.SetTag(1, nil)
	})
}

func TestDelegateProvider_FanOut(t *testing.T) {
	dev, rec := newTestDevice(vk.ExtDebugMarker)
	d := NewDelegateProvider(dev, vk.ObjectTypeImage)
	d.AddDelegate(0x0A)
	d.AddDelegate(0x0B)
	d.AddDelegate(0x0C)

	d.SetName("swapchain image")
	if len(rec.NameCalls) != 3 {
		t.Fatalf("driver calls = %d, want one per delegate", len(rec.NameCalls))
	}
	seen := map[vk.Handle]string{}
	for _, c := range rec.NameCalls {
		seen[c.Object] = c.Name
	}
	for _, h := range []vk.Handle{0x0A, 0x0B, 0x0C} {
		if seen[h] != "swapchain image" {
			t.Errorf("handle %#x named %q", h, seen[h])
		}
	}

	d.SetTag(4, []byte{0x44})
	if len(rec.TagCalls) != 3 {
		t.Errorf("tag calls = %d, want one per delegate", len(rec.TagCalls))
	}

	d.SetNamef("swapchain image (frame %d)", 7)
	if d.Name() != "swapchain image (frame 7)" {
		t.Errorf("Name() = %q", d.Name())
	}
}

func TestDelegateProvider_PropagationOnAdd(t *testing.T) {
	dev, _ := newTestDevice(vk.ExtDebugMarker)
	d := NewDelegateProvider(dev, vk.ObjectTypeImage)

	d.AddDelegate(0xA1)
	d.SetName("foo")
	d.SetTag(1, []byte{0xAA})

	// the new delegate inherits the existing metadata with no explicit set
	d.AddDelegate(0xB2)

	e, ok := dev.Objects().Get(0xB2)
	if !ok {
		t.Fatal("new delegate not registered")
	}
	if e.Name != "foo" {
		t.Errorf("inherited name = %q, want 'foo'", e.Name)
	}
	if e.TagID != 1 || !bytes.Equal(e.Tag, []byte{0xAA}) {
		t.Errorf("inherited tag = %d/%x, want 1/aa", e.TagID, e.Tag)
	}
}

func TestDelegateProvider_NoTagPropagationWhenEmpty(t *testing.T) {
	dev, rec := newTestDevice(vk.ExtDebugMarker)
	d := NewDelegateProvider(dev, vk.ObjectTypeImage)

	d.AddDelegate(0xA1)
	d.AddDelegate(0xB2)

	// neither name nor tag was ever set; adding must not reach the driver
	if len(rec.NameCalls) != 0 || len(rec.TagCalls) != 0 {
		t.Errorf("driver calls = %d/%d, want none", len(rec.NameCalls), len(rec.TagCalls))
	}
}

func TestDelegateProvider_Remove(t *testing.T) {
	dev, _ := newTestDevice(vk.ExtDebugMarker)
	d := NewDelegateProvider(dev, vk.ObjectTypeImage)
	d.AddDelegate(0x0A)
	d.AddDelegate(0x0B)
	d.AddDelegate(0x0C)

	d.RemoveDelegate(0x0B)

	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	got := d.Handles()
	if got[0] != 0x0A || got[1] != 0x0C {
		t.Errorf("Handles() = %v, remaining delegates disturbed", got)
	}
	if _, ok := dev.Objects().Get(0x0B); ok {
		t.Error("removed delegate still registered")
	}

	mustPanic(t, "not delegated", func() {
		d.RemoveDelegate(0x0B)
	})
}

func TestDelegateProvider_ContractViolations(t *testing.T) {
	dev, _ := newTestDevice(vk.ExtDebugMarker)
	d := NewDelegateProvider(dev, vk.ObjectTypeImage)
	d.AddDelegate(0x0A)

	mustPanic(t, "already delegated", func() {
		d.AddDelegate(0x0A)
	})
	mustPanic(t, "null delegate handle", func() {
		d.AddDelegate(vk.NullHandle)
	})

	// a removed handle may be re-added
	d.RemoveDelegate(0x0A)
	d.AddDelegate(0x0A)
	if d.Len() != 1 {
		t.Errorf("Len() = %d after re-add, want 1", d.Len())
	}
}

func TestDelegateScenario(t *testing.T) {
	// delegate mode: add A, name "foo", tag {1,[0xAA]}, then add B:
	// B reports the same metadata before any explicit set call.
	dev, _ := newTestDevice(vk.ExtDebugMarker)
	d := NewDelegateProvider(dev, vk.ObjectTypeImage)

	d.AddDelegate(0xA)
	d.SetName("foo")
	d.SetTag(1, []byte{0xAA})
	d.AddDelegate(0xB)

	b, ok := dev.Objects().Get(0xB)
	if !ok {
		t.Fatal("B not registered")
	}
	if b.Name != "foo" || b.TagID != 1 || !bytes.Equal(b.Tag, []byte{0xAA}) {
		t.Fatalf("B = %+v, want name 'foo' and tag {1,[AA]}", b)
	}
}
