package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TuboFmc/anvil/driver"
	"github.com/TuboFmc/anvil/errors"
	"github.com/TuboFmc/anvil/registry"
	"github.com/TuboFmc/anvil/vk"
)

// Report is a point-in-time snapshot of a device's named objects.
type Report struct {
	Device  string   `yaml:"device"`
	Objects []Object `yaml:"objects"`
}

// Object is one named handle. Handle and Tag are hex-encoded so reports stay
// readable in diffs and editors.
type Object struct {
	Handle string `yaml:"handle"`
	Type   string `yaml:"type"`
	Name   string `yaml:"name,omitempty"`
	TagID  uint64 `yaml:"tag_id,omitempty"`
	Tag    string `yaml:"tag,omitempty"`
}

// FromDevice snapshots the device's object table.
func FromDevice(dev *driver.Device) *Report {
	return FromTable(dev.Name(), dev.Objects())
}

// FromTable snapshots a registry table under the given device label.
func FromTable(device string, table *registry.Table) *Report {
	rep := &Report{Device: device}
	for _, e := range table.Snapshot() {
		rep.Objects = append(rep.Objects, fromEntry(e))
	}
	return rep
}

func fromEntry(e registry.Entry) Object {
	o := Object{
		Handle: fmt.Sprintf("0x%x", uint64(e.Handle)),
		Type:   e.Type.String(),
		Name:   e.Name,
		TagID:  e.TagID,
	}
	if len(e.Tag) > 0 {
		o.Tag = hex.EncodeToString(e.Tag)
	}
	return o
}

// Entry converts the object back into a registry entry, validating the
// hex-encoded fields.
func (o *Object) Entry() (registry.Entry, error) {
	h, err := parseHandle(o.Handle)
	if err != nil {
		return registry.Entry{}, errors.Wrap(errors.PhaseReport, errors.KindInvalidData, err,
			fmt.Sprintf("handle %q", o.Handle))
	}

	t, ok := vk.ParseObjectType(o.Type)
	if !ok {
		return registry.Entry{}, errors.InvalidData(errors.PhaseReport,
			fmt.Sprintf("unknown object type %q", o.Type))
	}

	var tag []byte
	if o.Tag != "" {
		tag, err = hex.DecodeString(o.Tag)
		if err != nil {
			return registry.Entry{}, errors.Wrap(errors.PhaseReport, errors.KindInvalidData, err,
				fmt.Sprintf("tag of %q is not valid hex", o.Handle))
		}
	}

	return registry.Entry{
		Handle: h,
		Type:   t,
		Name:   o.Name,
		TagID:  o.TagID,
		Tag:    tag,
	}, nil
}

// Entries converts and validates all objects.
func (r *Report) Entries() ([]registry.Entry, error) {
	out := make([]registry.Entry, 0, len(r.Objects))
	for i := range r.Objects {
		e, err := r.Objects[i].Entry()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Encode writes the report as YAML.
func (r *Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(errors.PhaseReport, errors.KindInvalidData, err, "encode report")
	}
	return enc.Close()
}

// WriteFile writes the report to path.
func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.PhaseReport, errors.KindInvalidInput, err, "create report file")
	}
	defer f.Close()
	return r.Encode(f)
}

// Decode reads a YAML report and validates its objects.
func Decode(r io.Reader) (*Report, error) {
	var rep Report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return nil, errors.Wrap(errors.PhaseReport, errors.KindInvalidData, err, "decode report")
	}
	if _, err := rep.Entries(); err != nil {
		return nil, err
	}
	return &rep, nil
}

// ReadFile reads a report from path.
func ReadFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseReport, errors.KindNotFound, err, "open report file")
	}
	defer f.Close()
	return Decode(f)
}

func parseHandle(s string) (vk.Handle, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
	if err != nil {
		return vk.NullHandle, err
	}
	return vk.Handle(v), nil
}
