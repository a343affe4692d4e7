package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:      PhaseDispatch,
				Kind:       KindDriverFailure,
				Object:     0xbeef,
				ObjectType: "buffer",
				Detail:     "set object name",
			},
			contains: []string{"[dispatch]", "driver_failure", "buffer", "0xbeef", "set object name"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseReport,
				Kind:  KindInvalidData,
			},
			contains: []string{"[report]", "invalid_data"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDevice,
				Kind:   KindDeviceLost,
				Detail: "device closed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[device]", "device_lost", "device closed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDispatch,
		Kind:  KindDriverFailure,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseDispatch,
		Kind:   KindDriverFailure,
		Detail: "something",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseDispatch, Kind: KindDriverFailure}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseDevice, Kind: KindDriverFailure}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseDispatch, Kind: KindUnsupported}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseDispatch, Kind: KindDriverFailure}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDispatch, KindDriverFailure).
		Object(0x1234, "image").
		Cause(cause).
		Detail("set tag %d", 7).
		Build()

	if err.Phase != PhaseDispatch {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDispatch)
	}
	if err.Kind != KindDriverFailure {
		t.Errorf("Kind = %v, want %v", err.Kind, KindDriverFailure)
	}
	if err.Object != 0x1234 {
		t.Errorf("Object = %#x, want 0x1234", err.Object)
	}
	if err.ObjectType != "image" {
		t.Errorf("ObjectType = %v, want 'image'", err.ObjectType)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "set tag 7" {
		t.Errorf("Detail = %v, want 'set tag 7'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("DriverFailure", func(t *testing.T) {
		cause := errors.New("DEVICE LOST")
		err := DriverFailure(cause, "set object name")
		if err.Kind != KindDriverFailure {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDriverFailure)
		}
		if !errors.Is(err.Cause, cause) {
			t.Error("cause not preserved")
		}
	})

	t.Run("DeviceLost", func(t *testing.T) {
		err := DeviceLost("naming after close")
		if err.Kind != KindDeviceLost || err.Phase != PhaseDevice {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseDispatch, "VK_EXT_debug_marker")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseReport, "tag is not valid hex")
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseRegistry, "object", "0xdead")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, "0xdead") {
			t.Errorf("Detail = %v, should contain the name", err.Detail)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("io failure")
		err := Wrap(PhaseReport, KindInvalidData, cause, "decode report")
		if !errors.Is(err, &Error{Phase: PhaseReport, Kind: KindInvalidData}) {
			t.Error("wrapped error does not match phase/kind")
		}
		if !errors.Is(err, cause) {
			t.Error("wrapped error does not unwrap to cause")
		}
	})
}
