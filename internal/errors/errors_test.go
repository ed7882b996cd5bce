package errors

import (
	"fmt"
	"testing"
)

func TestStashError_Error(t *testing.T) {
	err := &StashError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "document not found",
	}

	expected := "NOT_FOUND: document not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("data is required")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "data is required" {
		t.Errorf("Message = %q, want %q", err.Message, "data is required")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("report.pdf")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["filename"] != "report.pdf" {
		t.Errorf("Details[filename] = %v, want %q", err.Details["filename"], "report.pdf")
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	err := NewUnsupportedFormat("archive.zip")

	if err.Code != ErrUnsupportedFormat {
		t.Errorf("Code = %q, want %q", err.Code, ErrUnsupportedFormat)
	}
	if err.Status != 415 {
		t.Errorf("Status = %d, want 415", err.Status)
	}
	if err.Details["filename"] != "archive.zip" {
		t.Errorf("Details[filename] = %v, want %q", err.Details["filename"], "archive.zip")
	}
}

func TestNewDecodeFailed(t *testing.T) {
	err := NewDecodeFailed("notes.txt", fmt.Errorf("invalid UTF-8"))

	if err.Code != ErrDecodeFailed {
		t.Errorf("Code = %q, want %q", err.Code, ErrDecodeFailed)
	}
	if err.Status != 422 {
		t.Errorf("Status = %d, want 422", err.Status)
	}
	if err.Message != "could not decode notes.txt: invalid UTF-8" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestNewPermissionDenied(t *testing.T) {
	err := NewPermissionDenied("/docs/agent_notes.txt")

	if err.Code != ErrPermissionDenied {
		t.Errorf("Code = %q, want %q", err.Code, ErrPermissionDenied)
	}
	if err.Status != 403 {
		t.Errorf("Status = %d, want 403", err.Status)
	}
}

func TestNewIOFailure(t *testing.T) {
	err := NewIOFailure(fmt.Errorf("disk full"))

	if err.Code != ErrIOFailure {
		t.Errorf("Code = %q, want %q", err.Code, ErrIOFailure)
	}
	if err.Message != "disk full" {
		t.Errorf("Message = %q, want %q", err.Message, "disk full")
	}
}

func TestNewDeviceFailure(t *testing.T) {
	err := NewDeviceFailure("could not open camera at index 2")

	if err.Code != ErrDeviceFailure {
		t.Errorf("Code = %q, want %q", err.Code, ErrDeviceFailure)
	}
	if err.Status != 500 {
		t.Errorf("Status = %d, want 500", err.Status)
	}
}

func TestNewInternal(t *testing.T) {
	t.Run("with error", func(t *testing.T) {
		err := NewInternal(fmt.Errorf("summary build failed"))
		if err.Code != ErrInternal {
			t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
		}
		if err.Message != "summary build failed" {
			t.Errorf("Message = %q", err.Message)
		}
	})

	t.Run("with nil", func(t *testing.T) {
		err := NewInternal(nil)
		if err.Message != "internal error" {
			t.Errorf("Message = %q, want %q", err.Message, "internal error")
		}
	})
}

func TestIs(t *testing.T) {
	t.Run("matching code", func(t *testing.T) {
		err := NewNotFound("a.txt")
		if !Is(err, ErrNotFound) {
			t.Error("Is() = false, want true")
		}
	})

	t.Run("non-matching code", func(t *testing.T) {
		err := NewNotFound("a.txt")
		if Is(err, ErrIOFailure) {
			t.Error("Is() = true, want false")
		}
	})

	t.Run("non-StashError", func(t *testing.T) {
		err := fmt.Errorf("plain error")
		if Is(err, ErrNotFound) {
			t.Error("Is() = true, want false for non-StashError")
		}
	})

	t.Run("wrapped StashError", func(t *testing.T) {
		inner := NewNotFound("a.txt")
		wrapped := fmt.Errorf("read: %w", inner)
		if !Is(wrapped, ErrNotFound) {
			t.Error("Is() = false, want true for wrapped StashError")
		}
		if Is(wrapped, ErrDecodeFailed) {
			t.Error("Is() = true, want false for wrong code on wrapped StashError")
		}
	})
}
