package objcgo

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestNewError(t *testing.T) {
	err := NewError(CodeMalformedInput, "duplicate getter")
	if err.Code != CodeMalformedInput {
		t.Errorf("expected code %s, got %s", CodeMalformedInput, err.Code)
	}
	if err.Message != "duplicate getter" {
		t.Errorf("expected message 'duplicate getter', got %s", err.Message)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(CodeInvalidArgument, "unknown option: %s", "foo")
	if err.Message != "unknown option: foo" {
		t.Errorf("expected formatted message, got %s", err.Message)
	}
	if got := err.Error(); got != "invalid_argument: unknown option: foo" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWithDetail(t *testing.T) {
	base := Malformedf("bad selector")
	withClass := base.WithDetail("class", "NSColor")

	if base.Details != nil {
		t.Error("WithDetail should not mutate the receiver")
	}
	if withClass.Details["class"] != "NSColor" {
		t.Errorf("Details[class] = %v, want NSColor", withClass.Details["class"])
	}
	if withClass.Code != CodeMalformedInput {
		t.Errorf("Code = %s, want %s", withClass.Code, CodeMalformedInput)
	}
}

func TestIsMalformed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"malformed", Malformedf("x"), true},
		{"wrapped malformed", fmt.Errorf("building NSColor: %w", Malformedf("x")), true},
		{"config", NewError(CodeInvalidConfig, "x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMalformed(tt.err); got != tt.want {
				t.Errorf("IsMalformed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("x")); got != CodeInternal {
		t.Errorf("CodeOf(plain) = %s, want %s", got, CodeInternal)
	}
	if got := CodeOf(fmt.Errorf("wrap: %w", NewError(CodeInvalidConfig, "x"))); got != CodeInvalidConfig {
		t.Errorf("CodeOf(wrapped) = %s, want %s", got, CodeInvalidConfig)
	}
}

func TestFromValidation(t *testing.T) {
	type options struct {
		Package string   `validate:"required"`
		Headers []string `validate:"min=1"`
	}

	err := validator.New().Struct(options{})
	got := FromValidation(err)

	var e *Error
	if !errors.As(got, &e) {
		t.Fatalf("FromValidation() returned %T, want *Error", got)
	}
	if e.Code != CodeInvalidConfig {
		t.Errorf("Code = %s, want %s", e.Code, CodeInvalidConfig)
	}
	if !strings.Contains(e.Message, "options.Package: required") {
		t.Errorf("Message = %q, want mention of Package", e.Message)
	}
	if !strings.Contains(e.Message, "options.Headers: must have at least 1 entries") {
		t.Errorf("Message = %q, want mention of Headers", e.Message)
	}
	if len(e.Details) != 2 {
		t.Errorf("len(Details) = %d, want 2", len(e.Details))
	}
}

func TestFromValidation_Passthrough(t *testing.T) {
	if FromValidation(nil) != nil {
		t.Error("FromValidation(nil) should be nil")
	}
	plain := errors.New("io failure")
	if got := FromValidation(plain); got != plain {
		t.Errorf("FromValidation(plain) = %v, want unchanged", got)
	}
}
