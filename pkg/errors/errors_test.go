package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestSDKErrorInterface(t *testing.T) {
	tests := []struct {
		name     string
		err      SDKError
		wantCode int
		wantCat  Category
		wantSev  Severity
	}{
		{
			name:     "invalid address",
			err:      InvalidAddress("a:b:c:d"),
			wantCode: CodeInvalidAddress,
			wantCat:  CategoryValidation,
			wantSev:  SeverityError,
		},
		{
			name:     "invalid port",
			err:      InvalidPort("abc"),
			wantCode: CodeInvalidPort,
			wantCat:  CategoryValidation,
			wantSev:  SeverityError,
		},
		{
			name:     "validation error",
			err:      ValidationError("test validation error"),
			wantCode: CodeValidationError,
			wantCat:  CategoryValidation,
			wantSev:  SeverityError,
		},
		{
			name:     "missing parameter",
			err:      MissingParameter("pubsubName"),
			wantCode: CodeMissingParameter,
			wantCat:  CategoryValidation,
			wantSev:  SeverityError,
		},
		{
			name:     "config load error",
			err:      ConfigLoadError(fmt.Errorf("boom")),
			wantCode: CodeConfigLoadError,
			wantCat:  CategoryConfig,
			wantSev:  SeverityCritical,
		},
		{
			name:     "decode error",
			err:      DecodeError("configuration item", "feature-flag", fmt.Errorf("unexpected end of JSON input")),
			wantCode: CodeDecodeError,
			wantCat:  CategoryPayload,
			wantSev:  SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Code(); got != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got, tt.wantCode)
			}
			if got := tt.err.Category(); got != tt.wantCat {
				t.Errorf("Category() = %v, want %v", got, tt.wantCat)
			}
			if got := tt.err.Severity(); got != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", got, tt.wantSev)
			}
			if msg := tt.err.Error(); msg == "" {
				t.Error("Error() returned empty string")
			}
		})
	}
}

func TestErrorMessagesEmbedInput(t *testing.T) {
	if got := InvalidAddress("a:b:c:d").Message(); got != "Invalid address: a:b:c:d" {
		t.Errorf("InvalidAddress message = %q", got)
	}
	if got := InvalidPort("abc").Message(); got != "Invalid port: abc" {
		t.Errorf("InvalidPort message = %q", got)
	}
}

func TestWithDetailAndData(t *testing.T) {
	base := ValidationError("base message")

	detailed := base.WithDetail("extra detail")
	if detailed.Details() != "extra detail" {
		t.Errorf("Details() = %q, want %q", detailed.Details(), "extra detail")
	}
	if base.Details() != "" {
		t.Error("WithDetail mutated the original error")
	}
	if !strings.Contains(detailed.Error(), "extra detail") {
		t.Errorf("Error() = %q, should contain detail", detailed.Error())
	}

	data := &ParameterErrorData{Parameter: "port"}
	withData := base.WithData(data)
	if withData.Data() != data {
		t.Error("Data() did not return the attached payload")
	}
	if base.Data() != nil {
		t.Error("WithData mutated the original error")
	}
}

func TestWrapErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := ConfigLoadError(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}

func TestConversionHelpers(t *testing.T) {
	addrErr := InvalidAddress("bad")
	portErr := InvalidPort("nan")
	plain := fmt.Errorf("plain error")

	if !IsInvalidAddress(addrErr) || IsInvalidAddress(portErr) || IsInvalidAddress(plain) {
		t.Error("IsInvalidAddress misclassified an error")
	}
	if !IsInvalidPort(portErr) || IsInvalidPort(addrErr) {
		t.Error("IsInvalidPort misclassified an error")
	}

	wrapped := fmt.Errorf("client construction failed: %w", addrErr)
	if !IsInvalidAddress(wrapped) {
		t.Error("IsInvalidAddress should traverse wrapped chains")
	}
	if CodeOf(plain) != 0 {
		t.Errorf("CodeOf(plain) = %d, want 0", CodeOf(plain))
	}
}

func TestToJSON(t *testing.T) {
	err := InvalidPort("99999999").WithDetail("port out of range")

	m := err.ToJSON()
	if m["code"] != CodeInvalidPort {
		t.Errorf("ToJSON code = %v", m["code"])
	}
	if m["category"] != string(CategoryValidation) {
		t.Errorf("ToJSON category = %v", m["category"])
	}
	if m["details"] != "port out of range" {
		t.Errorf("ToJSON details = %v", m["details"])
	}

	// The map must round-trip through encoding/json
	if _, jerr := json.Marshal(m); jerr != nil {
		t.Errorf("ToJSON output not serializable: %v", jerr)
	}
}
