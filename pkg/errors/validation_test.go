package errors

import (
	"strings"
	"testing"
)

func TestValidateSectionID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple", id: "hero", wantErr: false},
		{name: "dashed", id: "side-projects", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "space", id: "about me", wantErr: true},
		{name: "tab", id: "about\tme", wantErr: true},
		{name: "null byte", id: "hero\x00", wantErr: true},
		{name: "slash", id: "a/b", wantErr: true},
		{name: "backslash", id: `a\b`, wantErr: true},
		{name: "too long", id: strings.Repeat("x", MaxSectionIDLength+1), wantErr: true},
		{name: "max length", id: strings.Repeat("x", MaxSectionIDLength), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSectionID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSectionID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSection) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidSection)
			}
		})
	}
}

func TestValidateDirection(t *testing.T) {
	for _, dir := range []string{"previous", "prev", "next"} {
		if err := ValidateDirection(dir); err != nil {
			t.Errorf("ValidateDirection(%q) = %v, want nil", dir, err)
		}
	}

	for _, dir := range []string{"", "up", "NEXT", "previ"} {
		err := ValidateDirection(dir)
		if !Is(err, ErrCodeInvalidDirection) {
			t.Errorf("ValidateDirection(%q) = %v, want %s", dir, err, ErrCodeInvalidDirection)
		}
	}
}
