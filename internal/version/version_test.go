package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origDirty := Version, Dirty
	t.Cleanup(func() { Version, Dirty = origVersion, origDirty })

	tests := []struct {
		version, dirty, want string
	}{
		{"1.2.3", "false", "1.2.3"},
		{"1.2.3", "true", "1.2.3-dirty"},
		{"dev", "", "dev"},
	}
	for _, tt := range tests {
		Version, Dirty = tt.version, tt.dirty
		if got := String(); got != tt.want {
			t.Errorf("String() with (%q, %q) = %q, want %q", tt.version, tt.dirty, got, tt.want)
		}
	}
}

func TestFull(t *testing.T) {
	origDirty := Dirty
	t.Cleanup(func() { Dirty = origDirty })

	Dirty = "true"
	full := Full()
	if !strings.HasPrefix(full, "docload ") {
		t.Errorf("Full() should start with the binary name, got %q", full)
	}
	if !strings.Contains(full, "Dirty:      yes") {
		t.Errorf("Full() should report dirty trees, got %q", full)
	}
	if !Get().Dirty {
		t.Error("Get().Dirty = false, want true")
	}
}
