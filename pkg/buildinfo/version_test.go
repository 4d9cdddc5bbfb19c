package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "v1.2.0", "3f2a9c1d5e6f"
	if got := Short(); got != "v1.2.0 (3f2a9c1)" {
		t.Errorf("Short() = %q", got)
	}

	Commit = "none"
	if got := Short(); got != "v1.2.0 (none)" {
		t.Errorf("Short() = %q", got)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(String(), "version: "+Version) {
		t.Errorf("String() = %q", String())
	}
}
