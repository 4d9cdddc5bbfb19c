package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/isotile/pkg/observability"
	"github.com/matzehuels/isotile/pkg/pipeline"
)

func TestRegisterDebugHooks(t *testing.T) {
	defer observability.Reset()

	var buf bytes.Buffer
	registerDebugHooks(newLogger(&buf, log.InfoLevel))
	if _, ok := observability.Pipeline().(debugHooks); ok {
		t.Fatal("hooks registered at info level")
	}

	registerDebugHooks(newLogger(&buf, log.DebugLevel))
	if _, ok := observability.Pipeline().(debugHooks); !ok {
		t.Fatal("hooks not registered at debug level")
	}

	runner := pipeline.NewRunner(nil, nil, nil)
	if _, err := runner.Execute(context.Background(), pipeline.Options{Count: 5, Formats: []string{"json"}}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"layout started", "layout finished", "render finished", "cache miss"} {
		if !strings.Contains(got, want) {
			t.Errorf("debug log missing %q:\n%s", want, got)
		}
	}
}
