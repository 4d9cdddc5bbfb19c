package cli

import (
	"strings"
	"testing"
	"unicode"

	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/layout"
)

func TestRunLayout(t *testing.T) {
	c, status := newTestCLI(t)

	if err := c.runLayout(testContext(c), "37"); err != nil {
		t.Fatalf("runLayout() error: %v", err)
	}

	got := status.String()
	for _, want := range []string{"Layout for 37 tiles", "Blocks", "4", "2975 x 1496 px", "isotile render 37"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunLayoutInvalidCount(t *testing.T) {
	c, _ := newTestCLI(t)

	for _, arg := range []string{"0", "-1", "ten", ""} {
		if err := c.runLayout(testContext(c), arg); !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("runLayout(%q) error = %v, want INVALID_ARGUMENT", arg, err)
		}
	}
}

func TestRowTable(t *testing.T) {
	// 37 tiles: rows [1 2 1], the outer rows shifted by half a column pitch.
	table := rowTable(layout.MustNew(37))

	var body []string
	for _, line := range strings.Split(table, "\n") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return unicode.IsSpace(r) || strings.ContainsRune("│╭╮╰╯─├┤┼┬┴", r)
		})
		if len(fields) > 0 {
			body = append(body, strings.Join(fields, " "))
		}
	}

	want := []string{
		"Row Blocks Tiles Offset",
		"0 1 12 787",
		"1 2 24 0",
		"2 1 1 787",
	}
	if len(body) != len(want) {
		t.Fatalf("table has %d content lines, want %d:\n%s", len(body), len(want), table)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, body[i], want[i])
		}
	}
}
