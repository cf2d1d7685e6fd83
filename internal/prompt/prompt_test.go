package prompt

import (
	"strings"
	"testing"
)

func TestBuildEmbedsSummaryVerbatim(t *testing.T) {
	t.Parallel()

	summary := "Repository: /tmp/x\n\n===== BEGIN a.txt =====\nhello\n===== END a.txt =====\n"
	p := Build(summary, "")

	if !strings.HasSuffix(p, "\n\n"+summary) {
		t.Errorf("snapshot not embedded verbatim at the end:\n%s", p)
	}
	if !strings.Contains(p, "senior engineer") {
		t.Error("missing instruction preamble")
	}
	if strings.Contains(p, "Focus the analysis on:") {
		t.Error("focus line present without a focus")
	}
}

func TestBuildWithFocus(t *testing.T) {
	t.Parallel()

	p := Build("Repository: /tmp/x\n", "error handling")
	if !strings.Contains(p, "Focus the analysis on: error handling") {
		t.Errorf("missing focus line:\n%s", p)
	}
	// Focus comes after the preamble, before the snapshot.
	if strings.Index(p, "Focus the analysis on:") > strings.Index(p, "Repository:") {
		t.Error("focus line should precede the snapshot")
	}
}
