package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out.String()
}

func writeReviewFixture(t *testing.T) string {
	t.Helper()

	doc := `### Exampleland {#exampleland}
**Thresholds & Requirements**
- **MF**: Consolidated group revenue above EUR 750m
- **LF**: Local turnover above EUR 50m

**Deadlines**
- 31 March (documentation)
- 30 June (submission)
`
	path := filepath.Join(t.TempDir(), "review.md")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestColumnsCommand(t *testing.T) {
	out := execute(t, "columns")

	if !strings.Contains(out, "Country / Entity") {
		t.Errorf("expected display column name in output:\n%s", out)
	}
	if !strings.Contains(out, "Notes / Rule Notes") {
		t.Errorf("expected last column in output:\n%s", out)
	}
}

func TestParseCommand_JSON(t *testing.T) {
	path := writeReviewFixture(t)
	out := execute(t, "parse", path)

	var records []review.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("parse output is not JSON: %v\n%s", err, out)
	}
	if len(records) != 1 || records[0].Name != "Exampleland" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestFmtCommand_Stdout(t *testing.T) {
	path := writeReviewFixture(t)
	out := execute(t, "fmt", path)

	if !strings.Contains(out, "## Unassigned") {
		t.Errorf("canonical form should carry the default group heading:\n%s", out)
	}
	if !strings.Contains(out, "### Exampleland {#exampleland}") {
		t.Errorf("entity heading missing:\n%s", out)
	}
}

func TestDeadlinesCommand(t *testing.T) {
	path := writeReviewFixture(t)
	out := execute(t, "deadlines", path)

	if !strings.Contains(out, "Q1") || !strings.Contains(out, "Q2") {
		t.Errorf("expected quarter tags in output:\n%s", out)
	}
}

func TestBadgesCommand(t *testing.T) {
	path := writeReviewFixture(t)
	out := execute(t, "badges", path)

	if !strings.Contains(out, "MF LF") {
		t.Errorf("expected derived badges for Exampleland:\n%s", out)
	}
	if !strings.Contains(out, "Master File") {
		t.Errorf("expected legend in output:\n%s", out)
	}
}
