package workflow

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGit struct {
	staged      string
	stagedErr   error
	unstaged    string
	unstagedErr error
	commitErr   error
	committed   []string
}

func (f *fakeGit) DiffStaged() (string, error)   { return f.staged, f.stagedErr }
func (f *fakeGit) DiffUnstaged() (string, error) { return f.unstaged, f.unstagedErr }
func (f *fakeGit) Commit(msg string) error {
	f.committed = append(f.committed, msg)
	return f.commitErr
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testOptions(input string) (Options, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Options{
		In:  strings.NewReader(input),
		Out: &out,
		Err: &errOut,
	}, &out, &errOut
}

const sampleDiff = "diff --git a/f.py b/f.py\nindex 1..2 100644\n--- a/f.py\n+++ b/f.py\n@@ -1 +1 @@\n-a\n+b"

func TestRunCommitNoStagedChanges(t *testing.T) {
	t.Parallel()

	g := &fakeGit{staged: ""}
	gen := &fakeGenerator{reply: "unused"}
	opts, out, _ := testOptions("")

	outcome, err := RunCommit(context.Background(), opts, g, gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeNoChanges {
		t.Fatalf("expected OutcomeNoChanges, got %v", outcome)
	}
	if gen.calls != 0 {
		t.Fatal("generator must not be called when there are no changes")
	}
	if len(g.committed) != 0 {
		t.Fatal("commit must not be invoked when there are no changes")
	}
	if !strings.Contains(out.String(), "No staged changes found.") {
		t.Fatalf("missing no-changes notice: %q", out.String())
	}
}

func TestRunCommitDiffFailureIsSoft(t *testing.T) {
	t.Parallel()

	g := &fakeGit{stagedErr: errors.New("git blew up")}
	gen := &fakeGenerator{reply: "unused"}
	opts, _, errOut := testOptions("")

	outcome, err := RunCommit(context.Background(), opts, g, gen)
	if err != nil {
		t.Fatalf("diff failure must not be fatal: %v", err)
	}
	if outcome != OutcomeNoChanges {
		t.Fatalf("expected OutcomeNoChanges, got %v", outcome)
	}
	if !strings.Contains(errOut.String(), "git blew up") {
		t.Fatalf("diff failure was not reported: %q", errOut.String())
	}
	if gen.calls != 0 {
		t.Fatal("generator must not be called after a failed diff")
	}
}

func TestRunCommitAcceptCommitsSanitizedMessage(t *testing.T) {
	t.Parallel()

	g := &fakeGit{staged: sampleDiff}
	gen := &fakeGenerator{reply: "\"Add input validation to parser\""}
	opts, out, _ := testOptions("c\n")

	outcome, err := RunCommit(context.Background(), opts, g, gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeCommitted {
		t.Fatalf("expected OutcomeCommitted, got %v", outcome)
	}
	if len(g.committed) != 1 || g.committed[0] != "Add input validation to parser" {
		t.Fatalf("commit called with %v", g.committed)
	}
	if !strings.Contains(out.String(), "committed successfully") {
		t.Fatalf("missing success notice: %q", out.String())
	}
}

func TestRunCommitEditedMessage(t *testing.T) {
	t.Parallel()

	g := &fakeGit{staged: sampleDiff}
	gen := &fakeGenerator{reply: "Original suggestion"}
	opts, _, _ := testOptions("e\n\ne\nnew message\n")

	outcome, err := RunCommit(context.Background(), opts, g, gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeCommitted {
		t.Fatalf("expected OutcomeCommitted, got %v", outcome)
	}
	if len(g.committed) != 1 || g.committed[0] != "new message" {
		t.Fatalf("commit called with %v", g.committed)
	}
}

func TestRunCommitAbort(t *testing.T) {
	t.Parallel()

	g := &fakeGit{staged: sampleDiff}
	gen := &fakeGenerator{reply: "Suggestion"}
	opts, out, _ := testOptions("a\n")

	outcome, err := RunCommit(context.Background(), opts, g, gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeAborted {
		t.Fatalf("expected OutcomeAborted, got %v", outcome)
	}
	if len(g.committed) != 0 {
		t.Fatal("aborted run must not commit")
	}
	if !strings.Contains(out.String(), "Commit aborted.") {
		t.Fatalf("missing abort notice: %q", out.String())
	}
}

func TestRunCommitEndOfInputAborts(t *testing.T) {
	t.Parallel()

	g := &fakeGit{staged: sampleDiff}
	gen := &fakeGenerator{reply: "Suggestion"}
	opts, _, _ := testOptions("")

	outcome, err := RunCommit(context.Background(), opts, g, gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeAborted {
		t.Fatalf("expected OutcomeAborted on closed stdin, got %v", outcome)
	}
	if len(g.committed) != 0 {
		t.Fatal("closed stdin must not lead to a commit")
	}
}

func TestRunCommitServiceFailureIsFatal(t *testing.T) {
	t.Parallel()

	g := &fakeGit{staged: sampleDiff}
	gen := &fakeGenerator{err: errors.New("service unavailable")}
	opts, out, _ := testOptions("c\n")

	_, err := RunCommit(context.Background(), opts, g, gen)
	if err == nil {
		t.Fatal("expected a fatal error from the service failure")
	}
	if len(g.committed) != 0 {
		t.Fatal("service failure must not lead to a commit")
	}
	if strings.Contains(out.String(), "SUGGESTED COMMIT MESSAGE") {
		t.Fatal("confirmation loop must not run after a service failure")
	}
}

func TestRunCommitEmptyReplyIsFatal(t *testing.T) {
	t.Parallel()

	g := &fakeGit{staged: sampleDiff}
	gen := &fakeGenerator{reply: "  \"\"  "}
	opts, _, _ := testOptions("c\n")

	_, err := RunCommit(context.Background(), opts, g, gen)
	if err == nil {
		t.Fatal("expected an error for an empty sanitized reply")
	}
	if len(g.committed) != 0 {
		t.Fatal("empty reply must not lead to a commit")
	}
}

func TestRunCommitCommitFailureIsReported(t *testing.T) {
	t.Parallel()

	g := &fakeGit{staged: sampleDiff, commitErr: errors.New("hook rejected")}
	gen := &fakeGenerator{reply: "Suggestion"}
	opts, _, errOut := testOptions("c\n")

	outcome, err := RunCommit(context.Background(), opts, g, gen)
	if err != nil {
		t.Fatalf("commit failure must not be fatal: %v", err)
	}
	if outcome != OutcomeCommitFailed {
		t.Fatalf("expected OutcomeCommitFailed, got %v", outcome)
	}
	if !strings.Contains(errOut.String(), "hook rejected") {
		t.Fatalf("commit failure was not reported: %q", errOut.String())
	}
}

func TestRunSummaryNoChanges(t *testing.T) {
	t.Parallel()

	g := &fakeGit{unstaged: ""}
	gen := &fakeGenerator{reply: "unused"}
	opts, out, _ := testOptions("")

	outcome, err := RunSummary(context.Background(), opts, g, gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeNoChanges {
		t.Fatalf("expected OutcomeNoChanges, got %v", outcome)
	}
	if gen.calls != 0 {
		t.Fatal("generator must not be called when there are no changes")
	}
	if !strings.Contains(out.String(), "No unstaged changes found.") {
		t.Fatalf("missing no-changes notice: %q", out.String())
	}
}

func TestRunSummaryDisplaysGeneratedText(t *testing.T) {
	t.Parallel()

	g := &fakeGit{unstaged: sampleDiff}
	gen := &fakeGenerator{reply: "Overview.\n- f.py: bug fix"}
	opts, out, _ := testOptions("")

	outcome, err := RunSummary(context.Background(), opts, g, gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeDisplayed {
		t.Fatalf("expected OutcomeDisplayed, got %v", outcome)
	}
	if !strings.Contains(out.String(), "f.py: bug fix") {
		t.Fatalf("summary not displayed: %q", out.String())
	}
	if !strings.Contains(out.String(), "Found 1 file(s)") {
		t.Fatalf("missing change stats: %q", out.String())
	}
}

func TestRunSummaryUsesRenderer(t *testing.T) {
	t.Parallel()

	g := &fakeGit{unstaged: sampleDiff}
	gen := &fakeGenerator{reply: "plain summary"}
	opts, out, _ := testOptions("")
	opts.Renderer = func(s string) string { return "<<" + s + ">>" }

	if _, err := RunSummary(context.Background(), opts, g, gen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "<<plain summary>>") {
		t.Fatalf("renderer was not applied: %q", out.String())
	}
}
