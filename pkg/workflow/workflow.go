package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sharvil/gitscribe/pkg/confirm"
	"github.com/sharvil/gitscribe/pkg/git"
	"github.com/sharvil/gitscribe/pkg/message"
	"github.com/sharvil/gitscribe/pkg/providers"
	"github.com/sharvil/gitscribe/pkg/ui"
)

// Outcome is the terminal result of one workflow run. Fatal conditions
// (missing credential, service failure) are returned as errors instead.
type Outcome int

const (
	OutcomeNoChanges Outcome = iota
	OutcomeCommitted
	OutcomeCommitFailed
	OutcomeAborted
	OutcomeDisplayed
)

// Git is the version-control capability the workflows consume. The real
// implementation shells out to the git binary; tests substitute a fake.
type Git interface {
	DiffStaged() (string, error)
	DiffUnstaged() (string, error)
	Commit(message string) error
}

// SystemGit runs the real git binary.
type SystemGit struct{}

func (SystemGit) DiffStaged() (string, error)   { return git.DiffStaged() }
func (SystemGit) DiffUnstaged() (string, error) { return git.DiffUnstaged() }
func (SystemGit) Commit(msg string) error       { return git.Commit(msg) }

// Options carries the I/O streams and presentation knobs for a run.
type Options struct {
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
	ExtraNote   string
	ShowSpinner bool
	ModelLabel  string
	Registry    *providers.Registry
	// Renderer formats the generated summary for display; nil means plain.
	Renderer func(string) string
}

// RunCommit drives the commit-message workflow: staged diff, generation,
// confirmation loop, commit. A failing diff subprocess is soft: it is
// reported and the run takes the no-changes branch.
func RunCommit(ctx context.Context, opts Options, g Git, gen providers.Generator) (Outcome, error) {
	fmt.Fprintln(opts.Out, "Checking for staged changes...")
	diff, err := g.DiffStaged()
	if err != nil {
		fmt.Fprintf(opts.Err, "Error reading staged changes: %v\n", err)
		diff = ""
	}
	if strings.TrimSpace(diff) == "" {
		fmt.Fprintln(opts.Out, "\nNo staged changes found.")
		fmt.Fprintln(opts.Out, "Use 'git add <files>' to stage changes before running this tool.")
		return OutcomeNoChanges, nil
	}
	fmt.Fprintf(opts.Out, "Found %d file(s) with %d lines of staged changes.\n", git.CountChangedFiles(diff), countLines(diff))

	candidate, err := synthesize(ctx, opts, gen, message.BuildCommitPrompt(message.PromptOptions{
		Diff:      diff,
		ExtraNote: opts.ExtraNote,
	}))
	if err != nil {
		return OutcomeAborted, err
	}

	decision := confirm.Run(opts.In, opts.Out, candidate)
	if decision.Kind == confirm.Abort {
		fmt.Fprintln(opts.Out, "\nCommit aborted.")
		return OutcomeAborted, nil
	}

	fmt.Fprintf(opts.Out, "\nCommitting with message: %q\n", decision.Message)
	if err := g.Commit(decision.Message); err != nil {
		fmt.Fprintf(opts.Err, "Error committing changes: %v\n", err)
		return OutcomeCommitFailed, nil
	}
	fmt.Fprintln(opts.Out, "\nChanges committed successfully.")
	return OutcomeCommitted, nil
}

// RunSummary drives the diff-summary workflow: unstaged diff, generation,
// display. Nothing is mutated, so there is no confirmation step.
func RunSummary(ctx context.Context, opts Options, g Git, gen providers.Generator) (Outcome, error) {
	fmt.Fprintln(opts.Out, "Analyzing unstaged changes...")
	diff, err := g.DiffUnstaged()
	if err != nil {
		fmt.Fprintf(opts.Err, "Error reading unstaged changes: %v\n", err)
		diff = ""
	}
	if strings.TrimSpace(diff) == "" {
		fmt.Fprintln(opts.Out, "\nNo unstaged changes found.")
		fmt.Fprintln(opts.Out, "Make some changes to your files, then run this tool to see a summary.")
		return OutcomeNoChanges, nil
	}
	fmt.Fprintf(opts.Out, "Found %d file(s) with %d lines of changes.\n", git.CountChangedFiles(diff), countLines(diff))

	summary, err := synthesize(ctx, opts, gen, message.BuildSummaryPrompt(message.PromptOptions{
		Diff:      diff,
		ExtraNote: opts.ExtraNote,
	}))
	if err != nil {
		return OutcomeAborted, err
	}

	if opts.Renderer != nil {
		summary = opts.Renderer(summary)
	}
	fmt.Fprintln(opts.Out, summary)
	return OutcomeDisplayed, nil
}

// synthesize sends one prompt to the generator with the spinner and signal
// registration around it, and post-processes the reply.
func synthesize(ctx context.Context, opts Options, gen providers.Generator, prompt string) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stop func()
	if opts.ShowSpinner {
		stop = ui.StartSpinner(ui.RandomSpinnerMessage(), opts.ModelLabel, opts.Registry)
		defer stop()
	}
	if opts.Registry != nil {
		opts.Registry.Register(cancel, stop)
		defer opts.Registry.Unregister()
	}

	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		if opts.Registry != nil && opts.Registry.WasInterrupted() {
			return "", errors.New("generation interrupted")
		}
		return "", err
	}
	text := message.Sanitize(raw)
	if text == "" {
		return "", errors.New("model returned an empty message")
	}
	return text, nil
}

func countLines(text string) int {
	return len(strings.Split(text, "\n"))
}
