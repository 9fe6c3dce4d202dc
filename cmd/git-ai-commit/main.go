package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sharvil/gitscribe/pkg/cli"
	"github.com/sharvil/gitscribe/pkg/config"
	"github.com/sharvil/gitscribe/pkg/providers"
	"github.com/sharvil/gitscribe/pkg/providers/gemini"
	"github.com/sharvil/gitscribe/pkg/workflow"
)

func printHelp() {
	const help = `git-ai-commit — generate a commit message from staged changes using Gemini.

The tool reads your staged diff, asks Gemini for a commit message, and shows
it for confirmation: commit as-is, edit it inline, or abort. Nothing is
committed without your approval.

Environment:
  GEMINI_API_KEY: Gemini API credential (required, may come from a .env file).
  GIT_AI_MODEL:   default model name (optional).

Get started:
  1. Stage your changes: git add ...
  2. Run: git-ai-commit
  3. Confirm, edit, or abort the suggested message.

Any non-flag arguments are passed to the model as extra context, e.g.:
  git-ai-commit refactor only, no behavior change

Flags:
`
	fmt.Fprint(os.Stderr, help)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
}

func main() {
	var (
		mFlag     string
		model     string
		noSpinner bool
	)

	cli.InjectBareM()
	flag.BoolVar(&noSpinner, "no-spinner", false, "disable spinner while the model runs")
	flag.StringVar(&model, "model", "", "model name (overrides -m)")
	flag.StringVar(&mFlag, "m", "", "model name, or no value for interactive selection")
	flag.Usage = printHelp
	flag.Parse()

	extraNote := ""
	if flag.NArg() > 0 {
		extraNote = strings.Join(flag.Args(), " ")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	selected, err := cli.ResolveModel(mFlag, model, cfg.Model)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := gemini.NewClient(ctx, cfg.APIKey, selected)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var registry providers.Registry
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		for sig := range sigCh {
			handled := registry.ForwardSignal(sig)
			registry.StopSpinnerIfSet()
			if !handled {
				os.Exit(130)
			}
		}
	}()

	fmt.Println("AI Git Commit Message Generator")
	fmt.Println()

	_, err = workflow.RunCommit(ctx, workflow.Options{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		ExtraNote:   extraNote,
		ShowSpinner: !noSpinner,
		ModelLabel:  "gemini +" + client.Model(),
		Registry:    &registry,
	}, workflow.SystemGit{}, client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating commit message: %v\n", err)
		os.Exit(1)
	}
}
