package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sharvil/gitscribe/pkg/providers/gemini"
	"github.com/sharvil/gitscribe/pkg/ui"
)

// MenuSentinel is the value injected for a bare -m flag.
const MenuSentinel = "menu"

// InjectBareM rewrites os.Args so that a bare -m (no value) carries the menu
// sentinel, since stdlib flag cannot express an optional flag value.
func InjectBareM() {
	args := os.Args
	var out []string
	for i := 0; i < len(args); i++ {
		out = append(out, args[i])
		if args[i] != "-m" {
			continue
		}
		next := i + 1
		if next >= len(args) || strings.HasPrefix(args[next], "-") {
			out = append(out, MenuSentinel)
			continue
		}
		out = append(out, args[next])
		i = next
	}
	os.Args = out
}

// ResolveModel picks the model name from the -model flag, the -m flag (which
// may request the interactive menu), or the environment default, in that
// order. Explicit names are validated against the supported catalog; the
// environment default falls back silently when unknown.
func ResolveModel(mFlag, modelFlag, envDefault string) (string, error) {
	models := gemini.Models()

	validate := func(name string) (string, error) {
		if !gemini.IsModelSupported(name) {
			return "", fmt.Errorf("invalid model %q (use -m for interactive pick, or one of: %s)", name, strings.Join(models, ", "))
		}
		return name, nil
	}

	switch {
	case strings.TrimSpace(modelFlag) != "":
		return validate(strings.TrimSpace(modelFlag))
	case mFlag == MenuSentinel:
		return ui.SelectModelMenu(models)
	case strings.TrimSpace(mFlag) != "":
		return validate(strings.TrimSpace(mFlag))
	default:
		return envDefault, nil
	}
}
