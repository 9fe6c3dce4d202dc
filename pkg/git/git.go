package git

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

var ErrNotGitDir = errors.New("not a git directory")

// maxDiffBytes is the cap for a diff sent to the model; larger diffs fall
// back to --stat output.
const maxDiffBytes = 512 * 1024

// gitCmd returns an exec.Cmd for git with GIT_PAGER=cat set so that git never
// invokes a pager regardless of the user's config.
func gitCmd(args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Env = append(cmd.Environ(), "GIT_PAGER=cat")
	return cmd
}

func checkGitDir() error {
	check := gitCmd("rev-parse", "--git-dir")
	check.Stderr = io.Discard
	if err := check.Run(); err != nil {
		return ErrNotGitDir
	}
	return nil
}

// diff runs git diff with the given selector args, falling back to --stat
// when the output exceeds maxDiffBytes. The result is trimmed of surrounding
// whitespace; an empty string means no pending changes.
func diff(args ...string) (string, error) {
	if err := checkGitDir(); err != nil {
		return "", err
	}
	diffArgs := append([]string{"diff"}, args...)
	cmd := gitCmd(diffArgs...)
	cmd.Stderr = io.Discard
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to read diff (git %s): %w", strings.Join(diffArgs, " "), err)
	}
	if len(out) > maxDiffBytes {
		statArgs := append(diffArgs, "--stat")
		stat := gitCmd(statArgs...)
		stat.Stderr = io.Discard
		statOut, statErr := stat.Output()
		if statErr != nil {
			return "", fmt.Errorf("failed to read diff stat: %w", statErr)
		}
		return "[diff too large; showing --stat summary only]\n" + strings.TrimSpace(string(statOut)), nil
	}
	return strings.TrimSpace(string(out)), nil
}

// DiffStaged returns the diff of changes staged for the next commit.
func DiffStaged() (string, error) {
	return diff("--staged")
}

// DiffUnstaged returns the diff of working-tree changes not yet staged.
func DiffUnstaged() (string, error) {
	return diff()
}

// Commit commits the staged changes with the given message. Git's own output
// is passed through so the operator sees what was committed (or why the
// commit was rejected, e.g. by a hook).
func Commit(message string) error {
	cmd := gitCmd("commit", "-m", message)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}

// CountChangedFiles counts the files touched by a textual diff by its
// per-file header lines.
func CountChangedFiles(diff string) int {
	count := 0
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "diff --git ") {
			count++
		}
	}
	return count
}
