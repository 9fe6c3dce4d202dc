package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Kind tags the terminal states of the confirmation loop.
type Kind int

const (
	// Accept commits the candidate message unchanged.
	Accept Kind = iota
	// AcceptEdited commits an operator-supplied replacement.
	AcceptEdited
	// Abort ends the run without committing.
	Abort
)

// Decision is the single terminal outcome of one confirmation loop.
type Decision struct {
	Kind    Kind
	Message string
}

const separator = "======================================================================"

// Run displays the candidate message and loops until the operator picks
// commit, edit, or abort. Invalid input and empty edited messages re-enter
// the loop; end of input is treated as abort so a closed stdin can never
// spin forever.
func Run(in io.Reader, out io.Writer, candidate string) Decision {
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "\n%s\n", separator)
	fmt.Fprintln(out, "SUGGESTED COMMIT MESSAGE:")
	fmt.Fprintln(out, separator)
	fmt.Fprintf(out, "\n%s\n\n", candidate)
	fmt.Fprintln(out, separator)

	for {
		fmt.Fprint(out, "\n[c]ommit / [e]dit / [a]bort? ")
		line, err := reader.ReadString('\n')
		choice := strings.ToLower(strings.TrimSpace(line))

		switch choice {
		case "c":
			return Decision{Kind: Accept, Message: candidate}
		case "a":
			return Decision{Kind: Abort}
		case "e":
			fmt.Fprintln(out, "\nEnter your commit message (press Enter when done):")
			fmt.Fprint(out, "> ")
			edited, editErr := reader.ReadString('\n')
			edited = strings.TrimSpace(edited)
			if edited != "" {
				return Decision{Kind: AcceptEdited, Message: edited}
			}
			fmt.Fprintln(out, "Empty message, please try again.")
			if editErr != nil {
				return Decision{Kind: Abort}
			}
		default:
			if choice != "" {
				fmt.Fprintln(out, "Invalid choice. Please enter 'c', 'e', or 'a'.")
			}
		}

		if err != nil {
			return Decision{Kind: Abort}
		}
	}
}
