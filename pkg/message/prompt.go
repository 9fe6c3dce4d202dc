package message

import "strings"

// PromptOptions contains the pieces used to build a generation prompt.
type PromptOptions struct {
	Diff      string
	ExtraNote string
}

// BuildCommitPrompt builds the prompt for generating a commit message from
// a staged diff. The model is told to return the bare message and nothing
// else; Sanitize guards against it ignoring that.
func BuildCommitPrompt(opts PromptOptions) string {
	var prompt strings.Builder

	prompt.WriteString("You are a Git commit message expert. Analyze the following git diff and generate a concise, professional commit message.\n\n")
	prompt.WriteString("REQUIREMENTS:\n")
	prompt.WriteString("- The message must be 50-72 characters long\n")
	prompt.WriteString("- Use imperative mood (e.g., \"Add feature\" not \"Added feature\")\n")
	prompt.WriteString("- Be specific about what changed\n")
	prompt.WriteString("- Do not include any explanation, prefix, or formatting\n")
	prompt.WriteString("- Return ONLY the commit message text, nothing else\n")
	if strings.TrimSpace(opts.ExtraNote) != "" {
		prompt.WriteString("\nExtra context from the author:\n")
		prompt.WriteString(strings.TrimSpace(opts.ExtraNote))
		prompt.WriteString("\n")
	}
	prompt.WriteString("\nGIT DIFF:\n")
	prompt.WriteString(opts.Diff)
	prompt.WriteString("\n\nCommit message:")

	return prompt.String()
}

// BuildSummaryPrompt builds the prompt for summarizing an unstaged diff as
// readable prose with per-file bullet points.
func BuildSummaryPrompt(opts PromptOptions) string {
	var prompt strings.Builder

	prompt.WriteString("You are a code review assistant. Analyze the following git diff and generate a clear, concise natural-language summary.\n\n")
	prompt.WriteString("Your summary should explain:\n")
	prompt.WriteString("1. What files were changed\n")
	prompt.WriteString("2. What type of changes were made (bug fix, new feature, refactoring, documentation, configuration, etc.)\n")
	prompt.WriteString("3. A brief description of the specific changes in each file\n\n")
	prompt.WriteString("Format your response as:\n")
	prompt.WriteString("- Start with an overview sentence\n")
	prompt.WriteString("- List each file with bullet points explaining changes\n")
	prompt.WriteString("- Be specific but concise\n")
	prompt.WriteString("- Use technical terms appropriately but keep it readable\n")
	if strings.TrimSpace(opts.ExtraNote) != "" {
		prompt.WriteString("\nExtra context from the author:\n")
		prompt.WriteString(strings.TrimSpace(opts.ExtraNote))
		prompt.WriteString("\n")
	}
	prompt.WriteString("\nGIT DIFF:\n")
	prompt.WriteString(opts.Diff)
	prompt.WriteString("\n\nSummary:")

	return prompt.String()
}
