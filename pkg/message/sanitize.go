package message

import "strings"

// Sanitize normalizes a raw model reply: trims whitespace, strips one
// wrapping code fence and one matching pair of quotes. Models wrap their
// answer in quotes or fences often enough that prompting alone is not
// reliable.
func Sanitize(raw string) string {
	text := strings.TrimSpace(raw)
	text = stripCodeFence(text)
	text = stripQuotePair(text)
	return strings.TrimSpace(text)
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	inner := strings.TrimPrefix(text, "```")
	inner = strings.TrimSuffix(inner, "```")
	// Drop an optional language tag on the opening fence line.
	if idx := strings.Index(inner, "\n"); idx != -1 {
		firstLine := strings.TrimSpace(inner[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, " \t") {
			inner = inner[idx+1:]
		}
	}
	return strings.TrimSpace(inner)
}

func stripQuotePair(text string) string {
	if len(text) < 2 {
		return text
	}
	first, last := text[0], text[len(text)-1]
	if first != last {
		return text
	}
	if first != '"' && first != '\'' {
		return text
	}
	return text[1 : len(text)-1]
}
