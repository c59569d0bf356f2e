package chat

import "strings"

const (
	blankLine   = "\n\n"
	fenceMarker = "```"
)

// Reply is an assistant message split for display.
type Reply struct {
	Description string // Leading text before the first blank line
	Code        string // Code block body with any fence markers removed
	Language    string // Fence info string, when the code was fenced
	HasCode     bool
}

// FormatReply builds assistant content from a header line and generated code,
// separated by one blank line.
func FormatReply(header, code string) string {
	return header + blankLine + code
}

// ParseReply splits assistant content into a description and a code block.
//
// Content is treated as carrying code when it contains a fence marker or
// spans more than two lines. The description is the text before the first
// blank line and the code is everything after it. Without a blank line the
// whole content is the code and the description is empty.
//
// Known misclassifications:
//   - prose of three or more lines is reported as code (false positive)
//   - a one or two line snippet without a fence is reported as prose (false negative)
func ParseReply(content string) Reply {
	r := Reply{
		HasCode: strings.Contains(content, fenceMarker) || strings.Count(content, "\n") >= 2,
	}

	desc, rest, found := strings.Cut(content, blankLine)
	if !r.HasCode {
		r.Description = content
		return r
	}
	if found {
		r.Description = desc
		r.Code = rest
	} else {
		r.Code = content
	}

	r.Code, r.Language = stripFence(r.Code)
	return r
}

// stripFence extracts the body of the first fenced block in code. Code without
// a fence is returned unchanged. An unterminated fence runs to the end.
func stripFence(code string) (string, string) {
	start := strings.Index(code, fenceMarker)
	if start < 0 {
		return code, ""
	}
	after := code[start+len(fenceMarker):]
	info, body, ok := strings.Cut(after, "\n")
	if !ok {
		return code, ""
	}
	if end := strings.Index(body, fenceMarker); end >= 0 {
		body = body[:end]
	}
	return strings.TrimRight(body, "\n"), strings.TrimSpace(info)
}
