package git

import (
	"strings"
)

// Change types used in journal commits.
const (
	ChangeTypeFeat  = "feat"
	ChangeTypeFix   = "fix"
	ChangeTypeChore = "chore"
	ChangeTypeDocs  = "docs"
)

// Footer marks commits written by track.
const Footer = "Recorded-by: track"

// FormatChangeReason builds a Conventional Commit message:
//
//	<type>(<scope>): <subject>
//
//	<body>
//
//	Recorded-by: track
func FormatChangeReason(ctype, scope, subject, body string) string {
	var sb strings.Builder

	if ctype == "" {
		ctype = ChangeTypeChore
	}
	sb.WriteString(ctype)

	if scope != "" {
		sb.WriteString("(")
		sb.WriteString(scope)
		sb.WriteString(")")
	}

	sb.WriteString(": ")
	sb.WriteString(subject)

	if body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(strings.TrimSpace(body))
	}

	sb.WriteString("\n\n")
	sb.WriteString(Footer)

	return sb.String()
}

// AppendFooter appends the footer to a free-form message if not present.
func AppendFooter(msg string) string {
	if strings.Contains(msg, Footer) {
		return msg
	}
	msg = strings.TrimRight(msg, "\n")
	return msg + "\n\n" + Footer
}
