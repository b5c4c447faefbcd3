package hook

import (
	"regexp"
	"strings"

	"github.com/wahlandcase/commitcraft/internal/template"
	"github.com/wahlandcase/commitcraft/internal/ticket"
)

// skipPrefixes marks subjects of git-generated or special commits which
// must never be rewritten.
var skipPrefixes = []string{"fixup!", "squash!", "amend!", "Merge "}

// Transform rewrites a commit message so its subject carries the ticket from
// the branch name, formatted by subjectTmpl, and (when bodyTmpl is non-empty)
// inserts a rendered body line below the subject. lines is the message split
// with terminators kept; the input slice is never mutated.
//
// It returns the message unchanged with modified=false when the buffer is
// empty, the subject is a fixup/squash/amend/merge commit, the branch carries
// no ticket, or any line of the message already matches re.
func Transform(lines []string, branch string, re *regexp.Regexp, subjectTmpl, bodyTmpl string) ([]string, bool, error) {
	if len(lines) == 0 {
		return lines, false, nil
	}

	subject := strings.TrimRight(lines[0], "\r\n")
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(subject, prefix) {
			return lines, false, nil
		}
	}

	info := ticket.Extract(branch, re)
	if info == nil {
		return lines, false, nil
	}

	// Already ticketed anywhere in the message. Checking every line keeps
	// amends idempotent even when the ticket only appears in the body.
	for _, line := range lines {
		if re.MatchString(line) {
			return lines, false, nil
		}
	}

	newSubject, err := template.Subject(subjectTmpl, info, subject)
	if err != nil {
		return lines, false, err
	}

	body := ""
	if bodyTmpl != "" {
		body, err = template.Body(bodyTmpl, info)
		if err != nil {
			return lines, false, err
		}
	}

	out := make([]string, len(lines))
	copy(out, lines)
	out[0] = newSubject + "\n"

	if bodyTmpl != "" {
		out = insertBody(out, body)
	}

	return out, true, nil
}

// insertBody places body below the subject, separated by a blank line.
// A body already present anywhere below the subject is left alone.
func insertBody(lines []string, body string) []string {
	if len(lines) == 1 {
		lines = append(lines, "\n")
	} else if strings.TrimSpace(lines[1]) != "" {
		lines = insertAt(lines, 1, "\n")
	}

	insertPos := 1
	if len(lines) > 1 {
		insertPos = 2
	}

	needle := strings.TrimSpace(body)
	for _, line := range lines[insertPos:] {
		if strings.Contains(line, needle) {
			return lines
		}
	}

	return insertAt(lines, insertPos, body+"\n")
}

func insertAt(lines []string, pos int, line string) []string {
	lines = append(lines, "")
	copy(lines[pos+1:], lines[pos:])
	lines[pos] = line
	return lines
}
