package template

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/commitcraft/internal/ticket"
)

// Error reports a malformed template or a placeholder that is not allowed
// at the call site.
type Error struct {
	Template string
	Reason   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("template %q: %s", e.Template, e.Reason)
}

// Subject renders the commit subject template. Available placeholders:
// {ticket}, {tickets} and {commit_msg}.
func Subject(tmpl string, info *ticket.Info, commitMsg string) (string, error) {
	return render(tmpl, map[string]string{
		"ticket":     info.Ticket,
		"tickets":    info.JoinedTickets(),
		"commit_msg": commitMsg,
	})
}

// Body renders the commit body template. Only {ticket} and {tickets} are
// available; the original subject is not.
func Body(tmpl string, info *ticket.Info) (string, error) {
	return render(tmpl, map[string]string{
		"ticket":  info.Ticket,
		"tickets": info.JoinedTickets(),
	})
}

// render substitutes {name} placeholders from vars. Doubled braces are
// literal braces. Any other stray brace, and any placeholder outside vars,
// is an Error rather than being passed through.
func render(tmpl string, vars map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tmpl); {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", &Error{Template: tmpl, Reason: "unclosed '{'"}
			}
			name := tmpl[i+1 : i+1+end]
			val, ok := vars[name]
			if !ok {
				return "", &Error{Template: tmpl, Reason: fmt.Sprintf("unknown placeholder {%s}", name)}
			}
			b.WriteString(val)
			i += end + 2
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", &Error{Template: tmpl, Reason: "stray '}'"}
		default:
			b.WriteByte(tmpl[i])
			i++
		}
	}
	return b.String(), nil
}
