package ticket

import (
	"fmt"
	"regexp"
	"strings"
)

// Info holds the tickets extracted from a branch name.
// Ticket is always the first entry of Tickets.
type Info struct {
	Ticket  string
	Tickets []string
}

// JoinedTickets returns all tickets as a comma-separated list
func (i *Info) JoinedTickets() string {
	return strings.Join(i.Tickets, ", ")
}

// Compile compiles a user-supplied ticket pattern case-insensitively
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Extract collects every non-overlapping match of re in the branch name, in
// order of appearance. When the pattern has capture groups, each match
// contributes its first non-empty group instead of the whole match span.
// Matches are trimmed and upper-cased; duplicates are kept. Returns nil when
// nothing usable matched.
func Extract(branch string, re *regexp.Regexp) *Info {
	var raw []string
	if re.NumSubexp() > 0 {
		for _, m := range re.FindAllStringSubmatch(branch, -1) {
			for _, group := range m[1:] {
				if group != "" {
					raw = append(raw, group)
					break
				}
			}
		}
	} else {
		raw = re.FindAllString(branch, -1)
	}

	tickets := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tickets = append(tickets, strings.ToUpper(t))
	}

	if len(tickets) == 0 {
		return nil
	}
	return &Info{Ticket: tickets[0], Tickets: tickets}
}
