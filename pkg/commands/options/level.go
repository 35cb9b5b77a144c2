package options

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/control"
)

// ResolveLevel finds the level named by input. Exact names and labels win;
// otherwise the best fuzzy match, so "mon" finds month and "5min" finds
// minutes5.
func ResolveLevel(table *calendar.Table, input string) (calendar.Name, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", fmt.Errorf("%w: empty name", control.ErrUnknownLevel)
	}

	levels := table.Levels()
	names := make([]string, 0, 2*len(levels))
	owners := make([]calendar.Name, 0, 2*len(levels))
	for _, l := range levels {
		for _, s := range []string{strings.ToLower(string(l.Name)), strings.ToLower(l.Label)} {
			if s == needle {
				return l.Name, nil
			}
			names = append(names, s)
			owners = append(owners, l.Name)
		}
	}

	matches := fuzzy.Find(needle, names)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q", control.ErrUnknownLevel, input)
	}
	return owners[matches[0].Index], nil
}
