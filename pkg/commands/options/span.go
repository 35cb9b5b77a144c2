package options

import (
	"github.com/spf13/pflag"

	"github.com/majdbaddour/timeline/pkg/timeutil"
)

// Span is a flag holding a span such as "1w" or "90m", in milliseconds.
type Span struct {
	MS   float64
	text string
}

var _ pflag.Value = (*Span)(nil)

func (s *Span) String() string {
	return s.text
}

// Set parses v, rejecting it as flag input when it is not a span.
func (s *Span) Set(v string) error {
	ms, text, err := timeutil.ParseSpan(v)
	if err != nil {
		return err
	}
	s.MS, s.text = ms, text
	return nil
}

func (s *Span) Type() string {
	return "span"
}

// IsSet reports whether a span was given.
func (s *Span) IsSet() bool {
	return s.MS > 0
}
