package nav

import (
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/majdbaddour/timeline/pkg/calendar"
)

// PromptLevel asks for one of levels on the terminal.
func PromptLevel(levels []calendar.Level) (calendar.Name, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Label | bold }} {{ .Name | green }}",
		Inactive: "   {{ .Label }} {{ .Name | cyan }}",
		Selected: "{{ .Label | bold }}",
	}

	searcher := func(input string, index int) bool {
		l := levels[index]
		name := strings.ToLower(l.Label + string(l.Name))
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Calendar level",
		Items:     levels,
		Templates: templates,
		Size:      len(levels),
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return levels[i].Name, nil
}
