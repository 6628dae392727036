package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

type helpSection struct {
	title string
	body  string
}

// helpText builds the urfave/cli template used for `rehearse --help`.
func helpText() string {
	sections := []helpSection{
		{"DESCRIPTION", "\t\t{{.Usage}}"},
		{"USAGE", "\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}"},
		{"AUTHOR", "{{if len .Authors}}\t\t{{range .Authors}}{{ . }}{{end}}{{end}}"},
		{"VERSION", "{{if .Version}}\t\t{{.Version}}{{end}}"},
		{
			"COMMANDS",
			fmt.Sprintf(
				"{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
				pterm.Green("{{join .Names `, `}}"),
			),
		},
		{
			"OPTIONS",
			fmt.Sprintf(
				"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
				pterm.Green("-{{$element}}"),
				pterm.Green("--{{.Name}} {{.DefaultText}}"),
			),
		},
		{"INTERVIEW ROOM KEYS", "\t\t" + keysHelp},
		{"ENVIRONMENTAL VARIABLES", "\t\t" + envHelp},
		{"WEBSITE", "\t\thttps://github.com/ayoisaiah/rehearse"},
	}

	var s strings.Builder

	for _, sec := range sections {
		fmt.Fprintf(&s, "%s\n%s\n\n", pterm.Yellow(sec.title), sec.body)
	}

	return s.String()
}

const keysHelp = `
space: start or pause recording · →/l/enter: next question · ←/h: previous question
s: skip · f: flag for review · m: mute · c: camera · n: notes · q: leave · ?: all keys`

const envHelp = `
REHEARSE_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

REHEARSE_ENV: keep a separate config, status and log file per environment (e.g. 'dev').`
