// Package app wires the rehearse command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rehearse/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the rehearse app instance.
func Get() *cli.App {
	filterFlags := []cli.Flag{searchFlag, filterTypeFlag, sinceFlag, jsonFlag}

	return &cli.App{
		Name: "rehearse",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Rehearse is a mock interview room for the command-line. Pick a template,
		answer each question while the session records, then review the
		transcript and feedback of past interviews.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List past interviews, newest first",
				Flags:   filterFlags,
				Action:  listAction,
			},
			{
				Name:      "show",
				Usage:     "Print the transcript and evaluation of a past interview",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    showAction,
			},
			{
				Name:      "compare",
				Usage:     "Compare the competency ratings of two past interviews",
				ArgsUsage: "<id> <id>",
				Action:    compareAction,
			},
			{
				Name:   "templates",
				Usage:  "List the interview templates",
				Flags:  []cli.Flag{jsonFlag},
				Action: templatesAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve past interviews over a JSON API",
				Flags:  []cli.Flag{portFlag, debugFlag},
				Action: serveAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the interview in progress",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			templateFlag,
			roleFlag,
			companyFlag,
			interviewTypeFlag,
			difficultyFlag,
			durationFlag,
			modeFlag,
			grantFlag,
			intervalFlag,
			noTranscriptFlag,
			noCuesFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			debugFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
