package app

import "github.com/urfave/cli/v2"

var (
	templateFlag = &cli.StringFlag{
		Name:    "template",
		Aliases: []string{"t"},
		Usage:   "Interview template to run (see 'rehearse templates')",
	}

	roleFlag = &cli.StringFlag{
		Name:    "role",
		Aliases: []string{"r"},
		Usage:   "The role you are interviewing for",
	}

	companyFlag = &cli.StringFlag{
		Name:  "company",
		Usage: "The company you are interviewing with",
	}

	interviewTypeFlag = &cli.StringFlag{
		Name:  "type",
		Usage: "Interview type: behavioral, technical, system-design or mixed",
	}

	difficultyFlag = &cli.StringFlag{
		Name:  "difficulty",
		Usage: "Question difficulty: easy, medium or hard",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Planned interview length, in minutes or as a duration like 1h30m (default: 45m)",
	}

	modeFlag = &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "Recording mode: video-audio, audio-only or practice",
	}

	grantFlag = &cli.BoolFlag{
		Name:  "grant",
		Usage: "Grant camera and microphone access without asking",
	}

	intervalFlag = &cli.UintFlag{
		Name:  "interval",
		Usage: "Seconds between simulated transcript lines (default: 8)",
	}

	noTranscriptFlag = &cli.BoolFlag{
		Name:  "no-transcript",
		Usage: "Do not simulate a live transcript",
	}

	noCuesFlag = &cli.BoolFlag{
		Name:  "no-cues",
		Usage: "Do not play audible cues when the interview starts, moves on or ends",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears once an interview is processed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each interview",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Log debug messages to the log file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	searchFlag = &cli.StringFlag{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   "Only show interviews whose title or company contains this text",
	}

	filterTypeFlag = &cli.StringFlag{
		Name:  "type",
		Usage: "Only show interviews of this type, or 'all'",
		Value: "all",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show interviews on or after this date (e.g. '2 weeks ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the review server",
		Value: 1111,
	}
)
