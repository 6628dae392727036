package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/rehearse/internal/catalog"
	"github.com/ayoisaiah/rehearse/internal/media"
)

const asciiLogo = `
██████╗ ███████╗██╗  ██╗███████╗ █████╗ ██████╗ ███████╗███████╗
██╔══██╗██╔════╝██║  ██║██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝
██████╔╝█████╗  ███████║█████╗  ███████║██████╔╝███████╗█████╗
██╔══██╗██╔══╝  ██╔══██║██╔══╝  ██╔══██║██╔══██╗╚════██║██╔══╝
██║  ██║███████╗██║  ██║███████╗██║  ██║██║  ██║███████║███████╗
╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝`

// PromptOptions holds the user's responses to the onboarding prompts.
type PromptOptions struct {
	Role string
	Type string
	Mode string
}

// WithPromptConfig returns an Option that asks for the basics on first run.
// It does nothing once a config file exists.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser(catalog.Default())
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// onboardingForm builds the first-run form, writing answers into opts.
func onboardingForm(cat *catalog.Catalog, opts *PromptOptions) *huh.Form {
	roles := make([]huh.Option[string], len(cat.Roles))
	for i, r := range cat.Roles {
		roles[i] = huh.NewOption(r, r)
	}

	types := make([]huh.Option[string], len(cat.Types))
	for i, t := range cat.Types {
		types[i] = huh.NewOption(t.Label+" - "+t.Description, t.Value)
	}

	modes := make([]huh.Option[string], len(media.Modes))
	for i, m := range media.Modes {
		modes[i] = huh.NewOption(m.Label(), string(m))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What role are you preparing for?").
				Options(roles...).
				Value(&opts.Role),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which interview type do you want to practice?").
				Options(types...).
				Value(&opts.Type),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How do you want to record?").
				Options(modes...).
				Value(&opts.Mode),
		),
	)
}

// promptUser handles the interactive configuration process.
func promptUser(cat *catalog.Catalog) (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to set up rehearse for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'rehearse edit-config' to change any settings.`, " ").
		Render()

	err := onboardingForm(cat, &opts).Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Interview.Role = opts.Role
	c.Interview.Type = opts.Type
	c.Media.Mode = opts.Mode
}
