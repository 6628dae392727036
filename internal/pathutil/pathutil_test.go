package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPathsEnvironment(t *testing.T) {
	testCases := []struct {
		name   string
		env    string
		config string
		status string
		log    string
	}{
		{
			name:   "no environment",
			config: "config.yml",
			status: "status.json",
			log:    "rehearse.log",
		},
		{
			name:   "named environment",
			env:    "dev",
			config: "config_dev.yml",
			status: "status_dev.json",
			log:    "rehearse_dev.log",
		},
		{
			name:   "blank environment is ignored",
			env:    "   ",
			config: "config.yml",
			status: "status.json",
			log:    "rehearse.log",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPaths(tc.env)

			assert.Equal(t, "rehearse", p.configDir)
			assert.Equal(t, tc.config, p.configFileName)
			assert.Equal(t, tc.status, p.statusFileName)
			assert.Equal(t, tc.log, p.logFileName)
		})
	}
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "config", StripExtension("config.yml"))
	assert.Equal(t, "rehearse", StripExtension("rehearse"))
}
