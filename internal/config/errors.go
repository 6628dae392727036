package config

import "github.com/ayoisaiah/rehearse/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errUnknownTemplate = &apperr.Error{
		Message: "unknown interview template: %s",
	}

	errUnknownType = &apperr.Error{
		Message: "unknown interview type: %s",
	}

	errUnknownDifficulty = &apperr.Error{
		Message: "unknown difficulty: %s (must be easy, medium or hard)",
	}

	errEmptyRole = &apperr.Error{
		Message: "target role cannot be empty",
	}

	errInvalidDuration = &apperr.Error{
		Message: "interview duration must be between %v and %v, got %v",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration %q",
	}

	errUnknownMode = &apperr.Error{
		Message: "unknown recording mode: %s",
	}

	errInvalidColor = &apperr.Error{
		Message: "accent color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidInterval = &apperr.Error{
		Message: "transcript interval must be between %d and %d seconds, got %d",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid --since value %q",
	}
)
