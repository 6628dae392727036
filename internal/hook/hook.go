// Package hook runs the user's command after an interview ends.
package hook

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/rehearse/internal/session"
)

// Env returns the variables describing the handoff that the command can read.
func Env(h session.Handoff) []string {
	return []string{
		"REHEARSE_SESSION_ID=" + h.SessionID,
		"REHEARSE_REASON=" + string(h.Reason),
		fmt.Sprintf("REHEARSE_ELAPSED=%d", h.Elapsed),
		fmt.Sprintf("REHEARSE_QUESTIONS=%d/%d", h.Reached, h.Total),
		fmt.Sprintf("REHEARSE_FLAGGED=%d", len(h.Flagged)),
	}
}

// Command builds the command for sessionCmd. It returns nil when sessionCmd
// is empty.
func Command(
	ctx context.Context,
	sessionCmd string,
	h session.Handoff,
) (*exec.Cmd, error) {
	if sessionCmd == "" {
		return nil, nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(os.Environ(), Env(h)...)

	return cmd, nil
}

// Run executes sessionCmd and waits for it to finish.
func Run(ctx context.Context, sessionCmd string, h session.Handoff) error {
	cmd, err := Command(ctx, sessionCmd, h)
	if err != nil || cmd == nil {
		return err
	}

	return cmd.Run()
}
