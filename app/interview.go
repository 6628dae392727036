package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/rehearse/internal/room"
	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/status"
)

// runRoom runs the interview room and returns the handoff, which is nil if the
// session was left without ending. The clock, the media stream and the status
// file are released on every exit path, including a killed program.
func runRoom(
	r *room.Model,
	ctrl *session.Controller,
	statusPath string,
	opts ...tea.ProgramOption,
) (*session.Handoff, error) {
	defer func() {
		if err := ctrl.Close(); err != nil {
			slog.Warn("closing session failed", slog.Any("error", err))
		}

		if statusPath == "" {
			return
		}

		if err := status.Remove(statusPath); err != nil {
			slog.Warn("removing status file failed", slog.Any("error", err))
		}
	}()

	if _, err := tea.NewProgram(r, opts...).Run(); err != nil {
		return nil, errRunRoom.Wrap(err)
	}

	return r.Handoff(), nil
}
