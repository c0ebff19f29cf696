// Package tui implements the terminal client of the patient registry on
// top of bubbletea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-patient-registry/internal/adapter"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("salió del programa")

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if serverAdapter == nil {
		return nil, errors.New("nil server adapter")
	}
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: logger}, nil
}

// MainLoop runs the interactive program until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.adapter, t.buildInfo, t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(mainLoopModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
