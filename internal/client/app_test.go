package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/mock"
	"github.com/MKhiriev/go-patient-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	calls int
	err   error
}

func (f *fakeUI) MainLoop(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	ctrl := gomock.NewController(t)
	_, err = NewApp(mock.NewMockServerAdapter(ctrl), nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_OpensUIEvenWhenServerIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().GetServerBuildInfo(gomock.Any()).Return(models.AppBuildInfo{}, errors.New("connection refused"))

	ui := &fakeUI{}
	app, err := NewApp(serverAdapter, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 1, ui.calls)
}

func TestApp_Run_UIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().GetServerBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.0.0", "", ""), nil)

	boom := errors.New("terminal gone")
	app, err := NewApp(serverAdapter, &fakeUI{err: boom}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.run(context.Background()), boom)
}
