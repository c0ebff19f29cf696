package server

import (
	"context"
	"net"

	"github.com/MKhiriev/go-patient-registry/internal/config"
	myGRPC "github.com/MKhiriev/go-patient-registry/internal/handler/grpc"
	"github.com/MKhiriev/go-patient-registry/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.gRPCNetListener = ln
	return nil
}

func (g *grpcServer) addr() string {
	if g.gRPCNetListener == nil {
		return g.address
	}
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) RunServer() error {
	if g.gRPCNetListener == nil {
		if err := g.listen(); err != nil {
			return err
		}
	}

	g.logger.Info().Str("address", g.addr()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
		return err
	}
	return nil
}

// Shutdown flips health to NOT_SERVING, then drains open streams. If ctx
// expires first the remaining streams are cut.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
