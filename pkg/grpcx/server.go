package grpcx

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

type logger interface {
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)
}

type Service interface {
	RegisterService(grpc.ServiceRegistrar)
}

type Options struct {
	addr     string
	services []Service

	logger logger

	grpcOptions []grpc.ServerOption

	maxConnIdle time.Duration
	time        time.Duration
	timeout     time.Duration
}

type Server struct {
	opts     Options
	srv      *grpc.Server
	listener net.Listener
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("grpc server validate: %v", err)
	}

	if opts.logger == nil {
		opts.logger = &noopLogger{}
	}

	recoveryHandler := func(ctx context.Context, p any) error {
		opts.logger.Error(ctx, "grpc panic recovered", slog.String("panic", fmt.Sprint(p)))
		return status.Error(codes.Internal, "internal error")
	}

	opts.grpcOptions = append(opts.grpcOptions,
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: opts.maxConnIdle,
			Time:              opts.time,
			Timeout:           opts.timeout,
		}),
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(slogx.InterceptorLogger(), logging.WithLogOnEvents(logging.FinishCall)),
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoveryHandler)),
		),
	)

	srv := grpc.NewServer(
		opts.grpcOptions...,
	)

	for _, svc := range opts.services {
		svc.RegisterService(srv)
	}

	return &Server{opts: opts, srv: srv}, nil
}

// Listen binds the server address. Run calls it when the caller did not.
func (s *Server) Listen() (net.Addr, error) {
	if s.listener == nil {
		l, err := net.Listen("tcp", s.opts.addr)
		if err != nil {
			return nil, fmt.Errorf("listen grpc: %v", err)
		}
		s.listener = l
	}

	return s.listener.Addr(), nil
}

func (s *Server) Run(ctx context.Context) error {
	addr, err := s.Listen()
	if err != nil {
		return fmt.Errorf("run grpc: %v", err)
	}

	go func() {
		<-ctx.Done()
		s.srv.GracefulStop()
	}()

	s.opts.logger.Info(
		ctx,
		"run grpc server",
		slog.String("addr", addr.String()),
	)

	if err := s.srv.Serve(s.listener); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("listen and server: %v", err)
	}

	return nil
}

type noopLogger struct{}

func (n *noopLogger) Info(context.Context, string, ...slog.Attr)  {}
func (n *noopLogger) Error(context.Context, string, ...slog.Attr) {}
