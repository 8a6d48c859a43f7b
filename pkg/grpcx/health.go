package grpcx

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Health serves grpc.health.v1. It reports NOT_SERVING until SetServing(true).
type Health struct {
	srv *health.Server
}

func NewHealth() *Health {
	h := &Health{srv: health.NewServer()}
	h.SetServing(false)

	return h
}

func (h *Health) RegisterService(r grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(r, h.srv)
}

func (h *Health) SetServing(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}

	h.srv.SetServingStatus("", st)
}

// Shutdown flips every service to NOT_SERVING ahead of a graceful stop.
func (h *Health) Shutdown() {
	h.srv.Shutdown()
}
