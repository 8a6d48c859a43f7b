package grpcx

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"
)

var validate = validator.New()

type OptOptionsSetter func(o *Options)

func NewOptions(
	addr string,
	options ...OptOptionsSetter,
) Options {
	o := Options{
		maxConnIdle: 5 * time.Minute,
		time:        2 * time.Hour,
		timeout:     20 * time.Second,
	}

	o.addr = addr

	for _, opt := range options {
		opt(&o)
	}

	return o
}

func WithServices(opt ...Service) OptOptionsSetter {
	return func(o *Options) { o.services = append(o.services, opt...) }
}

func WithLogger(opt logger) OptOptionsSetter {
	return func(o *Options) { o.logger = opt }
}

func WithGrpcOptions(opt ...grpc.ServerOption) OptOptionsSetter {
	return func(o *Options) { o.grpcOptions = append(o.grpcOptions, opt...) }
}

func WithKeepalive(t, timeout time.Duration) OptOptionsSetter {
	return func(o *Options) {
		if t > 0 {
			o.time = t
		}
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func (o *Options) Validate() error {
	return errors.Join(
		check("addr", o.addr, "required,hostname_port"),
		check("services", o.services, "required,min=1"),
	)
}

func check(field string, v any, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("field `%s` did not pass the test: %w", field, err)
	}

	return nil
}
