package gwserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type OptOptionsSetter func(o *Options)

func NewOptions(
	addr string,
	handler http.Handler,
	options ...OptOptionsSetter,
) Options {
	o := Options{}

	o.addr = addr
	o.handler = handler

	for _, opt := range options {
		opt(&o)
	}

	return o
}

func WithMiddlewares(opt ...func(http.Handler) http.Handler) OptOptionsSetter {
	return func(o *Options) { o.middlewares = append(o.middlewares, opt...) }
}

func WithLogger(opt Logger) OptOptionsSetter {
	return func(o *Options) { o.logger = opt }
}

func (o *Options) Validate() error {
	var handlerErr error
	if o.handler == nil {
		handlerErr = errors.New("field `handler` is required")
	}

	return errors.Join(
		check("addr", o.addr, "required,hostname_port"),
		handlerErr,
	)
}

func check(field string, v any, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("field `%s` did not pass the test: %w", field, err)
	}

	return nil
}
