package memoclient

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultTimeout = 10 * time.Second

var validate = validator.New()

type OptOptionsSetter func(o *Options)

type Options struct {
	baseURL string
	token   string
	timeout time.Duration
}

func NewOptions(baseURL string, options ...OptOptionsSetter) Options {
	o := Options{timeout: defaultTimeout}

	o.baseURL = baseURL

	for _, opt := range options {
		opt(&o)
	}

	return o
}

// WithToken sends the token as a bearer Authorization header.
func WithToken(opt string) OptOptionsSetter {
	return func(o *Options) { o.token = opt }
}

func WithTimeout(opt time.Duration) OptOptionsSetter {
	return func(o *Options) { o.timeout = opt }
}

func (o *Options) Validate() error {
	return errors.Join(
		check("baseURL", o.baseURL, "required,http_url"),
		check("timeout", o.timeout, "gt=0"),
	)
}

func check(field string, v any, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("field `%s` did not pass the test: %w", field, err)
	}

	return nil
}
