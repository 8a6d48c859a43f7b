package database

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type OptOptionsSetter func(o *Options)

func NewOptions(
	address string,
	username string,
	password string,
	database string,
	options ...OptOptionsSetter,
) Options {
	o := Options{
		retry:         true,
		retryAttempts: 1,
		maxConns:      5,
	}

	o.address = address
	o.username = username
	o.password = password
	o.database = database

	for _, opt := range options {
		opt(&o)
	}

	return o
}

func WithRetry(opt bool) OptOptionsSetter {
	return func(o *Options) { o.retry = opt }
}

func WithRetryAttempts(opt uint) OptOptionsSetter {
	return func(o *Options) { o.retryAttempts = opt }
}

func WithLogger(opt logger) OptOptionsSetter {
	return func(o *Options) { o.logger = opt }
}

func WithMaxConns(opt int32) OptOptionsSetter {
	return func(o *Options) { o.maxConns = opt }
}

func (o *Options) Validate() error {
	return errors.Join(
		check("address", o.address, "required,hostname_port"),
		check("username", o.username, "required"),
		check("password", o.password, "required"),
		check("database", o.database, "required"),
		check("retryAttempts", o.retryAttempts, "min=1,max=10"),
		check("maxConns", o.maxConns, "min=1,max=20"),
	)
}

func check(field string, v any, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("field `%s` did not pass the test: %w", field, err)
	}

	return nil
}
