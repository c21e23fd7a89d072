package tarantool

import (
	"errors"
	"fmt"
	"time"

	"github.com/tarantool/go-tarantool"
)

var ErrBadUnit = errors.New("unknown time unit")

const DefaultConnectionTimeout = 20 * time.Millisecond

type ConnectionOptions struct {
	cfg    tarantool.Opts
	server string
}

type ConnectionOption interface {
	apply(*ConnectionOptions) error
}

type optionConnectionFunc func(*ConnectionOptions) error

func (o optionConnectionFunc) apply(c *ConnectionOptions) error {
	return o(c)
}

// WithTimeout overrides the request timeout.
func WithTimeout(request time.Duration) ConnectionOption {
	return optionConnectionFunc(func(opts *ConnectionOptions) error {
		opts.cfg.Timeout = request

		return nil
	})
}

// WithCredential sets the box user.
func WithCredential(user, pass string) ConnectionOption {
	return optionConnectionFunc(func(opts *ConnectionOptions) error {
		opts.cfg.User = user
		opts.cfg.Pass = pass

		return nil
	})
}

func NewOptions(server string, opts ...ConnectionOption) (*ConnectionOptions, error) {
	if server == "" {
		return nil, fmt.Errorf("invalid param: server is empty")
	}

	connectionOpts := &ConnectionOptions{
		cfg: tarantool.Opts{
			Timeout: DefaultConnectionTimeout,
		},
		server: server,
	}

	for _, opt := range opts {
		if err := opt.apply(connectionOpts); err != nil {
			return nil, fmt.Errorf("error apply options: %w", err)
		}
	}

	return connectionOpts, nil
}
