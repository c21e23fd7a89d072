package tarantool

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tarantool/go-tarantool"

	"github.com/mailru/datetime/pkg/datetime"
)

type Connection struct {
	*tarantool.Connection
}

func GetConnection(_ context.Context, opts *ConnectionOptions) (*Connection, error) {
	conn, err := tarantool.Connect(opts.server, opts.cfg)
	if err != nil {
		return nil, fmt.Errorf("error connect to tarantool %s with connect timeout '%d': %s", opts.server, opts.cfg.Timeout, err)
	}

	return &Connection{conn}, nil
}

func (c *Connection) Close() {
	if err := c.Connection.Close(); err != nil {
		panic(err)
	}
}

// ServerNow asks the box for its wall clock, as fractional seconds from
// box.time(), and converts it to a DateTime. Useful to bound clock drift
// between the client and the storage.
func (c *Connection) ServerNow(_ context.Context) (datetime.DateTime, error) {
	var res []float64

	if err := c.Call17Typed("dostring", []interface{}{"return box.time()"}, &res); err != nil {
		return datetime.DateTime{}, errors.Wrap(err, "error call box.time")
	}

	if len(res) != 1 {
		return datetime.DateTime{}, errors.New("can't parse box.time response")
	}

	seconds := int64(res[0])
	nanos := uint32((res[0] - float64(seconds)) * 1e9)

	return datetime.FromUnix(seconds, nanos), nil
}
