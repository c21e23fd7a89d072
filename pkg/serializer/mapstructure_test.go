package serializer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mailru/datetime/pkg/datetime"
	"github.com/mailru/datetime/pkg/interval"
	"github.com/mailru/datetime/pkg/serializer/errs"
)

type jobConfig struct {
	Name     string            `mapstructure:"name"`
	StartAt  datetime.DateTime `mapstructure:"start_at"`
	Interval interval.Interval `mapstructure:"interval"`
	Timeout  interval.Interval `mapstructure:"timeout"`
}

func TestMapstructureUnmarshal(t *testing.T) {
	data := `{
		"name": "cleanup",
		"start_at": "2012-04-21T11:00:00Z",
		"interval": "1d12h30m",
		"timeout": "2.5s"
	}`

	var cfg jobConfig
	require.NoError(t, MapstructureUnmarshal(data, &cfg))

	require.Equal(t, "cleanup", cfg.Name)
	require.Equal(t, int64(1335006000), cfg.StartAt.Unix())
	require.Equal(t, interval.New(131_400, 0), cfg.Interval)
	require.Equal(t, interval.New(2, 500_000_000), cfg.Timeout)
}

func TestMapstructureUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "broken json", data: `{"name"`, want: errs.ErrUnmarshalJSON},
		{name: "unused field", data: `{"name": "x", "unknown": 1}`, want: errs.ErrMapstructureDecode},
		{name: "bad timestamp", data: `{"name": "x", "start_at": "whenever"}`, want: errs.ErrMapstructureDecode},
		{name: "bad duration", data: `{"name": "x", "timeout": "30s1m"}`, want: errs.ErrMapstructureDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg jobConfig
			require.ErrorIs(t, MapstructureUnmarshal(tt.data, &cfg), tt.want)
		})
	}
}

func TestMapstructureMarshal(t *testing.T) {
	cfg := struct {
		Name  string `mapstructure:"name"`
		Count int    `mapstructure:"count"`
	}{Name: "cleanup", Count: 3}

	out, err := MapstructureMarshal(cfg)
	require.NoError(t, err)
	require.JSONEq(t, `{"name": "cleanup", "count": 3}`, out)
}

func TestJSONHelpers(t *testing.T) {
	type payload struct {
		At datetime.DateTime `json:"at"`
	}

	var p payload
	require.NoError(t, JSONUnmarshal(`{"at": "2012-04-21 11:00:00"}`, &p))
	require.Equal(t, int64(1335006000), p.At.Unix())

	out, err := JSONMarshal(p)
	require.NoError(t, err)
	require.Equal(t, `{"at":"2012-04-21T11:00:00"}`, out)

	require.ErrorIs(t, JSONUnmarshal(`{`, &p), errs.ErrUnmarshalJSON)
	require.ErrorIs(t, JSONUnmarshal(`{"at": "whenever"}`, &p), errs.ErrUnmarshalJSON)
}
