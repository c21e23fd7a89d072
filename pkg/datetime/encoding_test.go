package datetime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	msgpack "gopkg.in/vmihailenco/msgpack.v2"
	"gopkg.in/yaml.v3"

	"github.com/mailru/datetime/pkg/tz"
)

func TestTextRoundTrip(t *testing.T) {
	instants := []DateTime{
		Date(2012, 4, 21).HMS(11, 0, 0).MustBuild(),
		Date(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_000).MustBuild(),
		Date(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_789).MustBuild(),
		Date(2012, 4, 21).HMS(11, 0, 0).Timezone(tz.FixedOffset(-4 * 3_600)).MustBuild(),
		Date(2012, 4, 21).HMS(11, 0, 0).Nanos(500_000_000).Timezone(tz.FixedOffset(3 * 3_600)).MustBuild(),
	}

	for _, d := range instants {
		text, err := d.MarshalText()
		require.NoError(t, err)

		var back DateTime
		require.NoError(t, back.UnmarshalText(text))
		require.True(t, back.Equal(d), "round trip through %q", text)
	}
}

func TestJSON(t *testing.T) {
	type event struct {
		Name string   `json:"name"`
		At   DateTime `json:"at"`
	}

	src := event{Name: "deploy", At: Date(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_000).MustBuild()}

	data, err := json.Marshal(src)
	require.NoError(t, err)
	require.Equal(t, `{"name":"deploy","at":"2024-07-04T15:30:45.123456"}`, string(data))

	var dst event
	require.NoError(t, json.Unmarshal(data, &dst))
	require.True(t, dst.At.Equal(src.At))
}

func TestJSONErrors(t *testing.T) {
	var d DateTime

	require.Error(t, d.UnmarshalJSON([]byte(`42`)))
	require.Error(t, d.UnmarshalJSON([]byte(`"not a date"`)))
}

func TestYAML(t *testing.T) {
	type schedule struct {
		Start DateTime `yaml:"start"`
	}

	var s schedule
	require.NoError(t, yaml.Unmarshal([]byte("start: 2012-04-21T11:00:00Z\n"), &s))
	require.Equal(t, int64(1335006000), s.Start.Unix())

	data, err := yaml.Marshal(s)
	require.NoError(t, err)

	var back schedule
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.True(t, back.Start.Equal(s.Start))
}

func TestMsgpack(t *testing.T) {
	src := Date(2012, 4, 21).HMS(11, 0, 0).Timezone(tz.FixedOffset(3 * 3_600)).MustBuild()

	data, err := msgpack.Marshal(src)
	require.NoError(t, err)

	var dst DateTime
	require.NoError(t, msgpack.Unmarshal(data, &dst))
	require.True(t, dst.Equal(src))
	require.Equal(t, src.Timezone(), dst.Timezone())
}
