package tz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagVariants(t *testing.T) {
	tests := []struct {
		name    string
		tag     Tag
		offset  int32
		wantErr bool
	}{
		{name: "unspecified", tag: Unspecified(), offset: 0},
		{name: "fixed positive", tag: FixedOffset(3_600), offset: 3_600},
		{name: "fixed negative", tag: FixedOffset(-14_400), offset: -14_400},
		{name: "named known", tag: Named("UTC"), offset: 0},
		{name: "named unknown", tag: Named("Mars/Olympus"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, err := tt.tag.OffsetSeconds(nil, 0)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrZoneUnknown))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.offset, offset)
		})
	}
}

func TestAware(t *testing.T) {
	require.False(t, Unspecified().Aware())
	require.True(t, FixedOffset(0).Aware())
	require.True(t, Named("UTC").Aware())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register("MSK", 3*3_600)

	offset, err := r.OffsetSeconds("MSK", 0)
	require.NoError(t, err)
	require.Equal(t, int32(10_800), offset)

	_, err = r.OffsetSeconds("CET", 0)
	require.ErrorIs(t, err, ErrZoneUnknown)

	named := Named("MSK")
	offset, err = named.OffsetSeconds(r, 0)
	require.NoError(t, err)
	require.Equal(t, int32(10_800), offset)
}
