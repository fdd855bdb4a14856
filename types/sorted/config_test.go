package sorted

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig([]byte(""))
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), config)
		require.Equal(t, NullsTrailing, config.NullPlacement)
		require.False(t, config.Reversed)
	})

	t.Run("all fields", func(t *testing.T) {
		config, err := LoadConfig([]byte("null_placement: Leading\nreversed: true\nbatch_size: 64\nreserved: 8\n"))
		require.NoError(t, err)
		require.Equal(t, Config{NullPlacement: NullsLeading, Reversed: true, BatchSize: 64, Reserved: 8}, config)

		l := New(NewOrderedPolicy[int](config), Some(1), nullInt, Some(2))
		requireSlice(t, []Value[int]{nullInt, Some(2), Some(1)}, l)
	})

	t.Run("invalid", func(t *testing.T) {
		testCases := []string{
			"null_placement: middle",
			"null_placement: [1, 2]",
			"batch_size: -1",
			"reserved: -5",
			"reversed: maybe",
		}
		for _, tc := range testCases {
			_, err := LoadConfig([]byte(tc))
			require.ErrorIs(t, err, ErrInvalidConfig, tc)
		}
	})
}

func TestNullPlacementText(t *testing.T) {
	for _, placement := range []NullPlacement{NullsTrailing, NullsLeading} {
		text, err := placement.MarshalText()
		require.NoError(t, err)
		var parsed NullPlacement
		require.NoError(t, parsed.UnmarshalText(text))
		require.Equal(t, placement, parsed)
	}

	var p NullPlacement
	require.NoError(t, p.UnmarshalText([]byte(" first ")))
	require.Equal(t, NullsLeading, p)
	require.ErrorIs(t, p.UnmarshalText([]byte("sideways")), ErrInvalidPlacement)

	_, err := NullPlacement(7).MarshalText()
	require.ErrorIs(t, err, ErrInvalidPlacement)
	require.Equal(t, "unknown", NullPlacement(7).String())
}

func TestConfigYAML(t *testing.T) {
	data, err := yaml.Marshal(Config{NullPlacement: NullsLeading, Reversed: true})
	require.NoError(t, err)
	require.Contains(t, string(data), "null_placement: leading")

	config, err := LoadConfig(data)
	require.NoError(t, err)
	require.Equal(t, NullsLeading, config.NullPlacement)
	require.True(t, config.Reversed)
	require.Equal(t, 0, config.BatchSize)
	require.Equal(t, defaultBatchSize, config.batchSize())
	require.Equal(t, defaultReservedNodes, config.reserved())

	require.ErrorIs(t, Config{NullPlacement: 3}.Validate(), ErrInvalidConfig)
}
