package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/assert"

	"github.com/nelf-format/nelf/pkg/config"
	"github.com/nelf-format/nelf/pkg/nelf"
)

func TestMerge_FlagsWinOverFile(t *testing.T) {
	settings := &config.Settings{
		Separator:        ";",
		MaxElementLength: 100,
	}
	flags := codecFlags{
		Separator: "|",
		MaxLength: 200,
	}

	merged := merge(settings, flags)

	assert.Equal(t, "|", merged.Separator)
	assert.Equal(t, 200, merged.MaxElementLength)
}

func TestMerge_UnsetFlagsKeepFileValues(t *testing.T) {
	settings := &config.Settings{
		Separator:  ";",
		Terminator: "\n",
	}

	merged := merge(settings, codecFlags{})

	assert.Equal(t, ";", merged.Separator)
	assert.Equal(t, "\n", merged.Terminator)
}

func TestMerge_ProducesWorkingCodec(t *testing.T) {
	merged := merge(&config.Settings{}, codecFlags{
		Separator:  ";",
		Terminator: "!",
	})

	opts, err := merged.Options()
	require.NoError(t, err)
	codec, err := nelf.New(opts...)
	require.NoError(t, err)

	buf, err := codec.Encode([]string{"a:b,c"})
	require.NoError(t, err)
	assert.Equal(t, "5;a:b,c!", string(buf))
}
