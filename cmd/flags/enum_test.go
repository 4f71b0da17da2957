package flags

import (
	"flag"
	"testing"

	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
	"github.com/urfave/cli/v2"
)

func TestEnumValue(t *testing.T) {
	var dest string
	f := EnumValue{
		Name:        "color",
		Destination: &dest,
		Enum:        []string{"red", "blue"},
		Value:       "red",
	}.GenericFlag()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, f.Apply(set))
	assert.Equal(t, "red", dest)
	require.NoError(t, set.Parse([]string{"--color", "blue"}))
	assert.Equal(t, "blue", dest)
	assert.ErrorContains(t, "allowed values are red, blue", set.Parse([]string{"--color", "green"}))
	assert.Equal(t, "blue", f.Value.String())
}

func TestWrapFlags(t *testing.T) {
	wrapped := WrapFlags(AppFlags)
	require.Equal(t, len(AppFlags), len(wrapped))
	for i, f := range wrapped {
		assert.DeepEqual(t, AppFlags[i].Names(), f.Names())
	}
}

func TestWrapFlags_Unsupported(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	WrapFlags([]cli.Flag{&cli.Float64Flag{Name: "ratio"}})
}
