package version_test

import (
	"testing"

	"github.com/prysmaticlabs/prysm-rewards/runtime/version"
	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
)

func TestString_FromString(t *testing.T) {
	for _, v := range []int{version.Phase0, version.Altair, version.Bellatrix} {
		got, ok := version.FromString(version.String(v))
		assert.Equal(t, true, ok)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, "unknown version", version.String(99))
	_, ok := version.FromString("electra")
	assert.Equal(t, false, ok)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "prysm-rewards/Unknown/Local build", version.BuildData())
	assert.Equal(t, "prysm-rewards/Unknown/Local build. Built at: Moments ago", version.Version())
}
