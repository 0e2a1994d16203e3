package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetShortensCommit(t *testing.T) {
	old := GitCommit
	GitCommit = "0123456789abcdef"
	defer func() { GitCommit = old }()

	info := Get()
	assert.Equal(t, "0123456", info.ShortCommit)
	assert.True(t, strings.HasPrefix(info.String(), "Weather Dominator v"+Version))
	assert.Contains(t, info.String(), "commit: 0123456")
}
