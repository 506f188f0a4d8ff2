package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGeneratorPrefix(t *testing.T) {
	g := NewUUIDGenerator(DefaultPrefix)
	id := g.Generate(ComponentPrefix)
	assert.True(t, strings.HasPrefix(id, "@COMP-"), id)
	assert.Len(t, id, len("@COMP-")+2*base36Width)
}

func TestWriteBase36PadsToFixedWidth(t *testing.T) {
	var b strings.Builder
	writeBase36(&b, 0)
	writeBase36(&b, ^uint64(0))
	assert.Equal(t, "0000000000000"+"3w5e11264sgsf", b.String())
}

func TestUUIDGeneratorUnique(t *testing.T) {
	g := NewUUIDGenerator("")
	seen := make(map[string]struct{}, 10_000)
	for i := 0; i < 10_000; i++ {
		id := g.Generate(NodePrefix)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
