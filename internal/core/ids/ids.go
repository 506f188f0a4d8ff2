package ids

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DefaultPrefix marks every generated identifier so it can be told apart from
// user supplied names.
const DefaultPrefix = "@"

// ComponentPrefix is the prefix used for component uids.
const ComponentPrefix = "COMP-"

// NodePrefix is the prefix used for node uids.
const NodePrefix = "NODE-"

// Generator hands out globally unique identifiers.
type Generator interface {
	Generate(prefix string) string
}

// UUIDGenerator renders a random UUID in base 36. All 128 bits are kept, as
// two fixed-width halves, so uids stay as unique as the UUID itself.
type UUIDGenerator struct {
	prefix string
}

func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// base36Width is the length of the largest uint64 in base 36.
const base36Width = 13

func (g *UUIDGenerator) Generate(prefix string) string {
	id := uuid.New()
	var b strings.Builder
	b.Grow(len(g.prefix) + len(prefix) + 2*base36Width)
	b.WriteString(g.prefix)
	b.WriteString(prefix)
	writeBase36(&b, binary.BigEndian.Uint64(id[:8]))
	writeBase36(&b, binary.BigEndian.Uint64(id[8:]))
	return b.String()
}

func writeBase36(b *strings.Builder, v uint64) {
	s := strconv.FormatUint(v, 36)
	for i := len(s); i < base36Width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
