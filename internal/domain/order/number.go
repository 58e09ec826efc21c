package order

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NumberGenerator produces unique, human-shareable order numbers.
type NumberGenerator interface {
	Generate() string
}

// RandomNumberGenerator emits numbers shaped ORD-<unix-millis>-<13 base36
// chars>. The suffix is a full 64-bit value from crypto/rand, so collision
// probability is negligible even for bursts generated within a single
// millisecond. Order numbers are identifiers, not secrets; crypto/rand is
// used for its quality, not its unpredictability.
type RandomNumberGenerator struct {
	now func() time.Time
}

// NewNumberGenerator returns a RandomNumberGenerator using wall-clock time.
func NewNumberGenerator() *RandomNumberGenerator {
	return &RandomNumberGenerator{now: time.Now}
}

// Generate returns a fresh order number.
func (g *RandomNumberGenerator) Generate() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("order number entropy: %v", err))
	}
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)
	// Pad to a fixed 13 chars so numbers align in logs and spreadsheets.
	if len(suffix) < 13 {
		suffix = strings.Repeat("0", 13-len(suffix)) + suffix
	}
	return fmt.Sprintf("ORD-%d-%s", g.now().UnixMilli(), strings.ToUpper(suffix))
}
