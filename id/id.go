// Package id mints the identifiers stamped on ledger trades.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy io.Reader
)

func init() {
	// ulid.Monotonic keeps IDs minted within the same millisecond
	// lexicographically increasing; the PRNG behind it is seeded from
	// crypto/rand so IDs are not guessable.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a fresh ULID string. Trade IDs are ULIDs so a plain scan of
// the trades table comes back roughly in execution order even though the
// reporter asks for no ordering.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}
