package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TrackingIDPrefix is the public prefix of every complaint tracking id
const TrackingIDPrefix = "SMD"

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var trackingIDPattern = regexp.MustCompile(`^SMD-[0-9A-Z]+-[0-9A-Z]{4}$`)

// GenerateTrackingID produces a human-typable complaint tracking id of the
// form SMD-<base36 millisecond timestamp>-<4 random base36 chars>. The
// timestamp keeps ids sortable; the random block guards against
// same-millisecond submissions. Uniqueness is still enforced by the store's
// unique index, with the caller retrying on collision.
func GenerateTrackingID() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	random := make([]byte, 4)
	for i := range random {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Chars))))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// fall back to the low bits of the clock
			n = big.NewInt(time.Now().UnixNano() % int64(len(base36Chars)))
		}
		random[i] = base36Chars[n.Int64()]
	}

	return fmt.Sprintf("%s-%s-%s", TrackingIDPrefix, timestamp, random)
}

// IsTrackingID reports whether s looks like a tracking id. Used to reject
// obviously malformed lookups before hitting the database.
func IsTrackingID(s string) bool {
	return trackingIDPattern.MatchString(strings.ToUpper(s))
}

// NormalizeTrackingID upper-cases a citizen-typed tracking id
func NormalizeTrackingID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
