package orders

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderNumberPrefix = "TP"

// GenerateOrderNumber produces a human-readable order reference such as
// TP-20260830-4821. The random suffix keeps same-day collisions unlikely; the
// unique index on order_number is the real guarantee.
func GenerateOrderNumber(now time.Time) string {
	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		suffix = big.NewInt(now.UnixNano() % 10000)
	}
	return fmt.Sprintf("%s-%s-%04d", orderNumberPrefix, now.Format("20060102"), suffix.Int64())
}
