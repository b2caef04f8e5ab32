package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewContractNumber returns a back-office quotable contract number like
// "LN-202608-3f9a6a1b3d54". The month prefix is cosmetic; uniqueness comes
// from the random suffix.
func NewContractNumber(now time.Time) string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return fmt.Sprintf("LN-%s-%s", now.UTC().Format("200601"), hex.EncodeToString(b))
}
