// Package util holds small cross-cutting helpers with no domain knowledge.
package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/pkg/errors"
)

// GenerateNumericCode returns a uniformly random six-digit code in the range
// [100000, 999999]. The lower bound excludes leading zeros so the code
// survives any numeric round trip intact.
func GenerateNumericCode() (string, error) {
	const (
		low  = 100000
		high = 999999
	)

	n, err := rand.Int(rand.Reader, big.NewInt(high-low+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate random code")
	}

	return fmt.Sprintf("%06d", n.Int64()+low), nil
}

const (
	tempPasswordLength = 12

	upperChars = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerChars = "abcdefghijkmnpqrstuvwxyz"
	digitChars = "23456789"
	allChars   = upperChars + lowerChars + digitChars
)

// GenerateTempPassword returns a random temporary password that satisfies the
// password policy: at least one upper-case letter, one lower-case letter and
// one digit. Visually ambiguous characters (0/O, 1/l) are excluded.
func GenerateTempPassword() (string, error) {
	buf := make([]byte, tempPasswordLength)

	pick := func(set string) (byte, error) {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
		if err != nil {
			return 0, errors.Wrap(err, "failed to generate random password")
		}

		return set[n.Int64()], nil
	}

	var err error
	// Guarantee one character from each required class up front.
	if buf[0], err = pick(upperChars); err != nil {
		return "", err
	}
	if buf[1], err = pick(lowerChars); err != nil {
		return "", err
	}
	if buf[2], err = pick(digitChars); err != nil {
		return "", err
	}
	for i := 3; i < tempPasswordLength; i++ {
		if buf[i], err = pick(allChars); err != nil {
			return "", err
		}
	}

	// Shuffle so the guaranteed classes don't sit at fixed positions.
	for i := len(buf) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", errors.Wrap(err, "failed to shuffle password")
		}
		j := n.Int64()
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
