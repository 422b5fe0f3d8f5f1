package utils

import (
	"encoding/hex"
	"strings"

	"github.com/piresc/guestportal/internal/pkg/models"
	"golang.org/x/crypto/blake2b"
)

// NormalizeMAC returns mac as lowercase colon-separated hex
// (aa:bb:cc:dd:ee:ff). Dashes, dots and bare 12-digit forms are accepted.
func NormalizeMAC(mac string) (string, error) {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(mac) {
		switch {
		case r == ':' || r == '-' || r == '.':
			continue
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
			digits.WriteRune(r)
		case r >= 'A' && r <= 'F':
			digits.WriteRune(r + ('a' - 'A'))
		default:
			return "", models.ErrInvalidMAC
		}
	}

	d := digits.String()
	if len(d) != 12 {
		return "", models.ErrInvalidMAC
	}

	out := make([]byte, 0, 17)
	for i := 0; i < 12; i += 2 {
		if i > 0 {
			out = append(out, ':')
		}
		out = append(out, d[i], d[i+1])
	}
	return string(out), nil
}

// HashMAC derives the stored mac_hash for a tenant
func HashMAC(secret, mac string) string {
	sum := blake2b.Sum256([]byte(secret + "|" + mac))
	return hex.EncodeToString(sum[:])
}

// MaskMAC keeps the vendor prefix of a normalized MAC for logging
func MaskMAC(mac string) string {
	if len(mac) != 17 {
		return "invalid"
	}
	return mac[:8] + ":**:**:**"
}
