package validation

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// addressHexLength is the length of a Core address without the 0x prefix:
// a two character network prefix, two checksum characters and 20 bytes.
const addressHexLength = 44

var networkPrefixes = map[string]string{
	"cb": "mainnet",
	"ab": "devin",
	"ce": "private",
}

// ValidateAddress validates a wallet address format
func ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("address cannot be empty")
	}

	normalized := NormalizeAddress(addr)

	if len(normalized) != addressHexLength {
		return fmt.Errorf("invalid address length: expected %d characters (without 0x), got %d", addressHexLength, len(normalized))
	}

	if _, ok := networkPrefixes[normalized[:2]]; !ok {
		return fmt.Errorf("unknown network prefix %q", normalized[:2])
	}

	if _, err := hex.DecodeString(normalized); err != nil {
		return fmt.Errorf("invalid hex address: %w", err)
	}

	return nil
}

// NetworkName returns the network an address belongs to, or "" when unknown.
func NetworkName(addr string) string {
	normalized := NormalizeAddress(addr)
	if len(normalized) < 2 {
		return ""
	}
	return networkPrefixes[normalized[:2]]
}

// NormalizeAddress converts an address to lowercase without 0x prefix
func NormalizeAddress(addr string) string {
	addr = strings.TrimPrefix(addr, "0x")
	addr = strings.TrimPrefix(addr, "0X")
	return strings.ToLower(addr)
}
