package wheel

import (
	"fmt"
	"strings"
)

// Tier is the maturity classification of a wheel's mean.
type Tier string

const (
	TierCritical        Tier = "CRITICAL"
	TierDeveloping      Tier = "DEVELOPING"
	TierHighPerformance Tier = "HIGH_PERFORMANCE"
)

func (t Tier) Valid() bool {
	switch t {
	case TierCritical, TierDeveloping, TierHighPerformance:
		return true
	}
	return false
}

// Rank orders tiers from lowest (0) to highest (2). Unknown tiers rank -1.
func (t Tier) Rank() int {
	switch t {
	case TierCritical:
		return 0
	case TierDeveloping:
		return 1
	case TierHighPerformance:
		return 2
	default:
		return -1
	}
}

// Label is the display name of the tier.
func (t Tier) Label() string {
	switch t {
	case TierCritical:
		return "Critical / Beginner"
	case TierDeveloping:
		return "Developing"
	case TierHighPerformance:
		return "High Performance"
	default:
		return string(t)
	}
}

// Class is the visual severity class used by renderers.
func (t Tier) Class() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierDeveloping:
		return "warning"
	case TierHighPerformance:
		return "success"
	default:
		return "unknown"
	}
}

// Intent is a one-line reading of the tier.
func (t Tier) Intent() string {
	switch t {
	case TierCritical:
		return "needs urgent structural fixes"
	case TierDeveloping:
		return "partial maturity"
	case TierHighPerformance:
		return "strong baseline"
	default:
		return ""
	}
}

// ParseTier accepts a tier code or a short alias such as "critical" or "high".
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical", "beginner":
		return TierCritical, nil
	case "developing":
		return TierDeveloping, nil
	case "high", "high_performance", "high-performance":
		return TierHighPerformance, nil
	}
	return "", fmt.Errorf("wheel.ParseTier: unknown tier %q", s)
}

// Band is a per-question decoration derived from that question's rating alone.
type Band string

const (
	BandLow    Band = "LOW"
	BandMedium Band = "MEDIUM"
	BandHigh   Band = "HIGH"
)

func (b Band) Valid() bool {
	switch b {
	case BandLow, BandMedium, BandHigh:
		return true
	}
	return false
}

// Class maps the band onto the tier palette.
func (b Band) Class() string {
	switch b {
	case BandLow:
		return "critical"
	case BandMedium:
		return "warning"
	case BandHigh:
		return "success"
	default:
		return "unknown"
	}
}

// BandFor returns LOW below 5, MEDIUM below 8 and HIGH otherwise.
func BandFor(rating int) Band {
	switch {
	case rating < 5:
		return BandLow
	case rating < 8:
		return BandMedium
	default:
		return BandHigh
	}
}
