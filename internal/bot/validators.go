package bot

import (
	"math"
	"strconv"
	"strings"
)

// The engine trusts its numbers, so everything users type gets coerced
// here before it reaches a draft.

const MinDurationHours = 0.5

// ParseDurationHours coerces free-form input into a safe duration: comma
// decimals accepted, garbage and negatives fall back to the smallest valid
// increment, everything snaps to half hours.
func ParseDurationHours(text string) float64 {
	v, err := strconv.ParseFloat(normalizeNumber(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return MinDurationHours
	}
	if v < MinDurationHours {
		return MinDurationHours
	}
	return math.Round(v*2) / 2
}

// ParsePetCount clamps to a non-negative whole number of pets.
func ParsePetCount(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseAmount parses an extra charge amount. Zero and negative values are
// allowed through: the engine drops zeros and keeps discounts.
func ParseAmount(text string) (float64, bool) {
	v, err := strconv.ParseFloat(normalizeNumber(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseOvertimeRate parses a /rate argument. "off" clears the override; a
// parsed 0 is a valid override that bills overtime at nothing.
func ParseOvertimeRate(text string) (*float64, bool) {
	arg := strings.ToLower(strings.TrimSpace(text))
	if arg == "off" {
		return nil, true
	}

	v, ok := ParseAmount(arg)
	if !ok || v < 0 {
		return nil, false
	}
	return &v, true
}

// ParseExtraLine splits a "name amount" line; the last field is the amount,
// everything before it is the item name.
func ParseExtraLine(text string) (string, float64, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "", 0, false
	}

	amount, ok := ParseAmount(fields[len(fields)-1])
	if !ok {
		return "", 0, false
	}

	name := strings.Join(fields[:len(fields)-1], " ")
	return name, amount, true
}

func normalizeNumber(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
}
