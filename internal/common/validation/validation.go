package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// Convex document IDs are short opaque strings; the bound only guards
	// against garbage input.
	MaxCourseIDLength = 64
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidateWalletAddress checks the canonical 0x + 40 hex chars form.
// Comparison elsewhere is case-insensitive; this only rejects shape errors.
func ValidateWalletAddress(address string) error {
	if address == "" {
		return fmt.Errorf("userAddress is required")
	}
	if !addressRegex.MatchString(address) || !common.IsHexAddress(address) {
		return fmt.Errorf("userAddress must be a 0x-prefixed 40-character hex address")
	}
	return nil
}

// ValidateCourseID checks the opaque course identifier shape.
func ValidateCourseID(courseID string) error {
	if strings.TrimSpace(courseID) == "" {
		return fmt.Errorf("courseId is required")
	}
	if len(courseID) > MaxCourseIDLength {
		return fmt.Errorf("courseId cannot exceed %d characters", MaxCourseIDLength)
	}
	return nil
}
