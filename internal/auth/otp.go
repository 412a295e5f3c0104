package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// OTPLength is the number of digits in a login code.
	OTPLength = 6

	otpFloor = 100000
	otpSpan  = 900000
)

// GenerateOTP returns a uniformly random six digit code with no leading zero.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%d", otpFloor+n.Int64()), nil
}
