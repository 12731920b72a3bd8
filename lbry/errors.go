package lbry

import "errors"

// MalformedInputError is returned when supplied key material is not
// decodable hex.
type MalformedInputError struct {
	Message string
}

func (e *MalformedInputError) Error() string {
	return e.Message
}

// IsMalformedInputError checks if error is MalformedInputError
func IsMalformedInputError(err error) bool {
	var target *MalformedInputError
	return errors.As(err, &target)
}

// WrongLengthError is returned when decoded key material is not exactly
// 32 bytes.
type WrongLengthError struct {
	Message string
}

func (e *WrongLengthError) Error() string {
	return e.Message
}

// IsWrongLengthError checks if error is WrongLengthError
func IsWrongLengthError(err error) bool {
	var target *WrongLengthError
	return errors.As(err, &target)
}

// InvalidPrivateKeyError is returned when a key fails the secp256k1
// group-order validity check at derivation time.
type InvalidPrivateKeyError struct {
	Message string
}

func (e *InvalidPrivateKeyError) Error() string {
	return e.Message
}

// IsInvalidPrivateKeyError checks if error is InvalidPrivateKeyError
func IsInvalidPrivateKeyError(err error) bool {
	var target *InvalidPrivateKeyError
	return errors.As(err, &target)
}
