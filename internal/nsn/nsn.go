// Package nsn implements the National Student Number check digit: a weighted
// mod-11 scheme over the 8 prefix digits of a 9-digit identifier.
package nsn

import "fmt"

// Length is the full NSN length including the check digit.
const Length = 9

// PrefixLength is the number of digits covered by the checksum.
const PrefixLength = 8

// weights are applied in order to the prefix digits.
var weights = []int{2, 3, 4, 5, 6, 7, 8, 9, 10}

// CheckDigit computes the check digit for an 8-digit prefix.
func CheckDigit(prefix string) (int, error) {
	if len(prefix) != PrefixLength {
		return 0, fmt.Errorf("nsn prefix must be %d digits, got %d", PrefixLength, len(prefix))
	}

	sum := 0
	for i := 0; i < PrefixLength; i++ {
		d := prefix[i]
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("nsn prefix contains non-digit %q", d)
		}
		sum += int(d-'0') * weights[i]
	}

	remainder := sum % 11
	return (11 - remainder) % 10, nil
}

// FromPrefix builds a valid NSN from an 8-digit prefix.
func FromPrefix(prefix string) (string, error) {
	check, err := CheckDigit(prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", prefix, check), nil
}

// InvalidFromPrefix builds an NSN whose check digit is deliberately wrong,
// for negative-path testing downstream.
func InvalidFromPrefix(prefix string) (string, error) {
	check, err := CheckDigit(prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", prefix, (check+1)%10), nil
}

// Valid reports whether a 9-digit NSN satisfies the checksum relation.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	last := s[Length-1]
	if last < '0' || last > '9' {
		return false
	}
	check, err := CheckDigit(s[:PrefixLength])
	if err != nil {
		return false
	}
	return int(last-'0') == check
}
