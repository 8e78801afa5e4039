package soundseal

import (
	"unicode"
	"unicode/utf8"
)

// StrengthLevel classifies a passphrase score
type StrengthLevel uint8

const (
	// StrengthTooShort means the passphrase is below the minimum length
	StrengthTooShort StrengthLevel = iota
	// StrengthWeak means the passphrase is long enough but scores below
	// the encryption threshold
	StrengthWeak
	// StrengthMedium means the passphrase is acceptable
	StrengthMedium
	// StrengthStrong means the passphrase satisfies most criteria
	StrengthStrong
)

// String returns the string representation of the strength level
func (l StrengthLevel) String() string {
	switch l {
	case StrengthTooShort:
		return "too short"
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return "unknown"
	}
}

const (
	// MinPassphraseLen is the minimum passphrase length in characters
	MinPassphraseLen = 6

	// MinEncryptScore is the numeric score below which encryption is
	// refused
	MinEncryptScore = 2
)

// Strength is the result of scoring a passphrase. The score is a
// heuristic gate against trivially guessable passphrases, not a
// cryptographic guarantee.
type Strength struct {
	Level StrengthLevel
	Score int
}

// AllowsEncryption reports whether the passphrase may be used to
// encrypt.
func (s Strength) AllowsEncryption() bool {
	return s.Score >= MinEncryptScore
}

// ScorePassphrase scores a passphrase. Below MinPassphraseLen
// characters the score is 0 (too short). Otherwise the score starts at
// 1 and gains one point each for: length of at least 12 characters, a
// lowercase letter, an uppercase letter, a digit, and a
// non-alphanumeric character.
func ScorePassphrase(passphrase string) Strength {
	length := utf8.RuneCountInString(passphrase)
	if length < MinPassphraseLen {
		return Strength{Level: StrengthTooShort, Score: 0}
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range passphrase {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}

	score := 1
	if length >= 12 {
		score++
	}
	if hasLower {
		score++
	}
	if hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if hasSymbol {
		score++
	}

	level := StrengthStrong
	switch {
	case score < MinEncryptScore:
		level = StrengthWeak
	case score < 5:
		level = StrengthMedium
	}

	return Strength{Level: level, Score: score}
}
