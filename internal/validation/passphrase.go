package validation

import "fmt"

// MinPassphraseLen минимальная длина пароля для шифрования резервной копии
const MinPassphraseLen = 8

// ValidatePassphrase проверяет минимальные требования к паролю резервной копии
func ValidatePassphrase(passphrase string) error {
	if passphrase == "" {
		return fmt.Errorf("passphrase cannot be empty")
	}

	if len(passphrase) < MinPassphraseLen {
		return fmt.Errorf("passphrase must be at least %d characters long", MinPassphraseLen)
	}

	return nil
}
