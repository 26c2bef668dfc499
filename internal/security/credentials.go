package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier проверяет учетные данные оператора демо-стенда.
// Хэш пароля вычисляется один раз при старте, сам пароль не хранится.
type CredentialVerifier struct {
	username     string
	passwordHash []byte
}

// NewCredentialVerifier создает верификатор для настроенной пары логин/пароль
func NewCredentialVerifier(username, password string) (*CredentialVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("security: could not hash configured password: %w", err)
	}
	return &CredentialVerifier{
		username:     username,
		passwordHash: hash,
	}, nil
}

// Verify сравнивает предъявленные учетные данные с настроенными
func (v *CredentialVerifier) Verify(username, password string) bool {
	if username != v.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
}
