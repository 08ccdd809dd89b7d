package security

import "golang.org/x/crypto/bcrypt"

// PasswordHasher encapsula o hash e a verificação de senhas com bcrypt
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher cria um PasswordHasher com o custo padrão do bcrypt
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash gera o hash bcrypt (com salt) da senha em claro
func (h *PasswordHasher) Hash(senha string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(senha), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Compare verifica a senha em claro contra o hash armazenado
func (h *PasswordHasher) Compare(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
