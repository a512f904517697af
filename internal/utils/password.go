package utils

import "golang.org/x/crypto/bcrypt"

// HashSenha gera o hash bcrypt gravado na coluna de senha do usuário.
func HashSenha(senha string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckSenha confere a senha em texto contra o hash gravado.
func CheckSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
