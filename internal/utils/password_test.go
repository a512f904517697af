package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashECheckSenha(t *testing.T) {
	hash, err := HashSenha("senha-forte-123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "senha-forte-123", hash)

	assert.True(t, CheckSenha(hash, "senha-forte-123"))
	assert.False(t, CheckSenha(hash, "senha-errada"))
	assert.False(t, CheckSenha("hash-invalido", "senha-forte-123"))
}
