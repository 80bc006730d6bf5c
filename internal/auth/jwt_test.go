package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const segredoTeste = "segredo-de-teste-com-32-caracteres!!"

func TestGenerateAndParse(t *testing.T) {
	manager := NewJWTManager(segredoTeste, time.Hour)

	token, err := manager.GenerateAccessToken("42", "maria@fazenda.com")
	require.NoError(t, err)

	claims, err := manager.ParseAndValidate(token)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, "maria@fazenda.com", claims.Email)
	require.NotEmpty(t, claims.ID)
}

func TestParseTokenExpirado(t *testing.T) {
	manager := NewJWTManager(segredoTeste, -time.Minute)

	token, err := manager.GenerateAccessToken("42", "maria@fazenda.com")
	require.NoError(t, err)

	_, err = manager.ParseAndValidate(token)
	require.Error(t, err)
}

func TestParseSegredoErrado(t *testing.T) {
	manager := NewJWTManager(segredoTeste, time.Hour)
	outro := NewJWTManager("outro-segredo-tambem-com-32-chars!!!", time.Hour)

	token, err := manager.GenerateAccessToken("42", "maria@fazenda.com")
	require.NoError(t, err)

	_, err = outro.ParseAndValidate(token)
	require.Error(t, err)
}
