package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hortidev/quitanda-api/pkg/jwt"
)

const testSecret = "segredo-de-teste"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "sessao-123", "Maria", "quitanda-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, operator, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "sessao-123", sessionID)
	assert.Equal(t, "Maria", operator)
}

func TestParse_SecretErrado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "sessao-123", "Maria", "quitanda-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("outro-segredo", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "sessao-123", "Maria", "quitanda-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_TokenAdulterado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "sessao-123", "Maria", "quitanda-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token+"x")
	assert.Error(t, err)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", "sessao-123", "Maria", "quitanda-api", 60)
	assert.Error(t, err)
}
