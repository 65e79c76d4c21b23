package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var testSubject = pkgjwt.Subject{
	UserID:      "65a1f0c2e4b0a1b2c3d4e5f6",
	Email:       "gamer@example.com",
	NameProfile: "GamerMaster123",
	Role:        "admin",
	Active:      true,
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "tienda-test", 60, testSubject)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSubject.UserID, claims.UserID)
	assert.Equal(t, testSubject.Email, claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.Active)
	assert.Equal(t, "tienda-test", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "tienda-test", -1, testSubject)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "tienda-test", 60, testSubject)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_SinEmail(t *testing.T) {
	sub := testSubject
	sub.Email = ""
	tok, err := pkgjwt.Generate(testSecret, "tienda-test", 60, sub)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token sin email no identifica a nadie")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "tienda-test", 60, testSubject)
	assert.Error(t, err)
}
