package validation

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required,personname"`
	Age      int    `json:"age" binding:"min=18"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&signup{Email: "nope", Password: "short", Name: "x", Age: 3})
	require.Error(t, err)

	d := ToDetails(err)
	assert.Equal(t, "must be a valid email", d["email"])
	assert.Equal(t, "must be at least 8 characters long", d["password"])
	assert.Equal(t, "must be at least 2 characters long", d["name"])
	assert.Equal(t, "must be at least 18", d["age"])
}

func TestToDetails_MaxAndRequired(t *testing.T) {
	Init()

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	err := binding.Validator.ValidateStruct(&signup{Password: string(long), Name: "Valid Name", Age: 20})
	require.Error(t, err)

	d := ToDetails(err)
	assert.Equal(t, "is required", d["email"])
	assert.Equal(t, "must be at most 72 characters long", d["password"])
	assert.NotContains(t, d, "name")
}

func TestToDetails_PasswordByteLimit(t *testing.T) {
	Init()

	// 40 runes, 80 bytes: inside max=72 but over what bcrypt accepts.
	err := binding.Validator.ValidateStruct(&signup{Email: "a@b.com", Password: strings.Repeat("é", 40), Name: "Valid Name", Age: 20})
	require.Error(t, err)
	assert.Equal(t, "must be at most 72 bytes long", ToDetails(err)["password"])

	err = binding.Validator.ValidateStruct(&signup{Email: "a@b.com", Password: strings.Repeat("é", 36), Name: "Valid Name", Age: 20})
	assert.NoError(t, err)
}

func TestToDetails_PayloadErrors(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "request body is empty"}, ToDetails(io.EOF))

	var v map[string]any
	err := json.Unmarshal([]byte("{bad"), &v)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(assert.AnError))
}

func TestInit_Idempotent(t *testing.T) {
	Init()
	Init()
	_, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
}
