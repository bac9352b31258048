package serverutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessResponseEnvelope(t *testing.T) {
	res := SuccessResponse("Project list", []string{"a", "b"})

	assert.True(t, res.Success)
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, "Project list", res.Message)
	assert.Equal(t, []string{"a", "b"}, res.Data)
	assert.Nil(t, res.DeletedCount)
}

func TestDeletedResponseCarriesCount(t *testing.T) {
	res := DeletedResponse("Faq bulk delete", 3)

	body, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"deleted_count":3`)
}

func TestErrorResponseOmitsData(t *testing.T) {
	res := ErrorResponse(404, "Project not found")

	body, err := json.Marshal(res)
	assert.NoError(t, err)

	assert.False(t, res.Success)
	assert.NotContains(t, string(body), `"data"`)
	assert.NotContains(t, string(body), `"deleted_count"`)
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	assert.NoError(t, ValidateRequest(&payload{Email: "a@b.com", Name: "x"}))

	err := ValidateRequest(&payload{Email: "not-an-email"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "Name")
}
