package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/j3soon/nurse-scheduling-go/internal/validation"
)

func TestSuccessResponseCarriesData(t *testing.T) {
	resp := SuccessResponse(map[string]string{"id": "abc"})

	assert.Equal(t, map[string]string{"id": "abc"}, resp.Data)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "1.0", resp.Meta.Version)
}

func TestErrorResponseWithCodeCarriesError(t *testing.T) {
	resp := ErrorResponseWithCode("NOT_FOUND", "run not found")

	assert.Nil(t, resp.Data)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "run not found", resp.Error.Message)
}

func TestValidationErrorResponseCarriesResult(t *testing.T) {
	result := validation.NewResult().AddError(validation.CodeEmptyResolvedSet, "no people resolved")

	resp := ValidationErrorResponse(result)

	assert.Same(t, result, resp.ValidationResult)
	assert.False(t, resp.ValidationResult.IsValid())
}
