package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderError_ErrorIncludesCategoryAndSeverity(t *testing.T) {
	err := New(CategoryValidation, SeverityFatal, "asset url must be absolute")
	require.Equal(t, "validation (fatal): asset url must be absolute", err.Error())
}

func TestRenderError_WrapKeepsCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, CategoryRender, SeverityError, "render failed")

	require.Contains(t, err.Error(), "boom")
	require.ErrorIs(t, err, cause)
}

func TestRenderError_WithContextAccumulates(t *testing.T) {
	err := ValidationFailed("url", "not absolute").WithContext("value", "/relative")

	require.Equal(t, "url", err.Context["field"])
	require.Equal(t, "not absolute", err.Context["reason"])
	require.Equal(t, "/relative", err.Context["value"])
}

func TestCategoryOf(t *testing.T) {
	require.Equal(t, CategoryConfig, CategoryOf(ConfigRequired("base_url")))
	require.Equal(t, CategoryValidation, CategoryOf(ValidationFailed("url", "empty")))
	require.Equal(t, CategoryInternal, CategoryOf(stderrors.New("plain")))
}

func TestIsCategory_SeesThroughWrapping(t *testing.T) {
	inner := ConfigInvalid("breakpoints", "empty")
	outer := fmt.Errorf("building descriptor: %w", inner)

	require.True(t, IsCategory(outer, CategoryConfig))
	require.False(t, IsCategory(outer, CategoryValidation))
}
