package apperrors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAppErrors(t *testing.T) {
	t.Run(`status by kind`, func(t *testing.T) {
		require.Equal(t, http.StatusBadRequest, NewValidation("x").Status)
		require.Equal(t, http.StatusInternalServerError, NewConfiguration("x", nil).Status)
		require.Equal(t, http.StatusNotFound, NewNotFound("x").Status)
		require.Equal(t, http.StatusForbidden, NewForbidden("x").Status)
		require.Equal(t, http.StatusRequestEntityTooLarge, NewTooLarge("x").Status)
	})

	t.Run(`upstream status fallback`, func(t *testing.T) {
		require.Equal(t, http.StatusTooManyRequests, NewUpstream(http.StatusTooManyRequests, "quota", nil).Status)
		require.Equal(t, http.StatusBadGateway, NewUpstream(0, "boom", nil).Status)
		require.Equal(t, http.StatusBadGateway, NewUpstream(200, "boom", nil).Status)
	})

	t.Run(`From wrapped error`, func(t *testing.T) {
		cause := errors.New("dial tcp: refused")
		err := errors.Wrap(NewUpstream(0, "Failed to generate content with Gemini", cause), "cover letter")
		appErr, ok := From(err)
		require.True(t, ok)
		require.Equal(t, KindUpstream, appErr.Kind)
		require.Equal(t, cause, errors.Unwrap(appErr))
		require.True(t, IsKind(err, KindUpstream))
		require.False(t, IsKind(err, KindValidation))

		_, ok = From(errors.New("plain"))
		require.False(t, ok)
	})
}
