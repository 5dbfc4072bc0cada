package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProtectedHandler serves the token-gated probe route.
type ProtectedHandler struct{}

func NewProtectedHandler() *ProtectedHandler {
	return &ProtectedHandler{}
}

type protectedResponse struct {
	Message string `json:"message"`
}

// Show handles GET /protected. Reaching it at all proves the token gate
// accepted the request.
//
// @Summary      Probe a protected route
// @Tags         auth
// @Produce      json
// @Param        auth  header    string  true  "Bearer token"
// @Success      200   {object}  protectedResponse
// @Failure      401   {object}  authErrorResponse
// @Router       /protected [get]
func (h *ProtectedHandler) Show(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, protectedResponse{Message: "Protected route accessed"})
}
