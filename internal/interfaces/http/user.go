package http

import (
	"net/http"
	"time"

	"ledger/internal/domain/user"
	"ledger/internal/shared/apierror"
	"ledger/internal/shared/middleware"
)

type UserHandler struct {
	userService *user.Service
}

func NewUserHandler(userService *user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// HandleMe returns the user the presented secret key belongs to
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		apierror.Write(w, r, apierror.ErrAuthenticationRequired)
		return
	}

	u, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	})
}
