package api

import (
	"net/http"

	"github.com/rpupo63/personal-blog/database"
	"github.com/rpupo63/personal-blog/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userProfileHandler struct {
	responder       Responder
	logger          zerolog.Logger
	userProfileRepo *database.UserProfileRepo
}

func newUserProfileHandler(userProfileRepo *database.UserProfileRepo) userProfileHandler {
	logger := log.With().Str("handlerName", "userProfileHandler").Logger()

	return userProfileHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		userProfileRepo: userProfileRepo,
	}
}

// getAllUsers retrieves all user profiles
// @Summary Get all users
// @Tags Users
// @Produce json
// @Success 200 {object} envelope "success.users"
// @Failure 500 {object} envelope "Internal Server Error"
// @Router /api/users [get]
func (h userProfileHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userProfileRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user profiles", err))
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "users", users)
	}
}

// getUser retrieves a specific user profile by ID
// @Summary Get user
// @Tags Users
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} envelope "success.user"
// @Failure 400 {object} envelope "Invalid user id"
// @Failure 404 {object} envelope "User not found"
// @Failure 500 {object} envelope "Internal Server Error"
// @Router /api/users/{userID} [get]
func (h userProfileHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r, "userID", "user id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userProfileRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", fmtEntity("user profile", userID), err))
			return
		}

		if user == nil {
			h.responder.WriteError(w, errs.NewNotFound("User"))
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "user", user)
	}
}
