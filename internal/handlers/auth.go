package handlers

import (
	"net/http"

	"parcel_tracking"
	"parcel_tracking/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Register a user
// @Description  Creates a USER account. The role field is only honoured when the caller is an admin.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account"
// @Success      200   {object}  models.User
// @Failure      400   {object}  parcel_tracking.ErrorResponse
// @Router       /api/users/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	role := ""
	if claims := h.optionalClaims(c); claims != nil && claims.IsAdmin() {
		role = input.Role
	}

	u, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      role,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("user_register_failed", "email", input.Email, "err", err)
		}
		h.respondServiceError(c, err, "failed to register user", "user_register_failed")
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  parcel_tracking.LoginResponse
// @Failure      400   {object}  parcel_tracking.ErrorResponse
// @Failure      401   {object}  parcel_tracking.ErrorResponse
// @Router       /api/users/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	resp, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("user_login_failed", "email", input.Email, "err", err)
		}
		h.respondServiceError(c, err, "failed to log in", "user_login_failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Reset a forgotten password
// @Tags         users
// @Produce      json
// @Param        email        query     string  true  "Account e-mail"
// @Param        newPassword  query     string  true  "New password"
// @Success      200          {object}  parcel_tracking.MessageResponse
// @Failure      400          {object}  parcel_tracking.ErrorResponse
// @Router       /api/users/forgot-password [put]
func (h *Handler) forgotPassword(c *gin.Context) {
	email, password := c.Query("email"), c.Query("newPassword")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and newPassword are required"})
		return
	}
	if err := h.services.ResetPassword(c.Request.Context(), email, password); err != nil {
		h.respondServiceError(c, err, "failed to reset password", "user_password_reset_failed", "email", email)
		return
	}
	c.JSON(http.StatusOK, parcel_tracking.MessageResponse{Message: "Password updated successfully"})
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      401  {object}  parcel_tracking.ErrorResponse
// @Failure      403  {object}  parcel_tracking.ErrorResponse
// @Router       /api/users/all [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.ListUsers(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load users", "user_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  models.User
// @Failure      404  {object}  parcel_tracking.ErrorResponse
// @Router       /api/users/admin/user/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.services.GetUser(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, "failed to load user", "user_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update own profile
// @Description  Users may update themselves; admins may update anyone and change roles.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "User id"
// @Param        body  body      service.UserUpdate  true  "Profile"
// @Success      200   {object}  models.User
// @Failure      400   {object}  parcel_tracking.ErrorResponse
// @Failure      403   {object}  parcel_tracking.ErrorResponse
// @Router       /api/users/update/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok || !requireSelfOrAdminID(c, id) {
		return
	}
	h.doUpdateUser(c, id, currentClaims(c).IsAdmin())
}

// @Summary      Update a user (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "User id"
// @Param        body  body      service.UserUpdate  true  "Profile"
// @Success      200   {object}  models.User
// @Router       /api/users/admin/user/{id} [put]
// @Security     BearerAuth
func (h *Handler) adminUpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.doUpdateUser(c, id, true)
}

func (h *Handler) doUpdateUser(c *gin.Context, id int64, asAdmin bool) {
	var input service.UserUpdate
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	u, err := h.services.UpdateUser(c.Request.Context(), id, input, asAdmin)
	if err != nil {
		h.respondServiceError(c, err, "failed to update user", "user_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  parcel_tracking.MessageResponse
// @Failure      404  {object}  parcel_tracking.ErrorResponse
// @Router       /api/users/delete/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.DeleteUser(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, "failed to delete user", "user_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, parcel_tracking.MessageResponse{Message: "User deleted successfully"})
}
