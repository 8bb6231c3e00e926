package service

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	userDTO "sekolahku_backend/internals/features/users/user/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignToken menerbitkan access token HS256 berisi user_id, username, role.
func SignToken(user userModel.UserModel, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username dan password wajib diisi")
	}

	// Cari user aktif via username ATAU email (case-insensitive)
	ident := strings.ToLower(strings.TrimSpace(input.Username))
	var user userModel.UserModel
	err := db.Where("(LOWER(username) = ? OR LOWER(email) = ?) AND is_active = ?", ident, ident, true).
		First(&user).Error
	if err != nil {
		// user tak ada & password salah dibalas sama — jangan bocorkan yang mana
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	if err := helper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	now := time.Now().UTC()
	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", user.ID).
		Update("last_login", now).Error; err == nil {
		user.LastLogin = &now
	}

	token, err := SignToken(user, configs.JWTExpiry)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	helper.SetAuthCookie(c, token, int(configs.JWTExpiry.Seconds()))

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user":  userDTO.ToUserDTO(user),
		"token": token,
	})
}

// ========================== ME ==========================
// GET /api/auth/me
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userIDStr, ok := c.Locals(authMW.LocUserID).(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "", fiber.Map{"user": userDTO.ToUserDTO(user)})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout — token stateless; cukup hapus cookie.
func Logout(c *fiber.Ctx) error {
	helper.ClearAuthCookie(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}
