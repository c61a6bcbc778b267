package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sefraniabdou1937/backend-az/internal/database"
	"github.com/sefraniabdou1937/backend-az/internal/models"
	"github.com/sefraniabdou1937/backend-az/internal/utils"
)

// Register handles user registration
func Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	db := database.DB
	var existingID int
	err := db.QueryRow(`SELECT id FROM users WHERE email=$1`, email).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email existant"})
		return
	}
	if err != sql.ErrNoRows {
		log.Printf("Error checking existing user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	var userID int
	query := `INSERT INTO users (email, hashed_password) VALUES ($1, $2) RETURNING id`
	err = db.QueryRow(query, email, hashedPassword).Scan(&userID)
	if err != nil {
		log.Printf("Error inserting user: %v", err)
		if strings.Contains(err.Error(), "duplicate key value") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email existant"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	c.JSON(http.StatusOK, models.UserProfile{
		ID:    userID,
		Email: email,
		Tasks: []models.Task{},
	})
}

// Login handles user login. Credentials arrive as an OAuth2 password form:
// the username field carries the email.
func Login(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("username")))
	password := c.PostForm("password")

	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	db := database.DB
	var user models.User
	query := `SELECT id, email, hashed_password FROM users WHERE email=$1`
	err := db.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.HashedPassword)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants incorrects"})
			return
		}
		log.Printf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
		return
	}

	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants incorrects"})
		return
	}

	token, err := utils.GenerateToken(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me returns the authenticated user's profile with their tasks.
func Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	db := database.DB
	var email string
	err := db.QueryRow(`SELECT email FROM users WHERE id=$1`, userID).Scan(&email)
	if err != nil {
		log.Printf("Error loading profile for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading profile"})
		return
	}

	tasks, err := tasksForOwner(userID)
	if err != nil {
		log.Printf("Error loading tasks for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading profile"})
		return
	}

	c.JSON(http.StatusOK, models.UserProfile{
		ID:    userID,
		Email: email,
		Tasks: tasks,
	})
}

// ChangePassword replaces the stored hash after checking the old password.
func ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Old and new passwords are required"})
		return
	}

	db := database.DB
	var storedHash string
	err := db.QueryRow(`SELECT hashed_password FROM users WHERE id=$1`, userID).Scan(&storedHash)
	if err != nil {
		log.Printf("Error loading password hash for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error changing password"})
		return
	}

	if !utils.CheckPasswordHash(req.OldPassword, storedHash) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ancien mot de passe incorrect"})
		return
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	if _, err := db.Exec(`UPDATE users SET hashed_password=$1 WHERE id=$2`, newHash, userID); err != nil {
		log.Printf("Error updating password for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error changing password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe mis à jour"})
}
