package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sefraniabdou1937/backend-az/internal/database"
	"github.com/sefraniabdou1937/backend-az/internal/models"
)

const taskNotFoundMessage = "Tâche introuvable"

func tasksForOwner(ownerID int) ([]models.Task, error) {
	rows, err := database.DB.Query(
		`SELECT id, name, is_done, owner_id FROM tasks WHERE owner_id = $1 ORDER BY id ASC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Name, &task.IsDone, &task.OwnerID); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// GetTasks lists the caller's tasks.
func GetTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := tasksForOwner(userID)
	if err != nil {
		log.Printf("Error listing tasks for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a task bound to the caller. The owner is always the
// authenticated user, never a request-supplied id.
func CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task name is required"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task name is required"})
		return
	}

	var task models.Task
	err := database.DB.QueryRow(
		`INSERT INTO tasks (name, owner_id) VALUES ($1, $2) RETURNING id, name, is_done, owner_id`,
		name, userID,
	).Scan(&task.ID, &task.Name, &task.IsDone, &task.OwnerID)
	if err != nil {
		log.Printf("Error creating task for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// ToggleTask inverts the done flag of one of the caller's tasks. Tasks owned
// by someone else look exactly like missing ones.
func ToggleTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	var task models.Task
	err = database.DB.QueryRow(
		`UPDATE tasks SET is_done = NOT is_done WHERE id = $1 AND owner_id = $2
		 RETURNING id, name, is_done, owner_id`,
		taskID, userID,
	).Scan(&task.ID, &task.Name, &task.IsDone, &task.OwnerID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": taskNotFoundMessage})
			return
		}
		log.Printf("Error toggling task %d for user %d: %v", taskID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes one of the caller's tasks.
func DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	result, err := database.DB.Exec(
		`DELETE FROM tasks WHERE id = $1 AND owner_id = $2`,
		taskID, userID,
	)
	if err != nil {
		log.Printf("Error deleting task %d for user %d: %v", taskID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting task"})
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error reading delete result for task %d: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting task"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": taskNotFoundMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetTaskStats counts the caller's total and pending tasks.
func GetTaskStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var stats models.TaskStats
	err := database.DB.QueryRow(
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_done = FALSE)
		 FROM tasks WHERE owner_id = $1`,
		userID,
	).Scan(&stats.TotalTasks, &stats.PendingTasks)
	if err != nil {
		log.Printf("Error counting tasks for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
