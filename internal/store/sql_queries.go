package store

// Queries are written with "?" placeholders and rebound per dialect.
const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES (?, ?)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = ?;`

	findUserByID = `SELECT id, username, created_at
    FROM users
    WHERE id = ?;`

	markReminderSent = `UPDATE events
    SET reminder_sent = ?
    WHERE id = ? AND reminder_sent = ?;`

	deleteReminder = `DELETE FROM reminders
    WHERE event_id = ?;`
)

var eventColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"date",
	"category",
	"reminder_minutes_before",
	"reminder_sent",
	"created_at",
}
