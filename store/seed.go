package store

import (
	"database/sql"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/arbazmubasher1/HygieneChecklist/model"
)

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// InspectorEmail derives the login address for a branch supervisor, e.g.
// DHA-P6 becomes person@dhap6.com.
func InspectorEmail(branch model.Branch) string {
	host := strings.ToLower(string(branch))
	host = reNonAlnum.ReplaceAllLiteralString(host, "")
	return "person@" + host + ".com"
}

// seedInspectors creates one account per branch with the shared password.
// Accounts that already exist keep their stored hash, so rotating the flag
// only affects fresh databases.
func seedInspectors(db *sql.DB, password string) error {
	for _, branch := range model.Branches {
		email := InspectorEmail(branch)

		var exists bool
		err := db.QueryRow("SELECT 1 FROM user WHERE username = ?", email).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = db.Exec(
			"INSERT INTO user (username, branch, password_hash) VALUES (?, ?, ?)",
			email,
			branch,
			hash,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
