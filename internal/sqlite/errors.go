package sqlite

import "strings"

// The driver reports constraint failures as plain text, so
// classification matches on the stable message fragments.

func isForeignKeyViolation(err error) bool {
	return errContains(err, "FOREIGN KEY constraint failed")
}

func isUniqueViolation(err error) bool {
	return errContains(err, "UNIQUE constraint failed")
}

func errContains(err error, fragment string) bool {
	return err != nil && strings.Contains(err.Error(), fragment)
}
