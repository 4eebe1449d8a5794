package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// DefaultAdminPassword is the compiled-in fallback when the
	// environment does not override it.
	DefaultAdminPassword = "admin123"

	// MaxLoginAttempts is how many password tries are allowed before
	// access is denied.
	MaxLoginAttempts = 3

	adminPasswordEnv = "SMS_ADMIN_PASSWORD"
)

// AdminPassword reads the admin password from the environment with the
// compiled-in fallback.
func AdminPassword() string {
	if v := os.Getenv(adminPasswordEnv); v != "" {
		return v
	}
	return DefaultAdminPassword
}

// Authenticate prompts for the admin password, allowing up to maxAttempts
// tries. Returns true on success; on failure the menu is never shown.
func Authenticate(scanner *bufio.Scanner, out io.Writer, password string, maxAttempts int) bool {
	fmt.Fprintln(out, "\n=== Sales Management Login ===")

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprint(out, "Enter admin password: ")
		if !scanner.Scan() {
			break
		}
		if strings.TrimSpace(scanner.Text()) == password {
			fmt.Fprint(out, "Login successful.\n\n")
			return true
		}
		if left := maxAttempts - attempt; left > 0 {
			fmt.Fprintf(out, "Invalid password. Attempts left: %d\n", left)
		}
	}

	fmt.Fprintln(out, "Access denied. Too many failed attempts.")
	return false
}
