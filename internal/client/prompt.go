package client

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptCredentials reads a username and a password from the terminal.
// The password is read without echo when stdin is a terminal.
func PromptCredentials() (string, string, error) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("Username: ")
	if !scanner.Scan() {
		return "", "", fmt.Errorf("read username: %w", scanner.Err())
	}
	username := strings.TrimSpace(scanner.Text())

	fmt.Print("Password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		return username, string(raw), nil
	}

	// Fallback for piped input in tests and scripts.
	if !scanner.Scan() {
		return "", "", fmt.Errorf("read password: %w", scanner.Err())
	}
	return username, strings.TrimSpace(scanner.Text()), nil
}
