package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// fatalError prints the error and exits. Authorization failures get the
// re-login hint since the stored credential was already cleared.
func fatalError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// sessionExpired tells the user the credential was invalidated. The 401
// hook has already cleared storage; the CLI equivalent of the login
// redirect is pointing at `kova login`.
func sessionExpired() {
	fmt.Fprintln(os.Stderr, "Session expired. Please login again with `kova login`.")
	os.Exit(1)
}

// requireAuth refuses an authenticated command up front when anonymous.
func requireAuth() {
	if !sess.Authenticated() {
		fmt.Fprintln(os.Stderr, "You are not logged in. Run `kova login` first.")
		os.Exit(1)
	}
}

// parseID parses a positional product id argument.
func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fatalError(fmt.Errorf("invalid product id %q", arg))
	}
	return id
}

// prompt reads one trimmed line from stdin.
func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// confirm asks a yes/no question, defaulting to no.
func confirm(label string) bool {
	answer := prompt(label + " [y/N] ")
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
