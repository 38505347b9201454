// Command storyctl runs operator tasks against the stories database:
// schema migrations, admin bootstrap, password resets and token cleanup.
//
// Usage:
//
//	storyctl migrate up
//	storyctl promote --email=user@example.com
//	storyctl reset-password --email=user@example.com
//	storyctl cleanup-tokens
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "storyctl: %v\n", err)
		os.Exit(1)
	}
}
