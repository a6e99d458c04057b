package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Generates bcrypt hashes for seeding user rows:
//
//	go run scripts/genhash.go <password> [password...]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(1)
	}

	for _, pass := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Printf("%s\n", hash)
	}
}
