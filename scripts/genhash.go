package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Generates bcrypt hashes for seeding demo accounts into the users table.
func main() {
	passwords := map[string]string{
		"demo-recruiter@example.com": "recruiter-demo-1",
		"demo-seeker@example.com":    "seeker-demo-1",
	}

	for user, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nPassword: %s\nHash: %s\n\n", user, pass, string(hash))
	}
}
