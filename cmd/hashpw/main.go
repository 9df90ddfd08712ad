// Command hashpw prompts for a password without echo and prints its bcrypt
// digest, for seeding credential fixtures or database rows.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/akarpov87/authgate/internal/server/auth"
)

func main() {

	cost := flag.Int("cost", auth.DefaultBcryptCost, "bcrypt cost factor")
	flag.Parse()

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}
	if len(password) == 0 {
		log.Fatal("empty password")
	}

	digest, err := auth.HashPassword(string(password), *cost)
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}

	fmt.Println(digest)
}
