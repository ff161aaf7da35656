package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"syscall"

	"agenz_site/services"

	"golang.org/x/term"
)

// hash-password prints a bcrypt hash for ADMIN_PASSWORD_HASH
func main() {
	defaultUser := os.Getenv("ADMIN_USERNAME")
	if defaultUser == "" {
		defaultUser = "admin"
	}
	username := flag.String("username", defaultUser, "admin username the password must not contain")
	flag.Parse()

	fmt.Fprint(os.Stderr, "Admin password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	fmt.Fprintln(os.Stderr)

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	fmt.Fprintln(os.Stderr)

	if err := services.ValidateAdminPassword(string(password), *username); err != nil {
		log.Fatalf("Rejected: %v", err)
	}
	if string(password) != string(confirm) {
		log.Fatal("Passwords do not match")
	}

	hash, err := services.HashPassword(string(password))
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Println(hash)
}
