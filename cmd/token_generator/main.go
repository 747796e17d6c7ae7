package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	mw "hackfest/internal/http/middleware"
)

// Mints session tokens for local development, signed the way the identity
// provider signs them.
func main() {
	var (
		secret  = flag.String("secret", os.Getenv("AUTH_JWT_SECRET"), "HS256 signing secret")
		userID  = flag.String("sub", "", "user id (token subject)")
		email   = flag.String("email", "", "user email")
		name    = flag.String("name", "", "user display name")
		isAdmin = flag.Bool("admin", false, "grant admin access")
		ttl     = flag.Duration("ttl", 24*time.Hour, "token lifetime")
	)
	flag.Parse()

	if *secret == "" || *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: token_generator -secret <secret> -sub <user id> [-email e] [-name n] [-admin] [-ttl 24h]")
		os.Exit(2)
	}

	token, err := mw.IssueToken(*secret, mw.Identity{
		UserID:  *userID,
		Email:   *email,
		Name:    *name,
		IsAdmin: *isAdmin,
	}, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to sign token:", err)
		os.Exit(1)
	}

	fmt.Println("TOKEN=" + token)
}
