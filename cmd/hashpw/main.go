// Command hashpw prints a bcrypt hash for use as AUTH_PASSWORD_HASH.
package main

import (
	"fmt"
	"os"

	"github.com/veewell/veewell-erp/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}
	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
