// Command hashpw prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
//
// Usage:
//
//	hashpw <password>
//	echo -n <password> | hashpw
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/azizulsheikh/studio/internal/auth"
	"github.com/azizulsheikh/studio/pkg/logging"
)

func main() {
	logging.Setup()

	password, err := readPassword(os.Args[1:], os.Stdin)
	if err != nil {
		slog.Error("Failed to read password", "error", err)
		os.Exit(1)
	}
	if err := auth.ValidateCredential(password); err != nil {
		slog.Error("Password rejected", "error", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readPassword(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
