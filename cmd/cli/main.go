// Command cli creates a user account directly against the database, for
// operators bootstrapping an installation without going through the HTTP
// API. The password is read with echo disabled and hashed the same way the
// server hashes it.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"github.com/ymatsuzawa/foodkeeper/internal/hashx"
	"github.com/ymatsuzawa/foodkeeper/internal/server/config"
	"github.com/ymatsuzawa/foodkeeper/internal/server/models"
	"github.com/ymatsuzawa/foodkeeper/internal/server/repositories/users"
	"github.com/ymatsuzawa/foodkeeper/internal/server/services"
)

func getSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func getPassword() ([]byte, error) {
	fmt.Println("Enter password")
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func run() error {
	cfg := config.LoadConfig()
	reader := bufio.NewReader(os.Stdin)

	userName, err := getSimpleText(reader, "Enter user name")
	if err != nil {
		return err
	}
	mail, err := getSimpleText(reader, "Enter mail")
	if err != nil {
		return err
	}
	password, err := getPassword()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	svc := services.NewUserService(users.NewPostgresRepository(db), hashx.HashPassword)

	info, err := svc.Create(context.Background(), models.CreateUserPayload{
		UserName: models.UserName(userName),
		Mail:     models.Mail(mail),
		Password: string(password),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created user %s (%s)\n", info.UserName, info.UserID)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
