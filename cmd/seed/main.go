package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"datamarket/internal/auth"
	"datamarket/internal/config"
	"datamarket/internal/db"
	apperrors "datamarket/internal/errors"
	"datamarket/internal/logger"
	"datamarket/internal/repository"
	"datamarket/internal/service"
)

// SeedUserData is one entry of the seed document.
type SeedUserData struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	WalletAddress *string `json:"wallet_address"`
	Role          *string `json:"role"`
}

func main() {
	source := flag.String("source", "seed/users.json", "path or http(s) URL of a JSON array of users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.Fatalf("setup logger: %v", err)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	logrus.Infof("Loading users from: %s", *source)
	users, err := loadUsers(*source)
	if err != nil {
		logrus.Fatalf("Failed to load users: %v", err)
	}

	userService := service.NewUserService(
		repository.NewUserRepository(gormDB),
		auth.NewBcryptHasher(cfg.BcryptCost),
		nil,
	)

	created, skipped, err := seedUsers(context.Background(), userService, users)
	if err != nil {
		logrus.Fatalf("Failed to seed users: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"created": created,
		"skipped": skipped,
	}).Info("Seed completed")
}

// loadUsers reads the seed document from a local file or an http(s) URL.
func loadUsers(source string) ([]SeedUserData, error) {
	var (
		body []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var users []SeedUserData
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return users, nil
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// seedUsers creates each user, counting entries whose email already exists
// or that lack required fields as skipped.
func seedUsers(ctx context.Context, svc service.UserService, users []SeedUserData) (created int, skipped int, err error) {
	for _, u := range users {
		_, err := svc.CreateUser(ctx, service.NewUserInput{
			Name:          u.Name,
			Email:         u.Email,
			Password:      u.Password,
			WalletAddress: u.WalletAddress,
			Role:          u.Role,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrUserAlreadyExists), errors.Is(err, apperrors.ErrMissingFields):
			logrus.WithError(err).WithField("email", u.Email).Warn("Skipping user")
			skipped++
		default:
			return created, skipped, fmt.Errorf("create user %s: %w", u.Email, err)
		}
	}
	return created, skipped, nil
}
