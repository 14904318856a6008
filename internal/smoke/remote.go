package smoke

import (
	"context"
	"fmt"
	"os"

	"github.com/ahjin-guild/dialectmap/internal/client/api"
	"github.com/ahjin-guild/dialectmap/internal/client/session"
)

// Переменные окружения с тестовыми учетными данными.
// Без них auth проверки пропускаются, а не проваливаются.
const (
	EnvTestPhone    = "CORPUS_TEST_PHONE"
	EnvTestPassword = "CORPUS_TEST_PASSWORD"
)

// ConnectionChecks проверяет доступность удаленного сервиса
func ConnectionChecks(client *api.Client) []Check {
	return []Check{
		{
			Name: "corpus api reachable",
			Run: func(ctx context.Context) error {
				sess := session.New()
				if _, err := client.ListCategories(ctx, sess); err != nil {
					return fmt.Errorf("categories endpoint: %w", err)
				}
				return nil
			},
		},
	}
}

// AuthChecks проверяет вход по паролю и /auth/me.
// Учетные данные берутся из окружения.
func AuthChecks(client *api.Client) []Check {
	return []Check{
		{
			Name: "password login",
			Run: func(ctx context.Context) error {
				phone, password, err := testCredentials()
				if err != nil {
					return err
				}

				sess := session.New()
				if _, err := client.LoginWithPassword(ctx, sess, phone, password); err != nil {
					return err
				}
				if !sess.IsAuthenticated() {
					return fmt.Errorf("login succeeded but session has no token")
				}
				return nil
			},
		},
		{
			Name: "current user profile",
			Run: func(ctx context.Context) error {
				phone, password, err := testCredentials()
				if err != nil {
					return err
				}

				sess := session.New()
				if _, err := client.LoginWithPassword(ctx, sess, phone, password); err != nil {
					return err
				}

				info, err := client.GetCurrentUser(ctx, sess)
				if err != nil {
					return err
				}
				if info.ID == "" {
					return fmt.Errorf("profile has empty id")
				}
				return nil
			},
		},
	}
}

func testCredentials() (phone, password string, err error) {
	phone = os.Getenv(EnvTestPhone)
	password = os.Getenv(EnvTestPassword)
	if phone == "" || password == "" {
		return "", "", fmt.Errorf("%w: set %s and %s", ErrSkipped, EnvTestPhone, EnvTestPassword)
	}
	return phone, password, nil
}
