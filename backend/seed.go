package backend

import (
	"context"
	"fmt"
	"os"

	"mysession/domain"
	"mysession/interfaces"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML document pointed to by CONFIG_PATH.
type SeedFile struct {
	Users []domain.User `yaml:"users"`
}

// LoadSeed reads and validates a seed file.
func LoadSeed(path string) ([]domain.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cant read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("cant parse seed file: %w", err)
	}
	for i, u := range seed.Users {
		if u.ID <= 0 {
			return nil, fmt.Errorf("seed user #%d: id must be positive", i)
		}
		if _, err := domain.ParseRole(string(u.Role)); err != nil {
			return nil, fmt.Errorf("seed user #%d: %w", i, err)
		}
	}
	return seed.Users, nil
}

// Seed saves users into store.
func Seed(ctx context.Context, store interfaces.UserStore, users []domain.User) error {
	for _, u := range users {
		if err := store.Save(ctx, u); err != nil {
			return fmt.Errorf("cant save %s %d: %w", u.Role, u.ID, err)
		}
	}
	return nil
}
