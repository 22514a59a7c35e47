package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"luna/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	sourceURL = "file://migrations/postgres"

	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

var actions = map[string]func(*migrate.Migrate) error{
	ActionUp:     (*migrate.Migrate).Up,
	ActionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
	ActionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
	ActionDrop:   (*migrate.Migrate).Down,
}

// DatabaseURL builds the migrate connection string for the write database.
// Credentials are escaped so passwords may contain reserved characters.
func DatabaseURL(cfg *config.Config) string {
	pg := cfg.DB.Postgres
	write := pg.Write

	query := url.Values{}
	if write.SSLMode != "" {
		query.Set("sslmode", write.SSLMode)
	}

	if pg.MigrationTable != "" {
		query.Set("x-migrations-table", pg.MigrationTable)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     "/" + pg.Prefix + write.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Runner applies one migration action against the write database.
func Runner(cfg *config.Config, action string) (err error) {
	run, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := migrate.New(sourceURL, DatabaseURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	defer func() {
		srcErr, dbErr := mig.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	err = run(mig)
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Str("action", action).Msg("Database schema already up to date")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to migrate %s: %w", action, err)
	}

	version, dirty, _ := mig.Version()
	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration applied")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
