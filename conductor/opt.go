package conductor

import (
	"net/http"

	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/http/template"
	"github.com/switchyard-web/switchyard/logger"
	"github.com/switchyard-web/switchyard/postgres"
)

// An Option configures the *Conductor under construction.
type Option func(*Conductor) error

// WithDB connects to the database described by the DATABASE_* environment
// variables, running the migrations, and exposes the resulting store
// to the switchyard app.
func WithDB(migrations []postgres.Migration) Option {
	return func(c *Conductor) error {
		env := switchyard.EnvVarOrEnv(environmentEnvVar, switchyard.Development)
		store, err := postgres.Connect(&postgres.CxnConfig{
			IsTestDB: env.IsTesting(),
			URL:      switchyard.EnvVarOrString(dbURLEnvVar, ""),
			Host:     switchyard.EnvVarOrString(dbHostEnvVar, defaultDBHost),
			Port:     switchyard.EnvVarOrString(dbPortEnvVar, defaultDBPort),
			Name:     switchyard.EnvVarOrString(dbNameEnvVar, ""),
			User:     switchyard.EnvVarOrString(dbUserEnvVar, ""),
			Password: switchyard.EnvVarOrString(dbPassEnvVar, ""),
			SSLMode:  switchyard.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode),
		}, migrations, env)
		if err != nil {
			return err
		}

		c.db = store
		return nil
	}
}

// WithEngine exposes the provided *template.Engine to the switchyard app.
func WithEngine(e *template.Engine) Option {
	return func(c *Conductor) error {
		c.engine = e
		return nil
	}
}

// WithEnv casts the provided string into a valid Environment
// and exposes it to the switchyard app.
func WithEnv(env string) Option {
	return func(c *Conductor) error {
		e := switchyard.Environment(env)
		if err := e.Valid(); err != nil {
			return err
		}

		c.env = e
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the switchyard app.
func WithLogger(l logger.Logger) Option {
	return func(c *Conductor) error {
		c.l = l
		return nil
	}
}

// WithServer exposes the provided *http.Server to the switchyard app.
//
// The server's Handler is overwritten by Register.
func WithServer(srv *http.Server) Option {
	return func(c *Conductor) error {
		c.srv = srv
		return nil
	}
}

// WithStore exposes an already established *postgres.Store to the switchyard app.
func WithStore(store *postgres.Store) Option {
	return func(c *Conductor) error {
		c.db = store
		return nil
	}
}
