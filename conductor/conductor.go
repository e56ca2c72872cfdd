package conductor

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/http/middleware"
	"github.com/switchyard-web/switchyard/http/route"
	"github.com/switchyard-web/switchyard/http/server"
	"github.com/switchyard-web/switchyard/http/template"
	"github.com/switchyard-web/switchyard/logger"
	"github.com/switchyard-web/switchyard/postgres"
)

// A Conductor manages and exposes all components of a switchyard app to one another.
type Conductor struct {
	db     *postgres.Store
	d      *route.Dispatcher
	engine *template.Engine
	env    switchyard.Environment
	l      logger.Logger
	srv    *http.Server
	web    *server.Server
}

// New constructs a Conductor from the provided options.
// Whatever the options leave unset falls back to environment variables
// and then to defaults.
func New(opts ...Option) (*Conductor, error) {
	c := &Conductor{d: route.NewDispatcher()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("%w: %s", switchyard.ErrBadConfig, err)
		}
	}

	if c.env == "" {
		c.env = switchyard.EnvVarOrEnv(environmentEnvVar, switchyard.Development)
	}

	if c.l == nil {
		c.l = logger.New(
			logger.WithEnv(c.env.String()),
			logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, logger.LogLevelInfo)),
		)
	}

	if c.engine == nil {
		c.engine = template.NewEngine()
	}

	if c.srv == nil {
		c.srv = defaultServer()
	}

	return c, nil
}

func (c *Conductor) EmitDB() *postgres.Store         { return c.db }
func (c *Conductor) EmitEngine() *template.Engine    { return c.engine }
func (c *Conductor) EmitEnv() switchyard.Environment { return c.env }
func (c *Conductor) EmitLogger() logger.Logger       { return c.l }

// Register produces a Router from each route table,
// registers them with the app's Dispatcher in the order given,
// and mounts the dispatch funnel on the web server.
func (c *Conductor) Register(tables ...*route.Table) error {
	for _, t := range tables {
		router, err := t.Router()
		if err != nil {
			return fmt.Errorf("%w: %s", switchyard.ErrBadConfig, err)
		}

		c.d.Register(router)
		c.l.Debug(fmt.Sprintf("registered resource %q", router.Name()), nil)
	}

	c.web = server.New(c.env, c.d, c.l)
	c.web.OnEveryRequest(
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		middleware.LogRequest(c.l),
		middleware.CORS(switchyard.EnvVarOrURL(baseURLEnvVar, defaultBaseURL).String()),
	)
	c.web.Mount()
	c.srv.Handler = c.web

	return nil
}

// Serve begins the web server.
//
// These, and (*Conductor).Shutdown, stop Serve:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (c *Conductor) Serve() error {
	if c.srv.Handler == nil {
		return fmt.Errorf("%w: no routes registered, call Register first", switchyard.ErrBadConfig)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		c.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		cancel()
	}()

	go func() {
		c.l.Info(fmt.Sprintf("running web server at %s", c.srv.Addr), nil)
		if err := c.srv.ListenAndServe(); err != http.ErrServerClosed {
			c.l.Error(fmt.Errorf("could not listen: %w", err).Error(), nil)
		}
	}()

	<-ctx.Done()
	return c.Shutdown()
}

// Shutdown shutdowns the web server.
func (c *Conductor) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.l.Info("shutting down web server", nil)
	err := c.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	c.l.Info("web server shutdown successfully", nil)
	return nil
}

func defaultServer() *http.Server {
	host := switchyard.EnvVarOrString(hostEnvVar, defaultHost)
	port := switchyard.EnvVarOrString(portEnvVar, defaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	return &http.Server{
		Addr:         host + port,
		ReadTimeout:  envVarOrSeconds(serverReadTimeoutEnvVar, defaultServerReadTimeout),
		IdleTimeout:  envVarOrSeconds(serverIdleTimeoutEnvVar, defaultServerIdleTimeout),
		WriteTimeout: envVarOrSeconds(serverWriteTimeoutEnvVar, defaultServerWriteTimeout),
	}
}

// envVarOrLogLevel gets the environment variable for the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	ll := logger.NewLogLevel(val)
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}

// envVarOrSeconds reads a whole number of seconds from the environment variable.
func envVarOrSeconds(key string, def int) time.Duration {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		val = def
	}

	return time.Duration(val) * time.Second
}
