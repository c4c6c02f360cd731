package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"prenderia/internal/client/api"
	"prenderia/internal/client/session"
	"prenderia/internal/config"
	"prenderia/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoSession = errors.New("no hay sesión activa; ejecute 'prenderia login'")

// app is the state shared by every command of one invocation.
type app struct {
	cfg     *config.ClientConfig
	log     *zap.Logger
	session *session.Manager
	client  *api.Client
}

// BuildRootCmd assembles the command tree.
func BuildRootCmd() *cobra.Command {
	a := &app{}
	var baseURL, tokenFile string

	cmd := &cobra.Command{
		Use:          "prenderia",
		Short:        "Cliente de operación de la Prendería",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context(), baseURL, tokenFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (default: API_BASE_URL or "+config.DefaultBaseURL+")")
	cmd.PersistentFlags().StringVar(&tokenFile, "token-file", "", "token file (default: PRENDERIA_TOKEN_FILE or the user config dir)")

	cmd.AddCommand(
		loginCommand(a),
		logoutCommand(a),
		whoamiCommand(a),
		prestamosCommand(a),
		interesesCommand(a),
		empenosCommand(a),
		articulosCommand(a),
		tiposCommand(a),
		usuariosCommand(a),
		meCommand(a),
		reportesCommand(a),
	)
	return cmd
}

func (a *app) init(ctx context.Context, baseURL, tokenFile string) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if tokenFile != "" {
		cfg.TokenFile = tokenFile
	}
	a.cfg = cfg

	lc := logger.DevConfig()
	if cfg.AppMode == "prod" {
		lc = logger.ProdConfig()
	}
	lc.Level = cfg.LogLevel
	lc.Output = "stderr"
	a.log = logger.New(lc)

	store, err := session.NewFileStore(cfg.TokenFile)
	if err != nil {
		return fmt.Errorf("token store: %w", err)
	}
	a.session = session.NewManager(store, a.log.Named("session"))

	a.client, err = api.New(cfg.BaseURL, a.session.Transport(nil), cfg.Timeout)
	if err != nil {
		return err
	}
	a.session.SetAuthenticator(a.client)
	a.session.Initialize(ctx)

	a.log.Debug("client ready",
		zap.String("base_url", cfg.BaseURL),
		zap.String("token_file", cfg.TokenFile),
		zap.Bool("authenticated", a.session.Authenticated()),
	)
	return nil
}

func (a *app) close() {
	if a.session != nil {
		a.session.Teardown()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func (a *app) requireSession() error {
	if !a.session.Authenticated() {
		return errNoSession
	}
	return nil
}

// role is the session role, empty when unknown.
func (a *app) role() session.Role {
	if id := a.session.Identity(); id != nil && id.Role != nil {
		return *id.Role
	}
	return ""
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

const dateLayout = "2006-01-02"
