// Command notifyctl is the operator CLI for the notifier. It inspects and
// edits device token registries, sends ad-hoc notifications, and replays
// stored change events through the same pipeline the service runs.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kimneyapti/notifier/internal/adapters/clients/fcm"
	"github.com/kimneyapti/notifier/internal/adapters/store"
	"github.com/kimneyapti/notifier/internal/domain/notice"
	"github.com/kimneyapti/notifier/internal/platform/config"
	"github.com/kimneyapti/notifier/internal/platform/httpclient"
	"github.com/kimneyapti/notifier/internal/platform/logging"
	"github.com/kimneyapti/notifier/internal/ports"
)

// runtime is everything a command needs, built once per invocation.
type runtime struct {
	tokens ports.TokenStore
	names  ports.DirectoryReader
	sender ports.PushSender
	locale notice.Locale
	logger *slog.Logger
	close  func() error
}

// loader builds the runtime for a profile.
type loader func(ctx context.Context, profile, configDir string) (*runtime, error)

// loadRuntime opens the configured store and push client.
func loadRuntime(ctx context.Context, profile, configDir string) (*runtime, error) {
	cfg, err := config.Load(profile, config.WithConfigDir(configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	backend, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	transport, err := fcm.NewTransport(ctx, cfg.Push.Auth)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("push transport: %w", err)
	}
	hc := httpclient.New(&cfg.Push.Client, fcm.ServiceName, nil, logger, httpclient.WithTransport(transport))

	locale, _ := notice.ParseLocale(cfg.Notification.Locale)
	return &runtime{
		tokens: backend,
		names:  backend,
		sender: fcm.NewClient(hc, cfg.Push.ProjectID, cfg.Push.MaxConcurrency, logger),
		locale: locale,
		logger: logger,
		close:  backend.Close,
	}, nil
}

// cli holds the flags shared by every command and the lazily built runtime.
type cli struct {
	load      loader
	profile   string
	configDir string
	rt        *runtime
}

func (c *cli) runtime(cmd *cobra.Command) (*runtime, error) {
	if c.rt != nil {
		return c.rt, nil
	}
	rt, err := c.load(cmd.Context(), c.profile, c.configDir)
	if err != nil {
		return nil, err
	}
	c.rt = rt
	return rt, nil
}

func (c *cli) shutdown() error {
	if c.rt == nil || c.rt.close == nil {
		return nil
	}
	return c.rt.close()
}

// newRootCmd builds the command tree. The returned func closes the runtime a
// command opened and is safe to call when none was.
func newRootCmd(load loader) (*cobra.Command, func() error) {
	c := &cli{load: load}

	root := &cobra.Command{
		Use:           "notifyctl",
		Short:         "Operate the assignment notifier",
		Long:          `Inspect device tokens, send test notifications and replay item change events.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultProfile := os.Getenv("APP_PROFILE")
	if defaultProfile == "" {
		defaultProfile = "local"
	}
	root.PersistentFlags().StringVarP(&c.profile, "profile", "p", defaultProfile, "configuration profile")
	root.PersistentFlags().StringVar(&c.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")

	root.AddCommand(newTokensCmd(c))
	root.AddCommand(newSendCmd(c))
	root.AddCommand(newReplayCmd(c))
	return root, c.shutdown
}

// execute runs the command and then closes the runtime, also when the
// command failed.
func execute(ctx context.Context, root *cobra.Command, shutdown func() error) error {
	err := root.ExecuteContext(ctx)
	if cerr := shutdown(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("closing store: %w", cerr))
	}
	return err
}

func main() {
	root, shutdown := newRootCmd(loadRuntime)
	if err := execute(context.Background(), root, shutdown); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
