package cli

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// Options глобальные флаги командной строки. Пустые значения не перекрывают конфиг.
type Options struct {
	ConfigPath string
	ServerURL  string
	DBPath     string
	LogLevel   string
}

// SetupFunc собирает Cli для выполнения одной команды.
// Возвращаемая функция освобождает ресурсы и дожидается фоновых действий.
type SetupFunc func(ctx context.Context, opts Options) (*Cli, func(), error)

// NewRootCommand создает корневую команду chirp
func NewRootCommand(setup SetupFunc) *cobra.Command {
	var opts Options

	rootCmd := &cobra.Command{
		Use:   "chirp",
		Short: "Chirp - console client for the chirp social network",
		Long: `Chirp is a console client for a small Twitter-like social network.

It reads the feed, posts tweets with images, likes and unlikes them,
and shows profiles and notifications.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Config file path (YAML)")
	flags.StringVar(&opts.ServerURL, "server", "", "Server URL (default http://localhost:3000)")
	flags.StringVar(&opts.DBPath, "db", "", "Path to local database")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	r := &runner{setup: setup, opts: &opts}

	rootCmd.AddCommand(
		newRegisterCommand(r),
		newLoginCommand(r),
		newLogoutCommand(r),
		newStatusCommand(r),
		newFeedCommand(r),
		newPostCommand(r),
		newLikeCommand(r),
		newUnlikeCommand(r),
		newProfileCommand(r),
		newNotificationsCommand(r),
		newAvatarCommand(r),
		newBannerCommand(r),
	)

	return rootCmd
}

// runner откладывает сборку Cli до запуска команды, когда флаги уже разобраны
type runner struct {
	setup SetupFunc
	opts  *Options
}

// run оборачивает действие команды: сборка Cli, выполнение, обработка ошибки, освобождение
func (r *runner) run(action func(ctx context.Context, c *Cli, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		c, cleanup, err := r.setup(ctx, *r.opts)
		if err != nil {
			return err
		}
		defer cleanup()

		return c.handle(ctx, action(ctx, c, args))
	}
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}
