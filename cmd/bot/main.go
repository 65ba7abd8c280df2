package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/guildboard/blackboard/internal/clients/blizzard"
	"github.com/guildboard/blackboard/internal/common/clock"
	"github.com/guildboard/blackboard/internal/common/uuid"
	"github.com/guildboard/blackboard/internal/handlers/discord"
	"github.com/guildboard/blackboard/internal/i18n"
	guildconfigRepo "github.com/guildboard/blackboard/internal/repositories/guildconfig"
	"github.com/guildboard/blackboard/internal/repositories/itemcache"
	orderRepo "github.com/guildboard/blackboard/internal/repositories/order"
	sessionRepo "github.com/guildboard/blackboard/internal/repositories/session"
	itemService "github.com/guildboard/blackboard/internal/services/item"
	orderService "github.com/guildboard/blackboard/internal/services/order"
	wizardService "github.com/guildboard/blackboard/internal/services/wizard"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	// Local development keeps credentials in a .env file
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cmd := &cli.Command{
		Name:  "blackboard",
		Usage: "Discord order board bot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "discord-token",
				Sources:  cli.EnvVars("DISCORD_TOKEN"),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "application-id",
				Sources: cli.EnvVars("DISCORD_APPLICATION_ID"),
			},
			&cli.StringFlag{
				Name:    "guild-id",
				Usage:   "register commands for a single guild (development)",
				Sources: cli.EnvVars("DISCORD_GUILD_ID"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the bot",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "data-dir",
						Value:   "./data",
						Sources: cli.EnvVars("DATA_DIR"),
					},
					&cli.StringFlag{
						Name:    "redis-addr",
						Usage:   "optional Redis address for the shared item cache",
						Sources: cli.EnvVars("REDIS_ADDR"),
					},
					&cli.StringFlag{
						Name:    "redis-password",
						Sources: cli.EnvVars("REDIS_PASSWORD"),
					},
					&cli.StringFlag{
						Name:    "blizzard-client-id",
						Sources: cli.EnvVars("BLIZZARD_CLIENT_ID"),
					},
					&cli.StringFlag{
						Name:    "blizzard-client-secret",
						Sources: cli.EnvVars("BLIZZARD_CLIENT_SECRET"),
					},
					&cli.StringFlag{
						Name:    "blizzard-region",
						Value:   "eu",
						Sources: cli.EnvVars("BLIZZARD_REGION"),
					},
					&cli.StringFlag{
						Name:    "blizzard-locale",
						Value:   "en_US",
						Sources: cli.EnvVars("BLIZZARD_LOCALE"),
					},
					&cli.StringFlag{
						Name:    "locale-override-dir",
						Usage:   "directory with locale overrides, reloaded on change",
						Sources: cli.EnvVars("LOCALE_OVERRIDE_DIR"),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(ctx, cmd, logger)
				},
			},
			{
				Name:  "register",
				Usage: "create the slash commands without running the bot",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return registerCommands(cmd, logger)
				},
			},
			{
				Name:  "unregister",
				Usage: "delete the bot's slash commands",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return unregisterCommands(cmd, logger)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("bot exited", zap.Error(err))
	}
}

// restSession builds a Discord session for plain REST calls and
// resolves the application id
func restSession(cmd *cli.Command) (*discordgo.Session, string, error) {
	dg, err := discordgo.New("Bot " + cmd.String("discord-token"))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create Discord session: %w", err)
	}

	appID := cmd.String("application-id")
	if appID == "" {
		self, err := dg.User("@me")
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve application id: %w", err)
		}
		appID = self.ID
	}
	return dg, appID, nil
}

func registerCommands(cmd *cli.Command, logger *zap.Logger) error {
	dg, appID, err := restSession(cmd)
	if err != nil {
		return err
	}

	guildID := cmd.String("guild-id")
	for _, def := range discord.CommandDefinitions() {
		created, err := dg.ApplicationCommandCreate(appID, guildID, def)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", def.Name, err)
		}
		logger.Info("registered command",
			zap.String("command", created.Name),
			zap.String("id", created.ID))
	}
	return nil
}

func unregisterCommands(cmd *cli.Command, logger *zap.Logger) error {
	dg, appID, err := restSession(cmd)
	if err != nil {
		return err
	}

	guildID := cmd.String("guild-id")
	existing, err := dg.ApplicationCommands(appID, guildID)
	if err != nil {
		return fmt.Errorf("failed to list commands: %w", err)
	}

	ours := make(map[string]bool)
	for _, def := range discord.CommandDefinitions() {
		ours[def.Name] = true
	}

	for _, c := range existing {
		if !ours[c.Name] {
			continue
		}
		if err := dg.ApplicationCommandDelete(appID, guildID, c.ID); err != nil {
			return fmt.Errorf("failed to delete command %s: %w", c.Name, err)
		}
		logger.Info("deleted command", zap.String("command", c.Name))
	}
	return nil
}

func run(ctx context.Context, cmd *cli.Command, logger *zap.Logger) error {
	clk := clock.New()
	ids := uuid.New()

	orders, err := orderRepo.NewFile(&orderRepo.Config{
		DataDir: cmd.String("data-dir"),
	})
	if err != nil {
		return fmt.Errorf("failed to create order repository: %w", err)
	}

	guildConfigs, err := guildconfigRepo.NewFile(&guildconfigRepo.Config{
		DataDir: cmd.String("data-dir"),
	})
	if err != nil {
		return fmt.Errorf("failed to create guild config repository: %w", err)
	}

	sessions, err := sessionRepo.NewMemory(&sessionRepo.Config{
		Clock:  clk,
		UUID:   ids,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create session registry: %w", err)
	}
	sessions.StartSweeper()
	defer sessions.Close()

	bundle, err := i18n.New(&i18n.Config{
		OverrideDir: cmd.String("locale-override-dir"),
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to load locales: %w", err)
	}
	defer func() { _ = bundle.Close() }()

	var cache itemcache.Repository
	if addr := cmd.String("redis-addr"); addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cmd.String("redis-password"),
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}

		cache, err = itemcache.NewRedis(&itemcache.Config{RedisClient: redisClient})
		if err != nil {
			return fmt.Errorf("failed to create item cache: %w", err)
		}
	}

	blizzardClient, err := blizzard.New(&blizzard.Config{
		ClientID:     cmd.String("blizzard-client-id"),
		ClientSecret: cmd.String("blizzard-client-secret"),
		Region:       cmd.String("blizzard-region"),
		Locale:       cmd.String("blizzard-locale"),
		Clock:        clk,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	items, err := itemService.New(&itemService.Config{
		Client: blizzardClient,
		Cache:  cache,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create item service: %w", err)
	}

	dg, err := discordgo.New("Bot " + cmd.String("discord-token"))
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	moderator, err := discord.NewModerator(&discord.ModeratorConfig{
		Session:      dg,
		GuildConfigs: guildConfigs,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create moderator checker: %w", err)
	}

	publisher, err := discord.NewPublisher(&discord.PublisherConfig{
		Session:      dg,
		Translator:   bundle,
		Items:        items,
		GuildConfigs: guildConfigs,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}

	orderSvc, err := orderService.New(&orderService.Config{
		Repository: orders,
		Publisher:  publisher,
		Moderator:  moderator,
		Translator: bundle,
		Clock:      clk,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create order service: %w", err)
	}

	messenger, err := discord.NewPresenter(&discord.PresenterConfig{
		Session:    dg,
		Translator: bundle,
		Items:      items,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create presenter: %w", err)
	}

	wizardSvc, err := wizardService.New(&wizardService.Config{
		Sessions:     sessions,
		Messenger:    messenger,
		Items:        items,
		Orders:       orderSvc,
		Moderator:    moderator,
		GuildConfigs: guildConfigs,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create wizard service: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:       dg,
		ApplicationID: cmd.String("application-id"),
		GuildID:       cmd.String("guild-id"),
		Wizard:        wizardSvc,
		Orders:        orderSvc,
		Sessions:      sessions,
		GuildConfigs:  guildConfigs,
		Translator:    bundle,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("shutting down", zap.Error(ctx.Err()))
	}

	return bot.Stop()
}
