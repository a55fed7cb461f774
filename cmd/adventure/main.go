package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kardolus/adventure-agent/agent"
	"github.com/kardolus/adventure-agent/api/http"
	"github.com/kardolus/adventure-agent/client"
	"github.com/kardolus/adventure-agent/config"
	"github.com/kardolus/adventure-agent/gameserver"
	"github.com/kardolus/adventure-agent/internal"
	"github.com/kardolus/adventure-agent/toolserver"
)

var (
	debugMode bool

	backendFlag  string
	modelFlag    string
	endpointFlag string
	localFlag    bool
	maxSteps     int
	seedFlag     int

	serveAddr string
	servePath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "adventure",
		Short: "An agent that plays text adventure games",
		Long:  "Drives classic text adventures through a reasoning backend and an MCP game server.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugMode {
				internal.SetAllowedLogLevels(zapcore.DebugLevel, zapcore.InfoLevel)
			} else {
				internal.SetAllowedLogLevels(zapcore.InfoLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game session to completion",
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&backendFlag, "backend", "", "Reasoning backend (cohere or gemini)")
	playCmd.Flags().StringVar(&modelFlag, "model", "", "Model name")
	playCmd.Flags().StringVar(&endpointFlag, "endpoint", "", "MCP game server endpoint")
	playCmd.Flags().BoolVar(&localFlag, "local", false, "Play the bundled game in-process instead of over MCP")
	playCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Step budget for the run")
	playCmd.Flags().IntVar(&seedFlag, "seed", 0, "Base seed for reasoning calls")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bundled game over MCP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8000", "Address to listen on")
	serveCmd.Flags().StringVar(&servePath, "path", "/mcp", "HTTP path for the MCP endpoint")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Play the bundled game by hand",
		RunE:  runShell,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cm := config.NewManager(config.New()).WithEnvironment()
			out, err := cm.ShowConfig()
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, serveCmd, shellCmd, configCmd)

	viper.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := loadConfig()

	llm, err := client.New(ctx, cfg)
	if err != nil {
		return err
	}

	server, err := buildToolServer(cfg)
	if err != nil {
		return err
	}

	logs, err := agent.NewRunLogs(cfg.Game)
	if err != nil {
		return err
	}
	defer logs.Close()

	// Transcript lines go to the console and the run's transcript file.
	human := zap.New(zapcore.NewTee(zap.L().Core(), logs.TranscriptZap.Core())).Sugar()

	reactAgent := agent.NewReActAgent(
		llm,
		server,
		agent.NewDefaultBudget(agent.BudgetLimits{
			MaxLLMCalls:  cfg.MaxLLMCalls,
			MaxToolCalls: cfg.MaxToolCalls,
			MaxWallTime:  time.Duration(cfg.MaxWallTime) * time.Second,
		}),
		agent.NewRealClock(),
		agent.WithGame(cfg.Game),
		agent.WithMaxSteps(cfg.MaxSteps),
		agent.WithSeed(cfg.Seed),
		agent.WithMaxScore(cfg.MaxScore),
		agent.WithHumanLogger(human, func() { _ = human.Sync() }),
		agent.WithDebugLogger(logs.DebugLogger, func() { _ = logs.DebugZap.Sync() }),
	)

	result, err := reactAgent.RunGame(ctx)

	human.Infof("\n==================================================")
	human.Infof("Final Score: %d / %d", result.FinalScore, result.MaxScore)
	human.Infof("Moves: %d", result.Moves)
	human.Infof("Locations visited: %s", strings.Join(result.LocationsVisited, ", "))
	human.Infof("Game completed: %v", result.GameCompleted)
	human.Infof("Run logs: %s", logs.Dir)

	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	game, err := gameserver.NewGame()
	if err != nil {
		return err
	}

	zap.S().Infof("Serving %s at http://%s%s", game.Name(), serveAddr, servePath)
	return gameserver.RunMCPHTTP(gameserver.NewMCPServer(gameserver.NewLocal(game)), serveAddr, servePath)
}

func runShell(cmd *cobra.Command, args []string) error {
	game, err := gameserver.NewGame()
	if err != nil {
		return err
	}

	fmt.Println(game.Intro())
	fmt.Println()
	fmt.Println(game.Execute("look"))

	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		fmt.Println(game.Execute(line))
		if game.Over() {
			return nil
		}
	}
}

// loadConfig layers defaults, the config file, ADVENTURE_* variables, and
// finally command-line flags. The API key comes from <BACKEND>_API_KEY.
func loadConfig() config.Config {
	cm := config.NewManager(config.New()).WithEnvironment()
	cfg := cm.Config

	if backendFlag != "" {
		cfg.Backend = backendFlag
	}
	if modelFlag != "" {
		cfg.Model = modelFlag
	}
	if endpointFlag != "" {
		cfg.Endpoint = endpointFlag
	}
	if localFlag {
		cfg.Endpoint = "local"
	}
	if maxSteps > 0 {
		cfg.MaxSteps = maxSteps
	}
	if seedFlag > 0 {
		cfg.Seed = seedFlag
	}
	cfg.Debug = cfg.Debug || debugMode

	if cfg.APIKey == "" {
		cfg.APIKey = viper.GetString(strings.ToUpper(cfg.Backend) + "_API_KEY")
	}

	return cfg
}

func buildToolServer(cfg config.Config) (agent.ToolServer, error) {
	if cfg.Endpoint == "local" {
		game, err := gameserver.NewGame()
		if err != nil {
			return nil, err
		}
		return gameserver.NewLocal(game), nil
	}

	return toolserver.New(cfg.Endpoint, http.New(cfg), cfg.CustomHeaders)
}
