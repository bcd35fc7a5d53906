package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gaffertool/gaffer/internal/engine"
	"github.com/gaffertool/gaffer/internal/format"
	"github.com/gaffertool/gaffer/internal/rolefile"
	"github.com/gaffertool/gaffer/internal/squad"
	"github.com/gaffertool/gaffer/pkg/config"
	"github.com/gaffertool/gaffer/pkg/logger"
)

var (
	flagRoleFile   string
	flagPlayerFile string
	flagBench      bool
)

var rootCmd = &cobra.Command{
	Use:           "gaffer",
	Short:         "Football squad selection from player attributes",
	Long:          `gaffer assigns a player pool to a set of roles, maximizing total score under eligibility and filter constraints.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the optimal squad for a role file and player pool",
	RunE:  runSolve,
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Print the role catalogue grouped by category",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(format.RenderCatalog())
	},
}

func init() {
	solveCmd.Flags().StringVarP(&flagRoleFile, "roles", "r", "", "path to the role file")
	solveCmd.Flags().StringVarP(&flagPlayerFile, "players", "p", "", "path to the player data file")
	solveCmd.Flags().BoolVar(&flagBench, "bench", false, "fill the bench from leftover players")
	rootCmd.AddCommand(solveCmd, rolesCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())

	rolePath := cfg.RoleFile
	if flagRoleFile != "" {
		rolePath = flagRoleFile
	}
	playerPath := cfg.PlayerFile
	if flagPlayerFile != "" {
		playerPath = flagPlayerFile
	}

	content, err := rolefile.ParseRoleFile(rolePath)
	if err != nil {
		return err
	}
	// A configured formation backs role files that declare none
	content, err = content.ApplyFormation(cfg.Formation)
	if err != nil {
		return err
	}
	logger.WithRoleFile(rolePath).WithFields(logrus.Fields{
		"formation": content.Formation,
		"roles":     len(content.Selections),
	}).Info("Role file loaded")

	players, err := squad.ParsePlayerFile(playerPath)
	if err != nil {
		return err
	}

	solver := engine.NewSolver(log)
	team, err := solver.Solve(players, content.RoleIDs(), content.Filters())
	if err != nil {
		return err
	}

	if flagBench || cfg.FillBench {
		team.Bench = engine.FillBench(team, players, cfg.BenchSize)
	}

	rendered := format.RenderTeam(team)
	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// One diagnostic line per failure, identifying the error code
		fmt.Fprintf(os.Stderr, "gaffer: %v\n", err)
		os.Exit(1)
	}
}
