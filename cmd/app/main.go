package main

import (
	"log/slog"
	"os"

	"logistics/cmd"
	"logistics/internal/adapters/in/cli"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	// .env is optional; real environment variables win over file values.
	_ = godotenv.Load(".env")

	configs, err := cmd.LoadConfig(cmd.DefaultConfigFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: configs.SlogLevel(),
	}))

	root := cli.NewRootCommand(configs.InputsDir, configs.OutputsDir, logger,
		func(inputsDir, outputsDir string) (cli.Handlers, error) {
			runConfig := configs
			runConfig.InputsDir = inputsDir
			runConfig.OutputsDir = outputsDir

			app, err := cmd.NewCompositionRoot(runConfig, logger)
			if err != nil {
				return cli.Handlers{}, err
			}
			return cli.Handlers{
				CleanOrders:         app.CreateCleanOrdersCommandHandler(),
				PlanAssignments:     app.CreatePlanAssignmentsCommandHandler(),
				ReconcileDeliveries: app.CreateReconcileDeliveriesCommandHandler(),
				Pipeline:            app.CreatePipeline(),
			}, nil
		})

	if err := root.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
