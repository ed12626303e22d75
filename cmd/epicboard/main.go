package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/epicboard/internal/cli"
	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/alexanderramin/epicboard/internal/importer"
	"github.com/alexanderramin/epicboard/internal/intelligence"
	"github.com/alexanderramin/epicboard/internal/llm"
	"github.com/alexanderramin/epicboard/internal/plan"
	"github.com/alexanderramin/epicboard/internal/repository"
	"github.com/alexanderramin/epicboard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.epicboard/epicboard.db
	dbPath := os.Getenv("EPICBOARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".epicboard", "epicboard.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repos := repository.NewSQLiteSet(database)
	uow := db.NewSQLiteUnitOfWork(database)
	persister := plan.NewPersister(uow)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if envBool("EPICBOARD_LOG_USE_CASES") {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Intelligence services always exist; with LLM features off they fail
	// with llm.ErrDisabled. Project creation only plans when enabled.
	llmCfg := llm.LoadConfig()
	var client llm.LLMClient = llm.DisabledClient{}
	var planner service.Planner
	if llmCfg.Enabled {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(os.Stderr)
		}
		client, err = llm.NewClient(llmCfg, llmObserver)
		if err != nil {
			return fmt.Errorf("configuring llm: %w", err)
		}
		planner = intelligence.NewPlanningService(client, persister)
	}

	app := &cli.App{
		Users:      service.NewUserService(repos.Users),
		Workspaces: service.NewWorkspaceService(repos.Workspaces, repos.Users),
		Projects:   service.NewProjectService(repos.Projects, repos.Workspaces, repos.Epics, repos.Tasks, planner, observer),
		Tasks:      service.NewTaskService(repos, uow, observer),
		Risks:      intelligence.NewRiskService(client, repos.Tasks, repos.Risks, uow),
		Summary:    intelligence.NewSummaryService(client, repos.Tasks, repos.TaskUpdates, repos.Users),
		Import:     importer.New(persister),
	}

	// Forms and the board viewer need a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
