package main

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lwhite702/klutr/internal/classifier"
	"github.com/lwhite702/klutr/internal/cluster"
	"github.com/lwhite702/klutr/internal/config"
	"github.com/lwhite702/klutr/internal/database"
	"github.com/lwhite702/klutr/internal/embedder"
	"github.com/lwhite702/klutr/internal/inference/openai"
	"github.com/lwhite702/klutr/internal/insight"
	"github.com/lwhite702/klutr/internal/note"
	"github.com/lwhite702/klutr/internal/noteimport"
	"github.com/lwhite702/klutr/internal/pipeline"
	"github.com/lwhite702/klutr/internal/stack"
	"github.com/lwhite702/klutr/internal/user"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// dependencies wires the repositories and pipeline components once per
// command so tests can substitute any of them.
type dependencies struct {
	db       *sqlx.DB
	client   *openai.Client
	notes    *note.DBRepository
	stacks   *stack.DBRepository
	insights *insight.DBRepository
	users    *user.DBRepository
	runner   *pipeline.Runner
	importer *noteimport.Importer
}

func newDependencies(cfg *config.Config) (*dependencies, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai.api_key is required; set the OPENAI_API_KEY environment variable")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}

	client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.EmbeddingModel)

	notes := note.NewDBRepository(db)
	stacks := stack.NewDBRepository(db)
	insights := insight.NewDBRepository(db)
	users := user.NewDBRepository(db)

	runner := pipeline.NewRunner(
		users,
		notes,
		classifier.New(client),
		embedder.New(client),
		cluster.NewEngine(notes),
		stack.NewBuilder(notes, stacks, client),
		insight.NewGenerator(notes, insights, client),
		pipeline.WithBatchSize(cfg.Pipeline.EmbedBatchSize),
	)

	return &dependencies{
		db:       db,
		client:   client,
		notes:    notes,
		stacks:   stacks,
		insights: insights,
		users:    users,
		runner:   runner,
		importer: noteimport.NewImporter(notes),
	}, nil
}

func (d *dependencies) Close() error {
	return errors.Join(d.client.Close(), d.db.Close())
}
