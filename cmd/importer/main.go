// Command importer round-trips the question bank through PostgreSQL:
// it categorizes the dataset and loads it into the database, or exports
// the stored bank back to a JSON file.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/config"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/infra/postgres"
	pgrepo "github.com/UnknownGamerYT/fsquiz-trainer/internal/infra/postgres/repository"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/logger"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/repository"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/rulesdoc"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	input := flag.String("input", cfg.Dataset.Path, "path to questions JSON to import")
	rulesPDF := flag.String("rules", cfg.Dataset.RulesPDFPath, "path to the FS rules PDF used to validate rule codes")
	export := flag.String("export", "", "export the stored question bank to this JSON file instead of importing")
	flag.Parse()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("DATABASE_URL is required for the importer", zap.Error(err))
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        cfg.DB.MaxConnections,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if *export != "" {
		questions, err := pgrepo.NewQuestionRepository(pool).GetAll(ctx)
		if err != nil {
			zl.Fatal("failed to read question bank", zap.Error(err))
		}
		if err := repository.WriteDataset(*export, questions); err != nil {
			zl.Fatal("failed to write export", zap.Error(err))
		}
		zl.Info("question bank exported",
			zap.Int("questions", len(questions)),
			zap.String("path", *export),
		)
		return
	}

	repo, err := repository.NewQuestionRepository(*input)
	if err != nil {
		zl.Fatal("failed to load dataset", zap.String("path", *input), zap.Error(err))
	}
	questions, err := repo.GetAll(ctx)
	if err != nil {
		zl.Fatal("failed to read questions", zap.Error(err))
	}

	validCodes, err := rulesdoc.ValidCodes(*rulesPDF)
	if err != nil {
		zl.Warn("rules document unavailable, skipping rule-code validation",
			zap.String("path", *rulesPDF),
			zap.Error(err),
		)
	}

	categorized := make([]entities.CategorizedQuestion, 0, len(questions))
	for _, q := range questions {
		codes := service.ExtractRuleCodes(q.Text, validCodes)
		categorized = append(categorized, entities.CategorizedQuestion{
			Question: q,
			Category: service.Categorize(q.Text, codes),
		})
	}

	if err := pgrepo.NewQuestionRepository(pool).EnsureSchema(ctx); err != nil {
		zl.Fatal("failed to ensure schema", zap.Error(err))
	}

	transactor := postgres.NewTransactor(pool)
	err = transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return pgrepo.NewQuestionRepository(tx).Import(ctx, categorized)
	})
	if err != nil {
		zl.Fatal("import failed", zap.Error(err))
	}

	zl.Info("question bank imported", zap.Int("questions", len(categorized)))
}
