// Command categorize sorts every question of the dataset into its subject
// bucket and writes one JSON file per category. When the FS rules document
// is available its rule codes validate the codes extracted from question
// text; otherwise categorization degrades to keywords only.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/config"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
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

	input := flag.String("input", cfg.Dataset.Path, "path to questions JSON")
	rulesPDF := flag.String("rules", cfg.Dataset.RulesPDFPath, "path to the FS rules PDF used to validate rule codes")
	outDir := flag.String("out", cfg.Dataset.CategorizedDir, "output directory for per-category files")
	flag.Parse()

	ctx := context.Background()

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
	} else {
		zl.Info("loaded valid rule codes", zap.Int("count", len(validCodes)))
	}

	buckets := make(map[entities.Category][]entities.Question)
	for _, q := range questions {
		codes := service.ExtractRuleCodes(q.Text, validCodes)
		cat := service.Categorize(q.Text, codes)
		buckets[cat] = append(buckets[cat], q)
	}

	paths, err := repository.WriteBuckets(*outDir, buckets)
	if err != nil {
		zl.Fatal("failed to write category files", zap.Error(err))
	}

	for _, cat := range entities.AllCategories {
		zl.Info("bucket written",
			zap.String("category", string(cat)),
			zap.Int("questions", len(buckets[cat])),
			zap.String("path", paths[cat]),
		)
	}
}
