package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/config"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/delivery/cli"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/infra/postgres"
	pgrepo "github.com/UnknownGamerYT/fsquiz-trainer/internal/infra/postgres/repository"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/logger"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/repository"
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

	source := flag.String("source", "", "path to questions JSON (default: configured dataset)")
	categoryFlag := flag.String("category", "", "predefined category: mechanical, electrical, finance, team-manager")
	count := flag.Int("count", 0, "number of questions to ask (default: prompt)")
	timed := flag.Bool("timed", false, "show a countdown timer using median times for questions without one")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stdin := bufio.NewReader(os.Stdin)

	category, err := resolveCategory(stdin, *categoryFlag)
	if err != nil {
		zl.Fatal("invalid category", zap.Error(err))
	}

	questionCount := *count
	if questionCount <= 0 {
		questionCount = promptCount(stdin, cfg.Quiz.DefaultCount)
	}

	runTimed := *timed
	if !*timed {
		runTimed = promptTimed(stdin)
	}

	questions, sourceLabel, err := loadQuestions(ctx, cfg, zl, *source, category)
	if err != nil {
		zl.Fatal("failed to load questions", zap.Error(err))
	}

	handler := cli.NewHandler(zl, service.NewQuizService(), stdin, os.Stdout, cfg.Quiz.WrapWidth)
	_, err = handler.Run(ctx, sourceLabel, category, questions, cli.Options{
		Count: questionCount,
		Timed: runTimed,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoQuestionsAvailable) {
			zl.Fatal("no questions with answers available", zap.String("source", sourceLabel))
		}
		zl.Fatal("quiz session failed", zap.Error(err))
	}
}

// resolveCategory parses the flag value or prompts for one; empty input
// means the whole bank.
func resolveCategory(stdin *bufio.Reader, flagValue string) (entities.Category, error) {
	raw := flagValue
	if raw == "" {
		slugs := make([]string, 0, len(entities.AllCategories))
		for _, c := range entities.AllCategories {
			slugs = append(slugs, c.Slug())
		}
		fmt.Printf("Pick category [%s or leave empty for all]: ", strings.Join(slugs, "/"))
		raw = readLine(stdin)
	}
	if raw == "" {
		return "", nil
	}
	return entities.ParseCategory(raw)
}

func promptCount(stdin *bufio.Reader, fallback int) int {
	fmt.Printf("How many questions? [default %d]: ", fallback)
	raw := readLine(stdin)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func promptTimed(stdin *bufio.Reader) bool {
	fmt.Print("Enable timer? [y/n, default n]: ")
	return strings.HasPrefix(strings.ToLower(readLine(stdin)), "y")
}

func readLine(stdin *bufio.Reader) string {
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// loadQuestions picks the question source: an explicit file, the question
// bank database when configured, or the per-category / merged dataset
// files. It returns the pool plus a label for display.
func loadQuestions(
	ctx context.Context,
	cfg *config.Config,
	zl *zap.Logger,
	source string,
	category entities.Category,
) ([]entities.Question, string, error) {
	if source != "" {
		repo, err := repository.NewQuestionRepository(source)
		if err != nil {
			return nil, "", err
		}
		questions, err := repo.GetAll(ctx)
		return questions, source, err
	}

	if cfg.DB.Enabled() {
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, "", err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, "", err
		}
		defer pool.Close()

		repo := pgrepo.NewQuestionRepository(pool)
		if category != "" {
			questions, err := repo.GetByCategory(ctx, category)
			return questions, "question bank (" + category.Slug() + ")", err
		}
		questions, err := repo.GetAll(ctx)
		return questions, "question bank", err
	}

	path := cfg.Dataset.Path
	if category != "" {
		path = filepath.Join(cfg.Dataset.CategorizedDir, category.FileName())
	}
	zl.Debug("loading questions from file", zap.String("path", path))

	repo, err := repository.NewQuestionRepository(path)
	if err != nil {
		return nil, "", err
	}
	questions, err := repo.GetAll(ctx)
	return questions, path, err
}
