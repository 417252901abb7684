// Package cli drives the interactive terminal quiz session. It is a thin
// presentation layer: categorization, option extraction and scoring all
// live in the service package.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/service"
)

// errQuit signals that the player asked to leave the session.
var errQuit = errors.New("quit requested")

const defaultWrapWidth = 88

// Options selects how a session is run.
type Options struct {
	Count      int  // number of questions to ask; 0 asks the whole pool
	Timed      bool // show the advisory countdown
	MinOptions int  // minimum non-empty options a question needs; default 1
}

// Handler runs quiz sessions over a line-based terminal.
type Handler struct {
	logger    *zap.Logger
	quiz      *service.QuizService
	in        *bufio.Reader
	out       io.Writer
	wrapWidth int
}

func NewHandler(logger *zap.Logger, quiz *service.QuizService, in io.Reader, out io.Writer, wrapWidth int) *Handler {
	if wrapWidth <= 0 {
		wrapWidth = defaultWrapWidth
	}
	return &Handler{
		logger:    logger,
		quiz:      quiz,
		in:        bufio.NewReader(in),
		out:       out,
		wrapWidth: wrapWidth,
	}
}

// Run presents questions drawn from the given pool until the requested
// count is reached, the player quits, or the context is cancelled. The
// returned session carries the presented/scored/correct bookkeeping.
func (h *Handler) Run(
	ctx context.Context,
	source string,
	category entities.Category,
	questions []entities.Question,
	opts Options,
) (*entities.QuizSession, error) {
	minOptions := opts.MinOptions
	if minOptions <= 0 {
		minOptions = 1
	}

	picked, err := h.quiz.PickQuestions(questions, opts.Count, minOptions)
	if err != nil {
		return nil, err
	}
	stats := service.ComputeTimeStats(questions)

	session := entities.NewQuizSession(source, category, len(picked))
	h.logger.Info("quiz session started",
		zap.String("source", source),
		zap.Int("questions", len(picked)),
		zap.Bool("timed", opts.Timed),
	)

	fmt.Fprintf(h.out, "\nFS Quiz — %d questions (source: %s)\n", len(picked), source)
	fmt.Fprintln(h.out, "Answer with letter(s), e.g. 'a' or 'a,c'. Type 'q' to quit, 's' to skip.")
	fmt.Fprintln(h.out)

	for i, q := range picked {
		if ctx.Err() != nil {
			break
		}
		if err := h.askQuestion(ctx, session, i+1, q, stats, opts.Timed); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			return nil, err
		}
	}

	session.Complete()
	h.printSummary(session)
	h.logger.Info("quiz session finished",
		zap.Int("presented", session.Presented),
		zap.Int("scored", session.Scored),
		zap.Int("correct", session.Correct),
	)
	return session, nil
}

func (h *Handler) askQuestion(
	ctx context.Context,
	session *entities.QuizSession,
	num int,
	q entities.Question,
	stats service.TimeStats,
	timed bool,
) error {
	session.Present()

	qtype := q.Type
	if qtype == "" {
		qtype = "unknown"
	}
	fmt.Fprintf(h.out, "Q%02d [%s]:\n%s\n", num, qtype, Wrap(q.Text, h.wrapWidth))

	if len(q.Images) > 0 {
		fmt.Fprintln(h.out, "Images:")
		for _, p := range q.Images {
			fmt.Fprintf(h.out, "  - %s\n", p)
		}
	}

	options, correct := service.ExtractOptions(q)

	if timed {
		limit := service.TimeLimit(q, stats)
		fmt.Fprintf(h.out, "(Time allowed: %ds)\n", limit)
		stop := h.startCountdown(ctx, limit)
		defer func() {
			stop()
			fmt.Fprintln(h.out) // leave the countdown line
		}()
	}

	// Questions with a single option carry their solution as ground truth
	// and are answered as free text.
	if len(options) <= 1 {
		return h.askFreeResponse(session, q, options, correct)
	}

	for idx, opt := range options {
		fmt.Fprintf(h.out, "  %s) %s\n", optionLetter(idx), Wrap(opt, h.wrapWidth))
	}
	return h.askChoice(session, q, options, correct)
}

func (h *Handler) askFreeResponse(
	session *entities.QuizSession,
	q entities.Question,
	options []string,
	correct []int,
) error {
	if len(options) > 0 {
		fmt.Fprintln(h.out, "(Free response; enter your answer)")
	}

	for {
		input, err := h.prompt()
		if err != nil {
			return err
		}

		switch strings.ToLower(input) {
		case "q":
			return errQuit
		case "s":
			fmt.Fprintln(h.out, "Skipped.")
			fmt.Fprintln(h.out)
			return nil
		}
		if input == "" {
			fmt.Fprintln(h.out, "Please enter an answer or 's' to skip.")
			continue
		}

		expected := service.CorrectTexts(options, correct)
		outcome := service.EvaluateFreeResponse(input, expected)
		session.Record(entities.QuizAnswer{
			QuestionID: q.ID,
			Response:   input,
			Expected:   expected,
			Outcome:    outcome,
			AnsweredAt: time.Now(),
		})

		if outcome == entities.OutcomeUnscored {
			// No correctness data; echo a reference answer if one exists.
			if len(options) > 0 {
				fmt.Fprintf(h.out, "ℹ️  Reference answer: %s\n\n", options[0])
			} else {
				fmt.Fprint(h.out, "ℹ️  No reference answer available.\n\n")
			}
			return nil
		}

		fmt.Fprintf(h.out, "%s Correct answer: %s\n\n",
			formatResult(outcome == entities.OutcomeCorrect), expected[0])
		return nil
	}
}

func (h *Handler) askChoice(
	session *entities.QuizSession,
	q entities.Question,
	options []string,
	correct []int,
) error {
	correctSet := make(map[int]struct{}, len(correct))
	for _, idx := range correct {
		correctSet[idx] = struct{}{}
	}

	for {
		input, err := h.prompt()
		if err != nil {
			return err
		}

		switch strings.ToLower(input) {
		case "q":
			return errQuit
		case "s":
			fmt.Fprintln(h.out, "Skipped.")
			fmt.Fprintln(h.out)
			return nil
		}

		picks, err := service.ParseSelection(input, len(options))
		if err != nil {
			fmt.Fprintln(h.out, "Invalid input, try again.")
			continue
		}

		if len(correct) == 0 {
			session.Record(entities.QuizAnswer{
				QuestionID: q.ID,
				Response:   input,
				Outcome:    entities.OutcomeUnscored,
				AnsweredAt: time.Now(),
			})
			fmt.Fprint(h.out, "ℹ️  No correct answer marked in dataset; response not scored.\n\n")
			return nil
		}

		ok := service.EvaluateChoice(picks, correctSet)
		outcome := entities.OutcomeIncorrect
		if ok {
			outcome = entities.OutcomeCorrect
		}
		session.Record(entities.QuizAnswer{
			QuestionID: q.ID,
			Response:   input,
			Expected:   service.CorrectTexts(options, correct),
			Outcome:    outcome,
			AnsweredAt: time.Now(),
		})

		fmt.Fprintf(h.out, "%s Correct answer(s): %s\n\n", formatResult(ok), correctLabels(correct))
		return nil
	}
}

func (h *Handler) prompt() (string, error) {
	fmt.Fprint(h.out, "Your answer (q=quit, s=skip): ")
	line, err := h.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		// Closed input ends the session like an explicit quit.
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (h *Handler) printSummary(s *entities.QuizSession) {
	switch {
	case s.Scored > 0:
		fmt.Fprintf(h.out, "Final score: %d/%d (scored questions). Presented: %d\n",
			s.Correct, s.Scored, s.Presented)
	case s.Presented > 0:
		fmt.Fprintf(h.out, "Presented %d questions, but none had a marked correct answer to score.\n",
			s.Presented)
	default:
		fmt.Fprintln(h.out, "No questions were asked (insufficient data).")
	}
}
