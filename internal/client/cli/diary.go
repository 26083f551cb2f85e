package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/picdiary/internal/client/models"
	"github.com/dmitrijs2005/picdiary/internal/client/services"
)

var errUsage = errors.New("usage")

func parseNumber(args []string, def int, usage string) (int, error) {
	if len(args) == 0 {
		if def < 0 {
			return 0, fmt.Errorf("%w: %s", errUsage, usage)
		}
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	return n, nil
}

func (a *App) printEntry(e *models.Entry) {
	title := e.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(a.out, "#%d %s (%s)\n\n%s\n", e.Number, title, e.Date, e.Body)
	if e.HasImage() {
		fmt.Fprintln(a.out, "\n[illustrated, use export to save the picture]")
	}
}

func (a *App) printPage(p *models.Page) {
	if p.Redirected {
		fmt.Fprintf(a.out, "(wrapped around to page %d of %d)\n", p.Entry.Number, p.PostCount)
	}
	a.printEntry(p.Entry)
}

// Interview runs the question and answer loop. "/done [YYYY-MM-DD]" turns
// the conversation into a page, "/cancel" discards it. A failed /done keeps
// the conversation, so it can be retried.
func (a *App) Interview(ctx context.Context) error {
	startCtx, cancel := a.generationContext(ctx)
	question, err := a.diaryService.StartInterview(startCtx)
	cancel()
	if err != nil && !errors.Is(err, services.ErrInterviewActive) {
		return err
	}
	if errors.Is(err, services.ErrInterviewActive) {
		question = "Let's continue. Anything else?"
	}

	fmt.Fprintln(a.out, "Type your answers. /done [YYYY-MM-DD] finishes the page, /cancel discards it.")

	for {
		answer, err := getSimpleText(a.reader, question, a.out)
		if err != nil {
			return err
		}

		switch {
		case answer == "":
			continue

		case answer == "/cancel":
			cctx, cancel := a.requestContext(ctx)
			err := a.diaryService.CancelInterview(cctx)
			cancel()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Interview discarded")
			return nil

		case strings.HasPrefix(answer, "/done"):
			date := strings.TrimSpace(strings.TrimPrefix(answer, "/done"))
			fmt.Fprintln(a.out, "Writing your page and painting the picture...")

			fctx, cancel := a.generationContext(ctx)
			e, err := a.diaryService.FinishInterview(fctx, "", date)
			cancel()
			if err != nil {
				fmt.Fprintf(a.out, "Could not finish the page: %s\nTry /done again or /cancel.\n", err)
				continue
			}
			a.printEntry(e)
			return nil

		default:
			actx, cancel := a.generationContext(ctx)
			next, err := a.diaryService.Answer(actx, answer)
			cancel()
			if err != nil {
				fmt.Fprintf(a.out, "Could not get the next question: %s\n", err)
				continue
			}
			question = next
		}
	}
}

// Write creates a page from text typed by the user.
func (a *App) Write(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title (empty to let the diary pick one)", a.out)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "What happened today?", a.out)
	if err != nil {
		return err
	}
	if body == "" {
		return errors.New("empty page discarded")
	}
	date, err := getSimpleText(a.reader, "Date YYYY-MM-DD (empty for today)", a.out)
	if err != nil {
		return err
	}

	gctx, cancel := a.generationContext(ctx)
	defer cancel()

	e, err := a.diaryService.Write(gctx, title, body, date)
	if err != nil {
		return err
	}
	a.printEntry(e)
	return nil
}

func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	entries, err := a.diaryService.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "The diary is empty")
		return nil
	}
	for _, e := range entries {
		mark := " "
		if e.HasImage() {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%4d %s %s  %s\n", e.Number, mark, e.Date, e.Title)
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	n, err := parseNumber(args, 0, "show [n]")
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	p, err := a.diaryService.Show(ctx, n)
	if err != nil {
		return err
	}
	a.printPage(p)
	return nil
}

func (a *App) Next(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	p, err := a.diaryService.Next(ctx)
	if err != nil {
		return err
	}
	a.printPage(p)
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	p, err := a.diaryService.Prev(ctx)
	if err != nil {
		return err
	}
	a.printPage(p)
	return nil
}

// Edit shows page n and replaces its title and body. Empty input keeps the
// old value.
func (a *App) Edit(ctx context.Context, args []string) error {
	n, err := parseNumber(args, -1, "edit <n>")
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: edit <n>", errUsage)
	}

	rctx, cancel := a.requestContext(ctx)
	p, err := a.diaryService.Show(rctx, n)
	cancel()
	if err != nil {
		return err
	}
	a.printEntry(p.Entry)

	title, err := getSimpleText(a.reader, "New title (empty keeps the old one)", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = p.Entry.Title
	}
	body, err := getMultiline(a.reader, "New text (empty keeps the old one)", a.out)
	if err != nil {
		return err
	}
	if body == "" {
		body = p.Entry.Body
	}

	rctx, cancel = a.requestContext(ctx)
	defer cancel()
	if err := a.diaryService.Edit(rctx, n, title, body); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved")
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	n, err := parseNumber(args, -1, "delete <n>")
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: delete <n>", errUsage)
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete page %d? (y/N)", n), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.diaryService.Delete(ctx, n); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Page %d deleted\n", n)
	return nil
}

func (a *App) Export(ctx context.Context, args []string) error {
	dirName := a.config.ExportDir
	if len(args) > 0 {
		dirName = args[0]
	}

	ctx, cancel := a.generationContext(ctx)
	defer cancel()

	dir, n, err := a.diaryService.Export(ctx, dirName)
	if err != nil {
		if n > 0 {
			fmt.Fprintf(a.out, "Exported %d pages to %s before failing\n", n, dir)
		}
		return err
	}
	fmt.Fprintf(a.out, "Exported %d pages to %s\n", n, dir)
	return nil
}
