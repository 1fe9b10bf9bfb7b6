package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	postpress "github.com/alnah/go-postpress"
	"github.com/alnah/go-postpress/internal/source"
)

const dateLayout = "2006-01-02"

// runList prints the visible posts, most recent first.
func runList(ctx context.Context, svc *postpress.Service, stdout io.Writer) error {
	posts, err := svc.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{
			p.ID,
			p.Title,
			p.Date.Format(dateLayout),
			p.Category,
			strings.Join(p.Tags, ", "),
			strconv.Itoa(p.ReadingTime),
		})
	}

	fmt.Fprintln(stdout, renderTable(
		[]string{"ID", "TITLE", "DATE", "CATEGORY", "TAGS", "MIN"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
	return nil
}

// runShow prints one post's rendered HTML to stdout.
func runShow(ctx context.Context, svc *postpress.Service, stdout io.Writer, operands []string) error {
	id, err := requireID(operands)
	if err != nil {
		return err
	}

	post, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, post.ContentHTML)
	return nil
}

// runTags prints every tag with its visible-post count.
func runTags(ctx context.Context, svc *postpress.Service, stdout io.Writer) error {
	tags, err := svc.Tags(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		posts, err := svc.PostsByTag(ctx, tag)
		if err != nil {
			return err
		}
		rows = append(rows, []string{tag, strconv.Itoa(len(posts))})
	}

	fmt.Fprintln(stdout, renderTable(
		[]string{"TAG", "POSTS"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	return nil
}

// runCategories prints the category list.
func runCategories(ctx context.Context, svc *postpress.Service, stdout io.Writer) error {
	categories, err := svc.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Fprintln(stdout, c)
	}
	return nil
}

// runRelated prints the posts most relevant to the given id.
func runRelated(ctx context.Context, svc *postpress.Service, stdout io.Writer, operands []string, limit int) error {
	id, err := requireID(operands)
	if err != nil {
		return err
	}

	posts, err := svc.Related(ctx, id, limit)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{p.ID, p.Title, p.Category, strings.Join(p.Tags, ", ")})
	}

	fmt.Fprintln(stdout, renderTable(
		[]string{"ID", "TITLE", "CATEGORY", "TAGS"},
		rows,
		nil,
	))
	return nil
}

// runTOC prints one post's outline, indented by heading depth.
func runTOC(ctx context.Context, svc *postpress.Service, stdout io.Writer, operands []string) error {
	id, err := requireID(operands)
	if err != nil {
		return err
	}

	post, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	headings, err := svc.TableOfContents(post.ContentHTML)
	if err != nil {
		return err
	}

	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-2)
		fmt.Fprintf(stdout, "%s%s (#%s)\n", indent, h.Text, h.ID)
	}
	return nil
}

// runWatch reports content-directory changes until interrupted. Each change
// triggers a fresh scan, demonstrating the no-cache recompute model.
func runWatch(ctx context.Context, svc *postpress.Service, dir string, stdout io.Writer, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := source.NewWatcher(dir, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	go func() { _ = watcher.Run(ctx) }()

	fmt.Fprintf(stdout, "watching %s\n", dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			posts, err := svc.List(ctx)
			if err != nil {
				logger.Warn("rescan failed", "error", err)
				continue
			}
			fmt.Fprintf(stdout, "%s changed, %d visible posts\n", path, len(posts))
		}
	}
}
