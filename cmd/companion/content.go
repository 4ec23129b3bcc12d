package main

import (
	"errors"
	"flag"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/tijaniyah/companion/internal/domain/model"
	"github.com/tijaniyah/companion/internal/service"
)

func requireFlag(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("-" + name + " is required")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runFeed(ctx *commandContext, args []string) error {
	fs := newFlagSet("feed")
	limit := fs.Int("limit", 20, "page size")
	cursor := fs.String("cursor", "", "page cursor from a previous call")
	if err := fs.Parse(args); err != nil {
		return err
	}
	page, err := ctx.App.Client.ListPosts(ctx.Ctx, model.ListPostsOptions{Limit: *limit, Cursor: *cursor})
	if err != nil {
		return err
	}
	if err := printPosts(ctx.Out, page.Items); err != nil {
		return err
	}
	if page.NextCursor != "" {
		return writef(ctx.Out, "\nnext page: -cursor %s\n", page.NextCursor)
	}
	return nil
}

func runPost(ctx *commandContext, args []string) error {
	fs := newFlagSet("post")
	content := fs.String("content", "", "post text")
	media := fs.String("media", "", "comma-separated media URLs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("content", *content); err != nil {
		return err
	}
	p, err := ctx.App.Client.CreatePost(ctx.Ctx, model.CreatePostRequest{Content: *content, MediaURLs: splitList(*media)})
	if err != nil {
		return err
	}
	return writef(ctx.Out, "posted %s\n", p.ID)
}

func runComment(ctx *commandContext, args []string) error {
	fs := newFlagSet("comment")
	postID := fs.String("post", "", "post id")
	content := fs.String("content", "", "comment text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := errors.Join(requireFlag("post", *postID), requireFlag("content", *content)); err != nil {
		return err
	}
	c, err := ctx.App.Client.AddComment(ctx.Ctx, *postID, model.CreateCommentRequest{Content: *content})
	if err != nil {
		return err
	}
	return writef(ctx.Out, "commented %s on %s\n", c.ID, *postID)
}

func runLike(ctx *commandContext, args []string) error {
	return likeCommand(ctx, args, true)
}

func runUnlike(ctx *commandContext, args []string) error {
	return likeCommand(ctx, args, false)
}

func likeCommand(ctx *commandContext, args []string, like bool) error {
	fs := newFlagSet("like")
	postID := fs.String("post", "", "post id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("post", *postID); err != nil {
		return err
	}
	if like {
		if err := ctx.App.Client.LikePost(ctx.Ctx, *postID); err != nil {
			return err
		}
		return writef(ctx.Out, "liked %s\n", *postID)
	}
	if err := ctx.App.Client.UnlikePost(ctx.Ctx, *postID); err != nil {
		return err
	}
	return writef(ctx.Out, "unliked %s\n", *postID)
}

func runJournal(ctx *commandContext, _ []string) error {
	list, err := ctx.App.Journal.List(ctx.Ctx)
	if err != nil {
		return err
	}
	if list.Cached {
		if err := writef(ctx.Out, "(offline: showing saved entries)\n"); err != nil {
			return err
		}
	}
	return printJournal(ctx.Out, list.Entries)
}

func runJournalAdd(ctx *commandContext, args []string) error {
	fs := newFlagSet("journal-add")
	var req model.CreateJournalEntryRequest
	fs.StringVar(&req.Title, "title", "", "entry title")
	fs.StringVar(&req.Content, "content", "", "entry text")
	fs.StringVar(&req.Mood, "mood", "", "mood")
	tags := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("content", req.Content); err != nil {
		return err
	}
	req.Tags = splitList(*tags)
	e, err := ctx.App.Journal.Create(ctx.Ctx, req)
	if err != nil {
		return err
	}
	return writef(ctx.Out, "saved %s\n", e.ID)
}

func runJournalEdit(ctx *commandContext, args []string) error {
	fs := newFlagSet("journal-edit")
	id := fs.String("id", "", "entry id")
	title := fs.String("title", "", "entry title")
	content := fs.String("content", "", "entry text")
	mood := fs.String("mood", "", "mood")
	tags := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("id", *id); err != nil {
		return err
	}

	var req model.UpdateJournalEntryRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = title
		case "content":
			req.Content = content
		case "mood":
			req.Mood = mood
		case "tags":
			t := splitList(*tags)
			req.Tags = &t
		}
	})
	e, err := ctx.App.Journal.Update(ctx.Ctx, *id, req)
	if err != nil {
		return err
	}
	return writef(ctx.Out, "updated %s\n", e.ID)
}

func runJournalDelete(ctx *commandContext, args []string) error {
	fs := newFlagSet("journal-delete")
	id := fs.String("id", "", "entry id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("id", *id); err != nil {
		return err
	}
	if err := ctx.App.Journal.Delete(ctx.Ctx, *id); err != nil {
		return err
	}
	return writef(ctx.Out, "deleted %s\n", *id)
}

func runChats(ctx *commandContext, _ []string) error {
	convs, err := ctx.App.Client.ListConversations(ctx.Ctx)
	if err != nil {
		return err
	}
	return printConversations(ctx.Out, convs)
}

func runChatNew(ctx *commandContext, args []string) error {
	fs := newFlagSet("chat-new")
	participants := fs.String("with", "", "comma-separated participant ids")
	title := fs.String("title", "", "conversation title")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ids := splitList(*participants)
	if len(ids) == 0 {
		return errors.New("-with is required")
	}
	c, err := ctx.App.Client.CreateConversation(ctx.Ctx, model.CreateConversationRequest{ParticipantIDs: ids, Title: *title})
	if err != nil {
		return err
	}
	return writef(ctx.Out, "started %s\n", c.ID)
}

func runMessages(ctx *commandContext, args []string) error {
	fs := newFlagSet("messages")
	convID := fs.String("conversation", "", "conversation id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("conversation", *convID); err != nil {
		return err
	}
	msgs, err := ctx.App.Client.ListMessages(ctx.Ctx, *convID)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	if err := writef(w, "TIME\tFROM\tMESSAGE\n"); err != nil {
		return err
	}
	for _, m := range msgs {
		if err := writef(w, "%s\t%s\t%s\n", formatTime(m.CreatedAt), m.SenderID, oneLine(m.Content)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runSend(ctx *commandContext, args []string) error {
	fs := newFlagSet("send")
	convID := fs.String("conversation", "", "conversation id")
	content := fs.String("content", "", "message text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := errors.Join(requireFlag("conversation", *convID), requireFlag("content", *content)); err != nil {
		return err
	}
	m, err := ctx.App.Client.SendMessage(ctx.Ctx, *convID, model.SendMessageRequest{Content: *content})
	if err != nil {
		return err
	}
	return writef(ctx.Out, "sent %s\n", m.ID)
}

func runOverview(ctx *commandContext, _ []string) error {
	ov, err := ctx.App.Overview.Load(ctx.Ctx)
	if err != nil {
		return err
	}
	if err := printState(ctx.Out, ctx.App.Session.State()); err != nil {
		return err
	}

	sections := []struct {
		name  string
		title string
		print func(io.Writer) error
	}{
		{service.SectionFeed, "Community", func(w io.Writer) error { return printPosts(w, ov.Posts) }},
		{service.SectionJournal, "Journal", func(w io.Writer) error { return printJournal(w, ov.Journal.Entries) }},
		{service.SectionChat, "Conversations", func(w io.Writer) error { return printConversations(w, ov.Conversations) }},
	}
	for _, s := range sections {
		if err := writef(ctx.Out, "\n== %s ==\n", s.title); err != nil {
			return err
		}
		if msg, failed := ov.Errors[s.name]; failed {
			if err := writef(ctx.Out, "unavailable: %s\n", msg); err != nil {
				return err
			}
			continue
		}
		if err := s.print(ctx.Out); err != nil {
			return err
		}
	}
	return nil
}

func printPosts(out io.Writer, posts []model.Post) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\tAUTHOR\tLIKES\tCOMMENTS\tCONTENT\n"); err != nil {
		return err
	}
	for _, p := range posts {
		author := p.AuthorName
		if author == "" {
			author = p.AuthorID
		}
		if err := writef(w, "%s\t%s\t%d\t%d\t%s\n", p.ID, author, p.LikeCount, p.CommentCount, oneLine(p.Content)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func printJournal(out io.Writer, entries []model.JournalEntry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\tDATE\tTITLE\tMOOD\n"); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writef(w, "%s\t%s\t%s\t%s\n", e.ID, formatTime(e.CreatedAt), oneLine(e.Title), e.Mood); err != nil {
			return err
		}
	}
	return w.Flush()
}

func printConversations(out io.Writer, convs []model.Conversation) error {
	sorted := append([]model.Conversation(nil), convs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt) })

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\tTITLE\tPARTICIPANTS\tLAST MESSAGE\n"); err != nil {
		return err
	}
	for _, c := range sorted {
		last := ""
		if c.LastMessage != nil {
			last = oneLine(c.LastMessage.Content)
		}
		if err := writef(w, "%s\t%s\t%s\t%s\n", c.ID, c.Title, strings.Join(c.ParticipantIDs, ","), last); err != nil {
			return err
		}
	}
	return w.Flush()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

const maxCellWidth = 60

func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > maxCellWidth {
		return string(r[:maxCellWidth-1]) + "…"
	}
	return s
}
