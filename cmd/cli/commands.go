package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	pb "github.com/and161185/flashdeck/gen/go/flashdeck/v1"
	"github.com/and161185/flashdeck/internal/convert"
	"github.com/and161185/flashdeck/internal/generation"
)

func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		{Name: "ls", Usage: "list a folder (root by default)", ArgsUsage: "[folder-id]", Flags: []cli.Flag{jsonFlag()}, Action: a.cmdLs},
		{Name: "path", Usage: "show the breadcrumb of a folder", ArgsUsage: "<folder-id>", Action: a.cmdPath},
		{
			Name: "mkdir", Usage: "create a folder", ArgsUsage: "<name>",
			Flags:  []cli.Flag{&cli.StringFlag{Name: "parent", Usage: "parent folder id (root if empty)"}},
			Action: a.cmdMkdir,
		},
		{Name: "rm-folder", Usage: "delete an empty folder", ArgsUsage: "<folder-id>", Action: a.cmdRmFolder},
		{Name: "rm-deck", Usage: "delete a deck", ArgsUsage: "<deck-id>", Action: a.cmdRmDeck},
		{Name: "rename-folder", Usage: "rename a folder", ArgsUsage: "<folder-id> <name>", Action: a.cmdRenameFolder},
		{Name: "rename-deck", Usage: "change a deck topic", ArgsUsage: "<deck-id> <topic>", Action: a.cmdRenameDeck},
		{
			Name: "fav", Usage: "toggle the favorite flag", ArgsUsage: "<id>",
			Flags:  []cli.Flag{&cli.StringFlag{Name: "kind", Value: "deck", Usage: "folder or deck"}},
			Action: a.cmdFav,
		},
		{
			Name: "generate", Usage: "generate a deck from a topic or a document and save it",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "topic", Usage: "topic to study"},
				&cli.IntFlag{Name: "cards", Value: 10, Usage: "number of cards (1-25)"},
				&cli.StringFlag{Name: "file", Usage: "source document (pdf, txt, md, docx, pptx; '-' = stdin)"},
				&cli.StringFlag{Name: "folder", Usage: "target folder id (accounts only)"},
			},
			Action: a.cmdGenerate,
		},
		{Name: "study", Usage: "study a deck until every card is mastered", ArgsUsage: "<deck-id>", Action: a.cmdStudy},
		{
			Name:  "guest",
			Usage: "manage decks stored on this device",
			Commands: []*cli.Command{
				{Name: "ls", Usage: "list guest decks, newest first", Flags: []cli.Flag{jsonFlag()}, Action: a.cmdGuestLs},
				{Name: "rm", Usage: "delete a guest deck", ArgsUsage: "<deck-id>", Action: a.cmdGuestRm},
			},
		},
	}
}

func jsonFlag() cli.Flag { return &cli.BoolFlag{Name: "json", Usage: "print JSON"} }

// arg returns the i-th positional argument or a usage error.
func arg(c *cli.Command, i int, name string) (string, error) {
	v := strings.TrimSpace(c.Args().Get(i))
	if v == "" {
		return "", fmt.Errorf("%s: missing <%s>", c.Name, name)
	}
	return v, nil
}

func star(fav bool) string {
	if fav {
		return "*"
	}
	return " "
}

func (a *app) cmdLs(ctx context.Context, c *cli.Command) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cl, done, err := a.account(ctx)
	if err != nil {
		return err
	}
	defer done()

	out, err := cl.ListChildren(ctx, &pb.ListChildrenRequest{FolderId: c.Args().First()})
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return a.printProto(out)
	}
	if len(out.GetFolders()) == 0 && len(out.GetDecks()) == 0 {
		fmt.Fprintln(a.out, "(empty)")
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, f := range out.GetFolders() {
		fmt.Fprintf(w, "%s\tfolder\t%s/\t%s\n", star(f.GetIsFavorite()), f.GetName(), f.GetId())
	}
	for _, d := range out.GetDecks() {
		fmt.Fprintf(w, "%s\tdeck\t%s (%d)\t%s\n", star(d.GetIsFavorite()), d.GetTopic(), d.GetCardCount(), d.GetId())
	}
	return w.Flush()
}

func (a *app) cmdPath(ctx context.Context, c *cli.Command) error {
	id, err := arg(c, 0, "folder-id")
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cl, done, err := a.account(ctx)
	if err != nil {
		return err
	}
	defer done()

	out, err := cl.ResolvePath(ctx, &pb.ResolvePathRequest{FolderId: id})
	if err != nil {
		return err
	}
	parts := []string{"Root"}
	for _, f := range out.GetPath() {
		parts = append(parts, f.GetName())
	}
	fmt.Fprintln(a.out, strings.Join(parts, " / "))
	return nil
}

func (a *app) cmdMkdir(ctx context.Context, c *cli.Command) error {
	name, err := arg(c, 0, "name")
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cl, done, err := a.account(ctx)
	if err != nil {
		return err
	}
	defer done()

	out, err := cl.CreateFolder(ctx, &pb.CreateFolderRequest{Name: name, ParentId: c.String("parent")})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out.GetFolder().GetId())
	return nil
}

// byID runs a single-id account call and prints "ok".
func (a *app) byID(ctx context.Context, c *cli.Command, call func(context.Context, pb.DecksClient, string) error) error {
	id, err := arg(c, 0, "id")
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cl, done, err := a.account(ctx)
	if err != nil {
		return err
	}
	defer done()
	if err := call(ctx, cl, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) cmdRmFolder(ctx context.Context, c *cli.Command) error {
	return a.byID(ctx, c, func(ctx context.Context, cl pb.DecksClient, id string) error {
		_, err := cl.DeleteFolder(ctx, &pb.DeleteRequest{Id: id})
		return err
	})
}

func (a *app) cmdRmDeck(ctx context.Context, c *cli.Command) error {
	return a.byID(ctx, c, func(ctx context.Context, cl pb.DecksClient, id string) error {
		_, err := cl.DeleteDeck(ctx, &pb.DeleteRequest{Id: id})
		return err
	})
}

func (a *app) cmdRenameFolder(ctx context.Context, c *cli.Command) error {
	name, err := arg(c, 1, "name")
	if err != nil {
		return err
	}
	return a.byID(ctx, c, func(ctx context.Context, cl pb.DecksClient, id string) error {
		_, err := cl.RenameFolder(ctx, &pb.RenameRequest{Id: id, Name: name})
		return err
	})
}

func (a *app) cmdRenameDeck(ctx context.Context, c *cli.Command) error {
	topic, err := arg(c, 1, "topic")
	if err != nil {
		return err
	}
	return a.byID(ctx, c, func(ctx context.Context, cl pb.DecksClient, id string) error {
		_, err := cl.RenameDeck(ctx, &pb.RenameRequest{Id: id, Name: topic})
		return err
	})
}

func (a *app) cmdFav(ctx context.Context, c *cli.Command) error {
	id, err := arg(c, 0, "id")
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cl, done, err := a.account(ctx)
	if err != nil {
		return err
	}
	defer done()

	out, err := cl.ToggleFavorite(ctx, &pb.ToggleFavoriteRequest{Id: id, Kind: c.String("kind")})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "favorite=%t\n", out.GetIsFavorite())
	return nil
}

// cmdGenerate asks the server for cards and saves them: into the account
// workspace with a token, into the local guest store otherwise.
func (a *app) cmdGenerate(ctx context.Context, c *cli.Command) error {
	req := generation.Request{Topic: c.String("topic"), NumCards: int(c.Int("cards"))}
	if p := c.String("file"); p != "" {
		doc, err := readDocument(p)
		if err != nil {
			return err
		}
		req.Document = doc
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if a.isGuest() && c.String("folder") != "" {
		return errors.New("generate: --folder needs an account token")
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cl, done, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer done()

	wire := &pb.GenerateCardsRequest{Topic: req.Topic, NumCards: int32(req.NumCards)}
	if d := req.Document; d != nil {
		wire.DocumentName, wire.MimeType, wire.Document = d.Name, d.MIMEType, d.Data
	}
	start := time.Now()
	gen, err := cl.GenerateCards(ctx, wire)
	if err != nil {
		return err
	}
	a.log.Debug("generated",
		zap.Int("cards", len(gen.GetCards())),
		zap.Int32("quota_used", gen.GetQuotaUsed()),
		zap.Duration("dur", time.Since(start)),
	)

	var deckID string
	if a.isGuest() {
		d, err := a.guests.Save(gen.GetTopic(), convert.FromProtoCards(gen.GetCards()))
		if err != nil {
			return err
		}
		deckID = d.ID
	} else {
		out, err := cl.CreateDeck(ctx, &pb.CreateDeckRequest{Topic: gen.GetTopic(), Cards: gen.GetCards(), FolderId: c.String("folder")})
		if err != nil {
			return err
		}
		deckID = out.GetDeck().GetId()
	}
	fmt.Fprintf(a.out, "%s\t%s (%d cards)\n", deckID, gen.GetTopic(), len(gen.GetCards()))
	fmt.Fprintf(a.out, "quota: %d used, window resets %s\n", gen.GetQuotaUsed(), gen.GetQuotaResetsAt().AsTime().Local().Format(time.DateTime))
	return nil
}

func (a *app) cmdStudy(ctx context.Context, c *cli.Command) error {
	id, err := arg(c, 0, "deck-id")
	if err != nil {
		return err
	}
	if a.isGuest() {
		d, err := a.guests.Get(id)
		if err != nil {
			return err
		}
		return a.study(d.Topic, d.Cards)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cl, done, err := a.account(ctx)
	if err != nil {
		return err
	}
	defer done()
	out, err := cl.GetDeck(ctx, &pb.GetDeckRequest{Id: id})
	if err != nil {
		return err
	}
	return a.study(out.GetDeck().GetTopic(), convert.FromProtoCards(out.GetDeck().GetCards()))
}

func (a *app) cmdGuestLs(_ context.Context, c *cli.Command) error {
	decks, err := a.guests.List()
	if err != nil {
		return err
	}
	if c.Bool("json") {
		a.printJSON(decks)
		return nil
	}
	if len(decks) == 0 {
		fmt.Fprintln(a.out, "(empty)")
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, d := range decks {
		fmt.Fprintf(w, "%s\t%s (%d)\t%s\n", d.ID, d.Topic, len(d.Cards), d.CreatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}

func (a *app) cmdGuestRm(_ context.Context, c *cli.Command) error {
	id, err := arg(c, 0, "deck-id")
	if err != nil {
		return err
	}
	if err := a.guests.Delete(id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}
