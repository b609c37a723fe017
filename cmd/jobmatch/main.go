package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"resume-match/internal/app"
	"resume-match/internal/config"
	"resume-match/internal/database/migration"
	"resume-match/internal/database/seeder"
	"resume-match/internal/document"
	"resume-match/internal/domain/resume"
	"resume-match/internal/pkg/logging"
	"resume-match/internal/pkg/workerpool"
	"resume-match/internal/usecase"
)

const usage = `usage: jobmatch <command> [flags]

commands:
  parse    <file>...       parse résumés (.pdf, .docx, .txt, .md)
  import   <file.csv>      import a job export into the store
  match                    rank jobs against a résumé
  apps     list|add|update|delete
  seed                     load the sample job corpus
  migrate                  apply pending migrations and print the schema version
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewDevelopment(cfg.Log.Level)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, cmd string, args []string, out io.Writer) error {
	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	switch cmd {
	case "parse":
		return runParse(ctx, c, args, out)
	case "import":
		return runImport(ctx, c, args, out)
	case "match":
		return runMatch(ctx, c, args, out)
	case "apps":
		return runApps(ctx, c, args, out)
	case "seed":
		return seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}.Run(ctx, c.DB)
	case "migrate":
		v, err := migration.Runner{Dialect: c.DB.Dialect(), Logger: logger}.Version(ctx, c.DB.SQLDB())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "schema version %d (%s)\n", v, c.DB.Dialect())
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runParse(ctx context.Context, c *app.Container, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	save := fs.Bool("save", false, "store the parsed résumés")
	asJSON := fs.Bool("json", false, "print profiles as JSON")
	workers := fs.Int("workers", 4, "files parsed concurrently")
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("parse needs at least one file")
	}

	records := make([]resume.Record, len(paths))
	errs := workerpool.Each(ctx, *workers, len(paths), func(ctx context.Context, i int) error {
		text, err := readDocument(paths[i])
		if err != nil {
			return err
		}
		name := filepath.Base(paths[i])
		if *save {
			records[i], err = c.Resumes.ParseAndSave(ctx, text, name)
			return err
		}
		records[i].Profile, err = c.Resumes.Parse(ctx, text, name)
		return err
	})

	failed := 0
	for i, rec := range records {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", paths[i], errs[i])
			continue
		}
		if err := printProfile(out, rec, *asJSON); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

func printProfile(out io.Writer, rec resume.Record, asJSON bool) error {
	p := rec.Profile
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "File\t%s\n", p.SourceFile)
	if rec.ID > 0 {
		fmt.Fprintf(tw, "ID\t%d\n", rec.ID)
	}
	fmt.Fprintf(tw, "Name\t%s\n", p.Name)
	fmt.Fprintf(tw, "Email\t%s\n", p.Email)
	fmt.Fprintf(tw, "Phone\t%s\n", p.Phone)
	fmt.Fprintf(tw, "Skills\t%s\n", strings.Join(p.Skills, ", "))
	for _, e := range p.Experience {
		fmt.Fprintf(tw, "Experience\t%s | %s | %s\n", e.Title, e.Company, e.Duration)
	}
	for _, e := range p.Education {
		fmt.Fprintf(tw, "Education\t%s | %s | %s\n", e.Degree, e.Institution, e.Duration)
	}
	fmt.Fprintln(tw)
	return tw.Flush()
}

func runImport(ctx context.Context, c *app.Container, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("import needs exactly one CSV file")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := c.Jobs.ImportCSV(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "imported %d jobs, skipped %d rows\n", res.Imported, res.Skipped)
	return nil
}

func runMatch(ctx context.Context, c *app.Container, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	resumeID := fs.Int64("resume-id", 0, "rank against a stored résumé")
	file := fs.String("file", "", "rank against a résumé document")
	corpusPath := fs.String("corpus", "", "rank a CSV job export instead of stored jobs")
	top := fs.Int("top", 0, "number of matches (0 uses MATCH_TOP_N, negative ranks all)")
	noWriteBack := fs.Bool("no-write-back", false, "do not store match scores")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := usecase.MatchParams{TopN: *top, SkipWriteBack: *noWriteBack}
	if *corpusPath != "" {
		f, err := os.Open(*corpusPath)
		if err != nil {
			return err
		}
		params.Corpus, err = usecase.LoadCorpus(f)
		_ = f.Close()
		if err != nil {
			return err
		}
	}

	var (
		res usecase.MatchOutcome
		err error
	)
	switch {
	case *resumeID > 0:
		res, err = c.Matching.MatchResume(ctx, *resumeID, params)
	case *file != "":
		text, rerr := readDocument(*file)
		if rerr != nil {
			return rerr
		}
		res, err = c.Matching.MatchText(ctx, text, params)
	default:
		return errors.New("match needs -resume-id or -file")
	}
	if err != nil {
		return err
	}

	if res.Result.Signal != "" {
		fmt.Fprintf(out, "no matches: %s\n", res.Result.Signal)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tID\tTITLE\tCOMPANY\tLOCATION")
	for i, m := range res.Result.Matches {
		id := "-"
		if m.Posting.Stored() {
			id = fmt.Sprint(m.Posting.ID)
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%s\t%s\t%s\t%s\n", i+1, m.Score, id, m.Posting.Title, m.Posting.Company, m.Posting.Location)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if res.WriteBack.Failed > 0 {
		fmt.Fprintf(out, "warning: %d of %d scores were not written back\n", res.WriteBack.Failed, res.WriteBack.Attempted)
	}
	return nil
}

func runApps(ctx context.Context, c *app.Container, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("apps needs one of list, add, update, delete")
	}
	sub, args := args[0], args[1:]
	fs := flag.NewFlagSet("apps "+sub, flag.ContinueOnError)

	switch sub {
	case "list":
		status := fs.String("status", "", "only show this status")
		if err := fs.Parse(args); err != nil {
			return err
		}
		recs, err := c.Tracker.List(ctx, *status)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tLOCATION\tSTATUS\tAPPLIED\tFOLLOW-UP")
		for _, r := range recs {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.JobTitle, r.Company, r.Location, r.Status, r.AppliedDate, r.FollowUpDate)
		}
		return tw.Flush()

	case "add":
		var p usecase.RecordApplicationParams
		fs.StringVar(&p.JobTitle, "title", "", "job title")
		fs.StringVar(&p.Company, "company", "", "company")
		fs.StringVar(&p.Location, "location", "", "location")
		fs.StringVar(&p.JobLink, "link", "", "job link")
		fs.StringVar(&p.Status, "status", "", "initial status")
		fs.StringVar(&p.AppliedDate, "applied", "", "applied date (YYYY-MM-DD)")
		fs.StringVar(&p.FollowUpDate, "follow-up", "", "follow-up date (YYYY-MM-DD)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		rec, err := c.Tracker.Record(ctx, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "recorded application %d, follow up on %s\n", rec.ID, rec.FollowUpDate)
		return nil

	case "update":
		id := fs.Int64("id", 0, "application id")
		status := fs.String("status", "", "new status")
		if err := fs.Parse(args); err != nil {
			return err
		}
		ok, err := c.Tracker.UpdateStatus(ctx, *id, *status)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("application %d not found", *id)
		}
		fmt.Fprintf(out, "application %d is now %s\n", *id, *status)
		return nil

	case "delete":
		id := fs.Int64("id", 0, "application id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		ok, err := c.Tracker.Delete(ctx, *id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("application %d not found", *id)
		}
		fmt.Fprintf(out, "deleted application %d\n", *id)
		return nil
	}
	return fmt.Errorf("unknown apps command %q", sub)
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return document.ExtractText(filepath.Base(path), data)
}
