package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/app/repositories"
	"github.com/yigit/coursepass/internal/app/services"
	"github.com/yigit/coursepass/internal/bootstrap"
	"github.com/yigit/coursepass/internal/config"
	"github.com/yigit/coursepass/internal/pkg/auth"
	"github.com/yigit/coursepass/internal/seed"
)

var readPasswordFunc = term.ReadPassword // mockable

// RepoOpener connects to storage. The returned func releases the connection.
type RepoOpener func(cfg *config.Config, lgr zerolog.Logger) (*repositories.Repositories, func(), error)

type commandLine struct {
	cfg       *config.Config
	lgr       zerolog.Logger
	out       io.Writer
	openRepos RepoOpener
}

func (c *commandLine) app() *cli.App {
	return &cli.App{
		Name:   "coursepass-admin",
		Usage:  "manage access codes, sessions and demo content",
		Writer: c.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   bootstrap.DefaultConfigPath,
				EnvVars: []string{"CONFIG_PATH"},
				Usage:   "path to the YAML config file",
			},
		},
		Before: func(cCtx *cli.Context) error {
			if c.cfg != nil {
				return nil
			}
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(cCtx.String("config"))
			if err != nil {
				return err
			}
			c.cfg, c.lgr = cfg, lgr
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "create-code",
				Usage:  "create an access code",
				Flags:  createCodeFlags(),
				Action: c.createCode,
			},
			{
				Name:   "list-codes",
				Usage:  "list every access code",
				Action: c.listCodes,
			},
			{
				Name:      "activate-code",
				Usage:     "re-enable an access code",
				ArgsUsage: "ID",
				Action:    func(cCtx *cli.Context) error { return c.setActive(cCtx, true) },
			},
			{
				Name:      "deactivate-code",
				Usage:     "disable an access code, existing sessions stay valid",
				ArgsUsage: "ID",
				Action:    func(cCtx *cli.Context) error { return c.setActive(cCtx, false) },
			},
			{
				Name:   "purge-sessions",
				Usage:  "delete expired sessions",
				Action: c.purgeSessions,
			},
			{
				Name:   "seed",
				Usage:  "create or refresh the default access codes",
				Action: c.seedCodes,
			},
			{
				Name:   "seed-content",
				Usage:  "replace the demo Baserow tables with the GED course content",
				Action: c.seedContent,
			},
			{
				Name:   "hash-password",
				Usage:  "prompt for a password and print its bcrypt hash for ADMIN_PASSWORD_HASH",
				Action: c.hashPassword,
			},
		},
	}
}

func (c *commandLine) run(ctx context.Context, args []string) error {
	return c.app().RunContext(ctx, args)
}

// services opens storage and wires the services used by the commands
func (c *commandLine) services() (*services.Services, func(), error) {
	repos, closeFn, err := c.openRepos(c.cfg, c.lgr)
	if err != nil {
		return nil, nil, err
	}
	svc := services.NewServices(repos, services.Options{
		SessionTTL: c.cfg.SessionTTL(),
		Baserow:    bootstrap.NewBaserowFactory(c.cfg),
		Logger:     c.lgr,
	})
	return svc, closeFn, nil
}

func createCodeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "code", Required: true},
		&cli.StringFlag{Name: "course-id", Required: true},
		&cli.StringFlag{Name: "course-name", Required: true},
		&cli.StringFlag{Name: "expires-at", Usage: "RFC 3339 timestamp"},
		&cli.IntFlag{Name: "usage-limit"},
		&cli.StringFlag{Name: "api-token", EnvVars: []string{"CODE_BASEROW_API_TOKEN"}},
		&cli.StringFlag{Name: "lessons-table"},
		&cli.StringFlag{Name: "flashcards-table"},
		&cli.StringFlag{Name: "tests-table"},
		&cli.StringFlag{Name: "questions-table"},
	}
}

func optionalFlag(cCtx *cli.Context, name string) *string {
	if !cCtx.IsSet(name) {
		return nil
	}
	v := cCtx.String(name)
	return &v
}

func (c *commandLine) createCode(cCtx *cli.Context) error {
	code := &models.AccessCode{
		Code:       cCtx.String("code"),
		CourseID:   cCtx.String("course-id"),
		CourseName: cCtx.String("course-name"),
		IsActive:   true,
		ContentSource: models.ContentSourceFields{
			APIToken:          optionalFlag(cCtx, "api-token"),
			LessonsTableID:    optionalFlag(cCtx, "lessons-table"),
			FlashcardsTableID: optionalFlag(cCtx, "flashcards-table"),
			TestsTableID:      optionalFlag(cCtx, "tests-table"),
			QuestionsTableID:  optionalFlag(cCtx, "questions-table"),
		},
	}
	if cCtx.IsSet("expires-at") {
		t, err := time.Parse(time.RFC3339, cCtx.String("expires-at"))
		if err != nil {
			return fmt.Errorf("invalid --expires-at: %w", err)
		}
		code.ExpiresAt = &t
	}
	if cCtx.IsSet("usage-limit") {
		limit := cCtx.Int("usage-limit")
		code.UsageLimit = &limit
	}

	svc, closeFn, err := c.services()
	if err != nil {
		return err
	}
	defer closeFn()

	created, err := svc.AdminService.CreateAccessCode(cCtx.Context, code)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "created %s (%s) for %s\n", created.Code, created.ID, created.CourseID)
	return nil
}

func (c *commandLine) listCodes(cCtx *cli.Context) error {
	svc, closeFn, err := c.services()
	if err != nil {
		return err
	}
	defer closeFn()

	codes, err := svc.AdminService.ListAccessCodes(cCtx.Context)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tCOURSE\tACTIVE\tUSAGE\tEXPIRES\tCONTENT")
	for _, code := range codes {
		usage := fmt.Sprintf("%d", code.UsageCount)
		if code.UsageLimit != nil {
			usage += fmt.Sprintf("/%d", *code.UsageLimit)
		}
		expires := "-"
		if code.ExpiresAt != nil {
			expires = code.ExpiresAt.UTC().Format(time.RFC3339)
		}
		_, configured := code.ContentSource.Config()
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%s\t%t\n", code.ID, code.Code, code.CourseID, code.IsActive, usage, expires, configured)
	}
	return w.Flush()
}

func (c *commandLine) setActive(cCtx *cli.Context, active bool) error {
	id, err := uuid.Parse(strings.TrimSpace(cCtx.Args().First()))
	if err != nil {
		return fmt.Errorf("an access code ID is required: %w", err)
	}

	svc, closeFn, err := c.services()
	if err != nil {
		return err
	}
	defer closeFn()

	code, err := svc.AdminService.SetAccessCodeActive(cCtx.Context, id, active)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s active=%t\n", code.Code, code.IsActive)
	return nil
}

func (c *commandLine) purgeSessions(cCtx *cli.Context) error {
	svc, closeFn, err := c.services()
	if err != nil {
		return err
	}
	defer closeFn()

	n, err := svc.AccessService.PurgeExpiredSessions(cCtx.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "purged %d expired sessions\n", n)
	return nil
}

func (c *commandLine) seedCodes(cCtx *cli.Context) error {
	svc, closeFn, err := c.services()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := seed.CreateDefaultData(cCtx.Context, svc.AdminService, bootstrap.SeedContentSource(c.cfg), c.lgr); err != nil {
		return err
	}
	for _, d := range seed.DefaultCodes {
		fmt.Fprintf(c.out, "%s -> %s\n", d.Code, d.CourseName)
	}
	return nil
}

func (c *commandLine) seedContent(cCtx *cli.Context) error {
	src := bootstrap.SeedContentSource(c.cfg)
	if src.APIToken == "" {
		return errors.New("SEED_BASEROW_API_TOKEN is required to seed content")
	}

	client := bootstrap.NewBaserowFactory(c.cfg).ForToken(src.APIToken)
	counts, err := seed.SeedContent(cCtx.Context, client, src, c.lgr)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "lessons=%d flashcards=%d tests=%d questions=%d cleared=%d\n",
		counts.Lessons, counts.Flashcards, counts.Tests, counts.Questions, counts.Cleared)
	return nil
}

func (c *commandLine) hashPassword(cCtx *cli.Context) error {
	fmt.Fprint(c.out, "Enter password:")
	pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Fprintln(c.out)
	if err != nil {
		return err
	}
	if len(pwd) == 0 {
		return errors.New("password must not be empty")
	}

	hash, err := auth.HashPassword(string(pwd))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, hash)
	return nil
}
