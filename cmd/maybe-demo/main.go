// Package main is a small consumer of the maybe library: it reads a roster
// whose fields are optional and normalizes it through the combinators.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/niclas-ahden/roc-maybe"
	"github.com/niclas-ahden/roc-maybe/option"
	"github.com/niclas-ahden/roc-maybe/result"
)

type rosterFile struct {
	Team    string         `yaml:"team"`
	Members []memberRecord `yaml:"members"`
}

type memberRecord struct {
	Name  string                `yaml:"name"`
	ID    option.Option[string] `yaml:"id"`
	Email option.Option[string] `yaml:"email"`
	Age   option.Option[int]    `yaml:"age"`
}

func main() {
	app := &cli.Command{
		Name:  "maybe-demo",
		Usage: "normalize a roster with optional fields through the maybe combinators",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Value: "roster.yaml",
				Usage: "path of the roster file",
			},
			&cli.UintFlag{
				Name:  "min-age",
				Value: 18,
				Usage: "minimum age for the contact list",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log each member as it is processed",
			},
		},
		Action: runRoster,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runRoster(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	data, err := os.ReadFile(cmd.String("input"))
	if err != nil {
		return fmt.Errorf("failed to read roster: %w", err)
	}

	var roster rosterFile
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return fmt.Errorf("failed to decode roster: %w", err)
	}

	team, err := maybe.ToResult(
		maybe.Map(maybe.FromOk(roster.Team, roster.Team != ""), strings.TrimSpace),
		errors.New("roster has no team name"),
	).Get()
	if err != nil {
		return err
	}

	minAge := int(cmd.Uint("min-age"))
	contacts := make([]maybe.Maybe[string], 0, len(roster.Members))
	memberIDs := make([]maybe.Maybe[uuid.UUID], 0, len(roster.Members))

	for _, member := range roster.Members {
		age := maybe.FromOption(member.Age)
		email := maybe.Map(maybe.FromOption(member.Email), strings.ToLower)

		parsed := maybe.MapTryCtx(ctx, maybe.FromOption(member.ID),
			func(ctx context.Context, raw string) result.Result[uuid.UUID] {
				logger.DebugContext(ctx, "parsing member id", "member", member.Name, "raw", raw)
				return result.Of(uuid.Parse(raw))
			})
		id, err := parsed.Get()
		if err != nil {
			logger.Warn("skipping malformed member id", "member", member.Name, "err", err)
		}
		memberIDs = append(memberIDs, id)

		ofAge := age.Filter(func(years int) bool { return years >= minAge })
		contact := maybe.Combine2(email, ofAge, func(addr string, years int) string {
			return fmt.Sprintf("%s (%d)", addr, years)
		})
		contacts = append(contacts, contact)

		logger.Debug("member processed",
			"name", member.Name,
			"email", email.WithDefault("<none>"),
			"age", age,
			"contact", contact,
		)
	}

	reachable := maybe.KeepJusts(contacts)
	validIDs := maybe.KeepJusts(memberIDs)

	ages := maybe.Traverse(roster.Members, func(m memberRecord) maybe.Maybe[int] {
		return maybe.FromOption(m.Age)
	})
	averageAge := maybe.Map(ages, func(all []int) int {
		if len(all) == 0 {
			return 0
		}
		total := 0
		for _, years := range all {
			total += years
		}
		return total / len(all)
	})

	summary := logger.With(
		"team", team,
		"members", len(roster.Members),
		"contactable", len(reachable),
		"valid_ids", len(validIDs),
	)
	averageAge.Match(
		func(avg int) { summary.Info("roster complete", "average_age", avg) },
		func() { summary.Info("roster has members with no age on file") },
	)

	for _, contact := range reachable {
		logger.Info("contact", "entry", contact)
	}
	return nil
}
