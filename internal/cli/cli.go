// Package cli provides the guestlist command line interface.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/guestlist/guest"
	"github.com/katalvlaran/guestlist/internal/config"
	"github.com/katalvlaran/guestlist/internal/logging"
	"github.com/katalvlaran/guestlist/invite"
	"github.com/katalvlaran/guestlist/roster"
)

const (
	rootUse              = "guestlist"
	rootShortDescription = "build wedding invitation lists from a friendship graph"
	rootLongDescription  = `guestlist reads a graph of people and their friends and lists who to invite.
Best friends are always invited first; everyone else follows in order of how
many handshakes separate them from a best friend, alphabetically within a step.`

	inviteUse              = "invite [graph]"
	inviteShortDescription = "print the invitation list"
	inviteUsageExample     = `  # Everyone reachable, as text
  guestlist invite people.yaml

  # Women within two handshakes of a best friend, as JSON
  guestlist invite people.yaml --filter female --max-level 3 --format json`

	compareUse              = "compare [graph]"
	compareShortDescription = "print the list for every filter side by side"

	configFlagName   = "config"
	verboseFlagName  = "verbose"
	graphFlagName    = "graph"
	filterFlagName   = "filter"
	maxLevelFlagName = "max-level"
	limitFlagName    = "limit"
	formatFlagName   = "format"

	configFlagDescription   = "configuration file (default ./" + config.ConfigFileName + ")"
	verboseFlagDescription  = "log every visited person"
	graphFlagDescription    = "guest graph file (.yaml, .yml or .json)"
	filterFlagDescription   = "who may be invited: all, male or female"
	maxLevelFlagDescription = "last level to visit; 1 invites best friends only (default unbounded)"
	limitFlagDescription    = "stop after this many invitees (0 = no limit)"
	formatFlagDescription   = "output format: text or json"

	errorMissingGraph = "no guest graph given: pass a path or set " + graphFlagName
)

type contextKey struct{}

// session carries what PersistentPreRunE prepared to the subcommands.
type session struct {
	config config.Configuration
	logger *zap.Logger
}

// Execute runs the guestlist application.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the root Cobra command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			reader, err := config.New(config.LoadOptions{ExplicitFilePath: configPath})
			if err != nil {
				return err
			}
			if err := config.BindFlags(reader, command.Flags()); err != nil {
				return err
			}
			if len(arguments) > 0 {
				reader.Set(config.KeyGraph, arguments[0])
			}
			resolved, err := config.Decode(reader)
			if err != nil {
				return err
			}
			logger, err := logging.NewApplicationLogger(resolved.Verbose)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			command.SetContext(context.WithValue(command.Context(), contextKey{}, &session{config: resolved, logger: logger}))
			return nil
		},
		PersistentPostRun: func(command *cobra.Command, arguments []string) {
			if rt, ok := command.Context().Value(contextKey{}).(*session); ok {
				_ = rt.logger.Sync()
			}
		},
	}
	rootCommand.PersistentFlags().StringVar(&configPath, configFlagName, "", configFlagDescription)
	rootCommand.PersistentFlags().Bool(verboseFlagName, false, verboseFlagDescription)
	rootCommand.AddCommand(createInviteCommand(), createCompareCommand(), createGenerateCommand())
	return rootCommand
}

func addTraversalFlags(command *cobra.Command) {
	command.Flags().String(graphFlagName, "", graphFlagDescription)
	command.Flags().Int(maxLevelFlagName, 0, maxLevelFlagDescription)
	command.Flags().Int(limitFlagName, 0, limitFlagDescription)
	command.Flags().String(formatFlagName, config.OutputText, formatFlagDescription)
}

func createInviteCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     inviteUse,
		Short:   inviteShortDescription,
		Example: inviteUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rt := command.Context().Value(contextKey{}).(*session)
			people, err := loadGraph(rt)
			if err != nil {
				return err
			}
			filter, err := guest.ParseFilter(rt.config.Filter)
			if err != nil {
				return err
			}
			list, err := buildList(command.Context(), people, filter, rt.config, rt.logger.With(zap.String("filter", rt.config.Filter)))
			if err != nil {
				return err
			}
			return render(command.OutOrStdout(), rt.config.Format, list)
		},
	}
	addTraversalFlags(command)
	command.Flags().String(filterFlagName, guest.FilterAll, filterFlagDescription)
	return command
}

func createCompareCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   compareUse,
		Short: compareShortDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rt := command.Context().Value(contextKey{}).(*session)
			people, err := loadGraph(rt)
			if err != nil {
				return err
			}
			lists, err := compareFilters(command.Context(), people, rt.config, rt.logger)
			if err != nil {
				return err
			}
			return renderComparison(command.OutOrStdout(), rt.config.Format, lists)
		},
	}
	addTraversalFlags(command)
	return command
}

func loadGraph(rt *session) ([]*guest.Person, error) {
	if rt.config.Graph == "" {
		return nil, errors.New(errorMissingGraph)
	}
	people, err := roster.Load(rt.config.Graph)
	if err != nil {
		return nil, err
	}
	rt.logger.Debug("graph loaded", zap.String("path", rt.config.Graph), zap.Int("people", len(people)))
	return people, nil
}

// buildList runs one engine to completion or to the configured limit.
// ctx is checked between pulls so a failing sibling in compare stops the rest.
func buildList(ctx context.Context, people []*guest.Person, filter guest.Filter, settings config.Configuration, logger *zap.Logger) ([]*guest.Person, error) {
	opts := []invite.Option{
		invite.WithOnVisit(func(p *guest.Person, level int, accepted bool) {
			logger.Debug("visit", zap.String("name", p.Name), zap.Int("level", level), zap.Bool("accepted", accepted))
		}),
		invite.WithOnLevelUp(func(level, promoted int) {
			logger.Debug("level up", zap.Int("level", level), zap.Int("promoted", promoted))
		}),
	}
	if settings.MaxLevel != nil {
		opts = append(opts, invite.WithMaxLevel(*settings.MaxLevel))
	}
	it, err := invite.New(people, filter, opts...)
	if err != nil {
		return nil, err
	}

	var list []*guest.Person
	for p, err := range it.All() {
		if err != nil {
			return nil, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		list = append(list, p)
		if settings.Limit > 0 && len(list) == settings.Limit {
			break
		}
	}
	logger.Debug("list complete", zap.Int("invitees", len(list)), zap.Bool("exhausted", it.Done()))
	return list, nil
}

type comparison struct {
	Filter string
	People []*guest.Person
}

// compareFilters runs one independent engine per filter concurrently.
// Persons are shared read-only between the engines.
func compareFilters(ctx context.Context, people []*guest.Person, settings config.Configuration, logger *zap.Logger) ([]comparison, error) {
	names := guest.FilterNames()
	results := make([]comparison, len(names))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, name := range names {
		group.Go(func() error {
			filter, err := guest.ParseFilter(name)
			if err != nil {
				return err
			}
			list, err := buildList(groupCtx, people, filter, settings, logger.With(zap.String("filter", name)))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = comparison{Filter: name, People: list}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type personView struct {
	Name   string       `json:"name"`
	Gender guest.Gender `json:"gender,omitempty"`
	Best   bool         `json:"best,omitempty"`
}

func views(list []*guest.Person) []personView {
	out := make([]personView, len(list))
	for i, p := range list {
		out[i] = personView{Name: p.Name, Gender: p.Gender, Best: p.Best}
	}
	return out
}

func render(w io.Writer, format string, list []*guest.Person) error {
	if format == config.OutputJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(views(list))
	}
	for i, p := range list {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, p.Name); err != nil {
			return err
		}
	}
	return nil
}

func renderComparison(w io.Writer, format string, lists []comparison) error {
	if format == config.OutputJSON {
		byFilter := make(map[string][]personView, len(lists))
		for _, c := range lists {
			byFilter[c.Filter] = views(c.People)
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(byFilter)
	}
	for _, c := range lists {
		if _, err := fmt.Fprintf(w, "[%s]\n", c.Filter); err != nil {
			return err
		}
		if err := render(w, config.OutputText, c.People); err != nil {
			return err
		}
	}
	return nil
}
