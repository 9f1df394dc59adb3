package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/guestlist/builder"
	"github.com/katalvlaran/guestlist/roster"
)

const (
	generateUse              = "generate"
	generateShortDescription = "write a synthetic guest graph"
	generateUsageExample     = `  # A reproducible random circle of 200 people, 5% of them best friends
  guestlist generate --shape random --size 200 --probability 0.02 --seed 7 --best-ratio 0.05 > people.yaml

  # A chain as JSON
  guestlist generate --shape path --size 10 --encoding json`

	shapePath     = "path"
	shapeStar     = "star"
	shapeComplete = "complete"
	shapeRandom   = "random"
	shapeIsolated = "isolated"

	shapeFlagName       = "shape"
	sizeFlagName        = "size"
	probabilityFlagName = "probability"
	seedFlagName        = "seed"
	bestRatioFlagName   = "best-ratio"
	oneWayFlagName      = "one-way"
	prefixFlagName      = "prefix"
	encodingFlagName    = "encoding"

	defaultGenerateSize        = 20
	defaultGenerateProbability = 0.1
	defaultGenerateSeed        = 1
	defaultPrefixWidth         = 4
)

type generateOptions struct {
	shape       string
	size        int
	probability float64
	seed        int64
	bestRatio   float64
	oneWay      bool
	prefix      string
	encoding    string
}

func (options generateOptions) constructor() (builder.Constructor, error) {
	switch strings.ToLower(options.shape) {
	case shapePath:
		return builder.Path(options.size), nil
	case shapeStar:
		return builder.Star(options.size), nil
	case shapeComplete:
		return builder.Complete(options.size), nil
	case shapeRandom:
		return builder.RandomSparse(options.size, options.probability), nil
	case shapeIsolated:
		return builder.Isolated(options.size), nil
	default:
		return nil, fmt.Errorf("unknown shape %q (want %s)", options.shape,
			strings.Join([]string{shapePath, shapeStar, shapeComplete, shapeRandom, shapeIsolated}, ", "))
	}
}

func (options generateOptions) builderOptions() ([]builder.BuilderOption, error) {
	if options.bestRatio < 0 || options.bestRatio > 1 {
		return nil, fmt.Errorf("%s must lie in [0,1], got %g", bestRatioFlagName, options.bestRatio)
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(options.seed),
		builder.WithBestRatio(options.bestRatio),
	}
	if options.prefix != "" {
		opts = append(opts, builder.WithIDScheme(builder.PaddedIDFn(options.prefix, defaultPrefixWidth)))
	}
	if options.oneWay {
		opts = append(opts, builder.WithOneWay())
	}
	return opts, nil
}

func createGenerateCommand() *cobra.Command {
	options := generateOptions{
		shape:       shapeRandom,
		size:        defaultGenerateSize,
		probability: defaultGenerateProbability,
		seed:        defaultGenerateSeed,
		prefix:      "guest",
		encoding:    string(roster.FormatYAML),
	}

	command := &cobra.Command{
		Use:     generateUse,
		Short:   generateShortDescription,
		Example: generateUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			rt := command.Context().Value(contextKey{}).(*session)
			constructor, err := options.constructor()
			if err != nil {
				return err
			}
			builderOptions, err := options.builderOptions()
			if err != nil {
				return err
			}
			people, err := builder.BuildPeople(builderOptions, constructor)
			if err != nil {
				return err
			}
			rt.logger.Debug("graph generated", zap.String("shape", options.shape), zap.Int("people", len(people)))
			return roster.Encode(command.OutOrStdout(), roster.Format(strings.ToLower(options.encoding)), people)
		},
	}
	command.Flags().StringVar(&options.shape, shapeFlagName, options.shape, "path, star, complete, random or isolated")
	command.Flags().IntVar(&options.size, sizeFlagName, options.size, "number of people")
	command.Flags().Float64Var(&options.probability, probabilityFlagName, options.probability, "friendship probability for the random shape")
	command.Flags().Int64Var(&options.seed, seedFlagName, options.seed, "random seed")
	command.Flags().Float64Var(&options.bestRatio, bestRatioFlagName, options.bestRatio, "chance that any person is an extra best friend")
	command.Flags().BoolVar(&options.oneWay, oneWayFlagName, options.oneWay, "make friendships one-directional")
	command.Flags().StringVar(&options.prefix, prefixFlagName, options.prefix, "name prefix (empty uses plain numbers)")
	command.Flags().StringVar(&options.encoding, encodingFlagName, options.encoding, "yaml or json")
	return command
}
