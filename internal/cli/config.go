// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/evolve/bench"
	"github.com/katalvlaran/evolve/de"
	"github.com/katalvlaran/evolve/ga"
	"github.com/katalvlaran/evolve/xoshiro"
)

var (
	errUnknownAlgorithm = errors.New("unknown algorithm")
	errUnknownFormat    = errors.New("unknown output format")
	errBadSeed          = errors.New("seed must be one word or four comma-separated hex words")
)

// defaultSeed is the four-word state of the reference study.
const defaultSeed = "93920339ac7730ac,8db68f4acc7c22b1,8b804df6a99a1289,ff5fa2f037375aa9"

// Config is the merged view of flags, EVOLVE_* variables and the config file.
type Config struct {
	Algorithm string  `mapstructure:"algo" yaml:"algo"`
	Problem   string  `mapstructure:"problem" yaml:"problem"`
	Dim       int     `mapstructure:"dim" yaml:"dim"`
	Weight    float64 `mapstructure:"weight" yaml:"weight"` // < 0 keeps the problem's weight

	Runs    int    `mapstructure:"runs" yaml:"runs"`
	Seed    string `mapstructure:"seed" yaml:"seed"`
	Variant string `mapstructure:"variant" yaml:"variant"`
	Stream  string `mapstructure:"stream" yaml:"stream"`
	Workers int    `mapstructure:"workers" yaml:"workers"`

	Iterations         int     `mapstructure:"iterations" yaml:"iterations"`
	Population         int     `mapstructure:"population" yaml:"population"`
	Tournament         int     `mapstructure:"tournament" yaml:"tournament"`
	Crossover          float64 `mapstructure:"crossover" yaml:"crossover"`
	Mutation           float64 `mapstructure:"mutation" yaml:"mutation"`
	DifferentialWeight float64 `mapstructure:"differential-weight" yaml:"differential-weight"`

	Format string `mapstructure:"format" yaml:"format"`
}

// addRunFlags registers the run flags with defaults taken from the engines.
func addRunFlags(fs *pflag.FlagSet) {
	gaDef, deDef := ga.DefaultOptions(), de.DefaultOptions()

	fs.String("algo", "ga", "search algorithm: ga | de")
	fs.String("problem", "tubular-column", "problem name, see 'evolve problems'")
	fs.Int("dim", 0, "dimension of scalable problems (0 = default)")
	fs.Float64("weight", -1, "penalty weight override (< 0 keeps the problem's)")

	fs.Int("runs", 30, "number of independent runs")
	fs.String("seed", defaultSeed, "generator seed: four hex words, or one word expanded with SplitMix64")
	fs.String("variant", string(bench.Plus), "generator: plus | plusplus")
	fs.String("stream", string(bench.Jump), "stream separation: jump | long-jump")
	fs.Int("workers", 0, "parallel runs (0 = GOMAXPROCS)")

	fs.Int("iterations", gaDef.Iterations, "generations per run")
	fs.Int("population", gaDef.PopulationSize, "population size")
	fs.Int("tournament", gaDef.TournamentSize, "tournament size (ga)")
	fs.Float64("crossover", gaDef.CrossoverProbability, "crossover probability")
	fs.Float64("mutation", gaDef.MutationProbability, "per-gene mutation probability (ga)")
	fs.Float64("differential-weight", deDef.DifferentialWeight, "differential weight F (de)")

	fs.String("format", "text", "output format: text | yaml | csv")
}

// newViper binds fs, the EVOLVE_* environment and an optional YAML file.
func newViper(fs *pflag.FlagSet, configPath string) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("EVOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// algorithm builds the bench.Algorithm selected by cfg.
func (cfg Config) algorithm() (bench.Algorithm, error) {
	switch strings.ToLower(cfg.Algorithm) {
	case "ga":
		return bench.GA(ga.WithOptions(ga.Options{
			Iterations:           cfg.Iterations,
			PopulationSize:       cfg.Population,
			TournamentSize:       cfg.Tournament,
			CrossoverProbability: cfg.Crossover,
			MutationProbability:  cfg.Mutation,
		})), nil
	case "de":
		return bench.DE(de.WithOptions(de.Options{
			Iterations:           cfg.Iterations,
			PopulationSize:       cfg.Population,
			CrossoverProbability: cfg.Crossover,
			DifferentialWeight:   cfg.DifferentialWeight,
		})), nil
	default:
		return bench.Algorithm{}, fmt.Errorf("%w: %q", errUnknownAlgorithm, cfg.Algorithm)
	}
}

// parseSeed accepts four comma-separated hex words, or a single word that
// is expanded to a full state with SplitMix64.
func parseSeed(s string) ([4]uint64, error) {
	var state [4]uint64
	parts := strings.Split(s, ",")
	words := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimPrefix(strings.TrimSpace(p), "0x")
		w, err := strconv.ParseUint(p, 16, 64)
		if err != nil {
			return state, fmt.Errorf("%w: %q", errBadSeed, s)
		}
		words = append(words, w)
	}

	switch len(words) {
	case 1:
		g, err := xoshiro.Seed256Plus(words[0])
		if err != nil {
			return state, err
		}

		return g.State(), nil
	case 4:
		copy(state[:], words)

		return state, nil
	default:
		return state, fmt.Errorf("%w: got %d words", errBadSeed, len(words))
	}
}

// newLogger returns a text logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return l, nil
}
