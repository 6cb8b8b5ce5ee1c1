package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/dkazmin/lookbook/internal/feedback"
	"github.com/dkazmin/lookbook/internal/filtering"
	"github.com/dkazmin/lookbook/internal/logger"
	"github.com/dkazmin/lookbook/internal/recommend"
	"github.com/dkazmin/lookbook/internal/utils"
	"github.com/dkazmin/lookbook/internal/wardrobe"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptLike         = "Like an outfit"
	PromptDislike      = "Dislike an outfit"
	PromptSuggestAgain = "Suggest again"
	PromptReport       = "Report wardrobe by category"
	PromptDumpToFile   = "Dump suggestions to file"
	PromptExit         = "Exit"
	PromptBack         = "back"
)

var errExit = errors.New("exit requested")

var suggestPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptLike, PromptDislike, PromptSuggestAgain, PromptReport, PromptDumpToFile, PromptExit},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest outfits from the wardrobe",
	Run: func(cmd *cobra.Command, _ []string) {
		suggest(cmd)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().IntP("count", "n", 0, "number of outfits to suggest (default 3)")
	suggestCmd.Flags().StringP("occasion", "o", "", "occasion filter: All, Casual, Formal, Athletic, Business")
	suggestCmd.Flags().StringP("weather", "t", "", "weather filter: Any, Hot, Mild, Cold, Rainy")
	suggestCmd.Flags().StringSliceP("require", "r", nil, "categories every outfit must include")
	suggestCmd.Flags().BoolP("auto-approve", "y", false, "print the suggestions and exit without the interactive prompt")
	suggestCmd.Flags().Int64("seed", 0, "fixed random seed for reproducible suggestions")

	viper.BindPFlag("suggest.count", suggestCmd.Flags().Lookup("count"))
	viper.BindPFlag("suggest.occasion", suggestCmd.Flags().Lookup("occasion"))
	viper.BindPFlag("suggest.weather", suggestCmd.Flags().Lookup("weather"))
	viper.BindPFlag("suggest.require", suggestCmd.Flags().Lookup("require"))
}

// suggest is the main command for the cli.
func suggest(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the lookbook", zap.String("version", version))

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	params, err := suggestParams(config)
	if err != nil {
		logger.Fatal("resolving suggestion parameters", zap.Error(err))
	}

	store := wardrobe.NewStore(config.WardrobeFile)
	pool, err := store.Load()
	if err != nil {
		logger.Fatal("loading the wardrobe", zap.Error(err))
	}

	logger.Info("loading the wardrobe",
		zap.String("file", store.Path()),
		zap.Int("count", pool.Len()),
	)

	if pool.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "the wardrobe is empty"))
		return
	}

	filters := prepareFilters(config, params, logger)

	filtered, err := filters.RunFilters(ctx, pool)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	pool = filtered

	if pool.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no items left after filters"))
		return
	}

	if delay := time.Duration(config.Suggest.DelayMs) * time.Millisecond; delay > 0 {
		if err := utils.WaitFor(ctx, delay); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
	}

	recommender := recommend.New(newRandSource(cmd), logger)

	outfits := recommender.Recommend(pool, *params)
	if len(outfits) == 0 {
		logger.Info("exiting", zap.String("reason", "no outfit combinations possible from the filtered pool"))
		return
	}

	if len(outfits) < params.Count {
		logger.Info("produced fewer outfits than requested",
			zap.Int("requested", params.Count),
			zap.Int("produced", len(outfits)),
		)
	}

	renderSuggestions(outfits)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	fb, err := feedback.Open(config.FeedbackFile)
	if err != nil {
		logger.Fatal("opening the feedback store", zap.Error(err))
	}

	for {
		_, action, err := suggestPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, fb, recommender, pool, params, &outfits); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, fb *feedback.Store, recommender *recommend.Recommender, pool *wardrobe.Collection, params *recommend.Params, outfits *[]*recommend.Recommendation) error {
	switch action {
	case PromptLike:
		return recordVerdict(logger, fb, *outfits, feedback.VerdictLike)
	case PromptDislike:
		return recordVerdict(logger, fb, *outfits, feedback.VerdictDislike)
	case PromptSuggestAgain:
		next := recommender.Recommend(pool, *params)
		if len(next) == 0 {
			logger.Info("no outfit combinations possible from the filtered pool")
			return nil
		}
		*outfits = next
		renderSuggestions(next)
		return nil
	case PromptReport:
		pretty, _ := json.MarshalIndent(pool.ReportByCategory(), "", "  ")
		logger.Info(string(pretty), zap.Int("items count", pool.Len()))
		return nil
	case PromptDumpToFile:
		filename, err := dumpSuggestions(*outfits)
		if err != nil {
			return fmt.Errorf("dump suggestions to file: %w", err)
		}
		logger.Info("dumping suggestions to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func recordVerdict(logger *zap.Logger, fb *feedback.Store, outfits []*recommend.Recommendation, verdict feedback.Verdict) error {
	items := make([]string, 0, len(outfits)+1)
	for idx, outfit := range outfits {
		items = append(items, fmt.Sprintf("%d. %s (%.2f) %s",
			idx+1, outfit.Style, outfit.Score, utils.TruncateForLog(outfit.Reason, 60),
		))
	}

	outfitPrompt := promptui.Select{
		Label: "Choose an outfit and press ENTER",
		Items: append(items, PromptBack),
	}

	idx, selected, err := outfitPrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	outfit := outfits[idx]
	fb.Record(outfit.Key(), verdict, outfit.Score, outfit.Style)

	if err := fb.Save(); err != nil {
		return fmt.Errorf("saving feedback: %w", err)
	}

	logger.Info("recorded feedback",
		zap.String("verdict", string(verdict)),
		zap.String("outfit", outfit.Key()),
		zap.Float64("score", outfit.Score),
	)

	return nil
}

// suggestParams resolves the final recommendation parameters from the
// config, which viper has already merged with the command flags.
func suggestParams(config *Config) (*recommend.Params, error) {
	count := config.Suggest.Count
	if count <= 0 {
		count = 3
	}

	occasion, err := recommend.ParseOccasion(config.Suggest.Occasion)
	if err != nil {
		return nil, err
	}

	weather, err := recommend.ParseWeather(config.Suggest.Weather)
	if err != nil {
		return nil, err
	}

	var require []wardrobe.Category
	for _, raw := range config.Suggest.Require {
		cat, err := wardrobe.ParseCategory(raw)
		if err != nil {
			return nil, fmt.Errorf("require list: %w", err)
		}
		require = append(require, cat)
	}

	return &recommend.Params{
		Count:    count,
		Occasion: occasion,
		Weather:  weather,
		Require:  require,
	}, nil
}

func prepareFilters(config *Config, params *recommend.Params, logger *zap.Logger) *filtering.Filtering {
	var excluded []string
	if config.Exclude != nil {
		excluded = config.Exclude.Categories
	}

	steps := []filtering.Filter{
		filtering.NewOccasion(params.Occasion),
		filtering.NewWeather(params.Weather),
		filtering.NewExcludedCategories(excluded),
	}

	return filtering.New(steps, logger)
}

func newRandSource(cmd *cobra.Command) *rand.Rand {
	if flag := cmd.Flag("seed"); flag != nil && flag.Changed {
		if seed, err := strconv.ParseInt(flag.Value.String(), 10, 64); err == nil {
			return rand.New(rand.NewSource(seed))
		}
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func dumpSuggestions(outfits []*recommend.Recommendation) (string, error) {
	file, err := os.CreateTemp("", "suggestions_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outfits); err != nil {
		return "", err
	}
	return file.Name(), nil
}
