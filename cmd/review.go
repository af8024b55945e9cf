/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	deckrepo "github.com/eslsoft/flash/internal/adapter/repository"
	"github.com/eslsoft/flash/internal/adapter/terminal"
	"github.com/eslsoft/flash/internal/infrastructure/config"
	"github.com/eslsoft/flash/internal/usecase"
)

const (
	reviewDeckKey     = "review.deck"
	reviewPriorityKey = "review.priority"
	reviewExcludeKey  = "review.exclude_mastered"
	reviewShuffleKey  = "review.shuffle"
	reviewSeedKey     = "review.shuffle_seed"
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review [deck]",
	Short: "Run a review session over a deck",
	Long: `Review serves the selected deck one card at a time, question first,
highest-priority tier first. Any keypress reveals the answer, another
advances; q quits at any point.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger := newLogger(cfg)

		deckRef := viper.GetString(reviewDeckKey)
		if len(args) == 1 {
			deckRef = args[0]
		}
		if deckRef == "" {
			return errors.New("no deck selected, use `flash list` to see available decks")
		}

		only, err := priorityFilter(viper.GetInt(reviewPriorityKey))
		if err != nil {
			return err
		}
		filter := usecase.FilterConfig{
			OnlyPriority:          only,
			ExcludeLowestPriority: viper.GetBool(reviewExcludeKey),
		}

		repo, err := deckrepo.NewFileDeckRepository(cfg.Deck.Dir, logger)
		if err != nil {
			return err
		}
		deck, err := repo.Load(ctx, deckRef)
		if err != nil {
			return err
		}

		var opts []usecase.Option
		if viper.GetBool(reviewShuffleKey) {
			seed := viper.GetInt64(reviewSeedKey)
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			opts = append(opts, usecase.WithShuffle(seed))
		}

		session := usecase.NewSession(deck, filter, opts...)
		logger.WithFields(logrus.Fields{
			"deck":     deck.Name(),
			"selected": session.Total(),
		}).Debug("session ready")

		if session.Total() == 0 {
			cmd.Println("No cards match the selected filters, nothing to review.")
			return nil
		}

		review := usecase.NewReviewUsecase(terminal.NewPresenter())
		return review.Run(session)
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringP("deck", "d", "", "deck to review, a name in the deck directory or a path")
	reviewCmd.Flags().IntP("priority", "p", 0, "only show cards of this priority tier (1-4)")
	reviewCmd.Flags().BoolP("exclude-mastered", "x", false, "skip the lowest-priority tier present in the deck")
	reviewCmd.Flags().Bool("shuffle", false, "shuffle cards within each priority tier")
	reviewCmd.Flags().Int64("seed", 0, "seed for --shuffle, 0 picks one from the clock")

	bindFlagToViper(reviewDeckKey, reviewCmd.Flags().Lookup("deck"))
	bindFlagToViper(reviewPriorityKey, reviewCmd.Flags().Lookup("priority"))
	bindFlagToViper(reviewExcludeKey, reviewCmd.Flags().Lookup("exclude-mastered"))
	bindFlagToViper(reviewShuffleKey, reviewCmd.Flags().Lookup("shuffle"))
	bindFlagToViper(reviewSeedKey, reviewCmd.Flags().Lookup("seed"))
}
