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
	"fmt"

	"github.com/spf13/cobra"

	deckrepo "github.com/eslsoft/flash/internal/adapter/repository"
	"github.com/eslsoft/flash/internal/infrastructure/config"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the decks in the deck directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		repo, err := deckrepo.NewFileDeckRepository(cfg.Deck.Dir, newLogger(cfg))
		if err != nil {
			return err
		}
		infos, err := repo.List(cmd.Context())
		if err != nil {
			return err
		}

		if len(infos) == 0 {
			cmd.Printf("Warning: no decks found in %s\n", cfg.Deck.Dir)
			return nil
		}

		cmd.Println("Available flash decks:")
		for i, info := range infos {
			cmd.Printf("  %d. %s\n", i+1, info.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
