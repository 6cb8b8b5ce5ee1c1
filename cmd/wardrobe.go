package cmd

import (
	"fmt"
	"log"

	"github.com/dkazmin/lookbook/internal/logger"
	"github.com/dkazmin/lookbook/internal/wardrobe"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var wardrobeCmd = &cobra.Command{
	Use:   "wardrobe",
	Short: "Manage the wardrobe file",
}

var wardrobeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every item in the wardrobe",
	Run: func(_ *cobra.Command, _ []string) {
		collection := mustLoadWardrobe()

		styles := newPrintStyles()
		fmt.Println(styles.header.Render(fmt.Sprintf("WARDROBE (%d items)", collection.Len())))
		for _, cat := range collection.Categories() {
			fmt.Println(styles.header.Render(string(cat)))
			for _, item := range collection.OfCategory(cat) {
				fmt.Printf("  %-8s %s\n", item.Color, styles.dim.Render(item.URI))
			}
		}
	},
}

var wardrobeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the wardrobe",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := mustLogger()

		item := &wardrobe.Item{
			URI:      cmd.Flag("image").Value.String(),
			Category: wardrobe.Category(cmd.Flag("category").Value.String()),
			Color:    cmd.Flag("color").Value.String(),
		}

		if err := wardrobe.CheckItem(item); err != nil {
			logger.Fatal("invalid item", zap.Error(err))
		}

		store := wardrobe.NewStore(viper.GetString("wardrobe-file"))
		collection, err := store.Load()
		if err != nil {
			logger.Fatal("loading the wardrobe", zap.Error(err))
		}

		if collection.FindByURI(item.URI) != nil {
			logger.Fatal("item already exists", zap.String("image", item.URI))
		}

		collection.Items = append(collection.Items, item)
		if err := store.Save(collection); err != nil {
			logger.Fatal("saving the wardrobe", zap.Error(err))
		}

		logger.Info("added item",
			zap.String("image", item.URI),
			zap.String("category", string(item.Category)),
			zap.String("color", item.Color),
			zap.Int("count", collection.Len()),
		)
	},
}

var wardrobeRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an item from the wardrobe by image reference",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := mustLogger()

		uri := cmd.Flag("image").Value.String()
		if uri == "" {
			logger.Fatal("image reference is required")
		}

		store := wardrobe.NewStore(viper.GetString("wardrobe-file"))
		collection, err := store.Load()
		if err != nil {
			logger.Fatal("loading the wardrobe", zap.Error(err))
		}

		if !collection.RemoveByURI(uri) {
			logger.Fatal("no such item", zap.String("image", uri))
		}

		if err := store.Save(collection); err != nil {
			logger.Fatal("saving the wardrobe", zap.Error(err))
		}

		logger.Info("removed item", zap.String("image", uri), zap.Int("count", collection.Len()))
	},
}

var wardrobeDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the wardrobe to a temporary JSON file",
	Run: func(_ *cobra.Command, _ []string) {
		logger := mustLogger()

		collection := mustLoadWardrobe()

		filename, err := collection.DumpToTmpFile()
		if err != nil {
			logger.Fatal("dumping the wardrobe", zap.Error(err))
		}

		logger.Info("dumped the wardrobe",
			zap.String("filename", filename),
			zap.Int("count", collection.Len()),
		)
	},
}

func init() {
	rootCmd.AddCommand(wardrobeCmd)
	wardrobeCmd.AddCommand(wardrobeListCmd)
	wardrobeCmd.AddCommand(wardrobeAddCmd)
	wardrobeCmd.AddCommand(wardrobeRemoveCmd)
	wardrobeCmd.AddCommand(wardrobeDumpCmd)

	wardrobeAddCmd.Flags().StringP("image", "i", "", "image reference for the item")
	wardrobeAddCmd.Flags().StringP("category", "c", "", "item category")
	wardrobeAddCmd.Flags().String("color", "", "item color (free text)")
	wardrobeAddCmd.MarkFlagRequired("image")
	wardrobeAddCmd.MarkFlagRequired("category")

	wardrobeRemoveCmd.Flags().StringP("image", "i", "", "image reference of the item to remove")
	wardrobeRemoveCmd.MarkFlagRequired("image")
}

func mustLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func mustLoadWardrobe() *wardrobe.Collection {
	logger := mustLogger()

	store := wardrobe.NewStore(viper.GetString("wardrobe-file"))
	collection, err := store.Load()
	if err != nil {
		logger.Fatal("loading the wardrobe", zap.Error(err))
	}
	return collection
}
