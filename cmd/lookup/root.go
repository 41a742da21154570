package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gcottom/media-lookup/config"
	"github.com/gcottom/media-lookup/internal/services/catalog"
	"github.com/gcottom/media-lookup/internal/services/music"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lookup",
		Short:         "Look up albums on Spotify and films or series on TMDB",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfigFromFile(a.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config yaml (default ./config/config.yaml)")

	root.AddCommand(a.newAlbumCmd(), a.newTitleCmd())
	return root
}

func (a *app) newAlbumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "album <title>",
		Short: "Search Spotify for an album",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			album, err := music.NewService(a.cfg).SearchAlbum(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if album == nil {
				return writeNull(cmd.OutOrStdout())
			}
			out, err := json.MarshalIndent(album, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

func (a *app) newTitleCmd() *cobra.Command {
	var mediaType, year string
	cmd := &cobra.Command{
		Use:   "title <title>",
		Short: "Search TMDB for a series or film",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := catalog.NewService(a.cfg).SearchTitle(cmd.Context(), strings.Join(args, " "), mediaType, year)
			if err != nil {
				return err
			}
			if res == nil {
				return writeNull(cmd.OutOrStdout())
			}
			var out bytes.Buffer
			if err = json.Indent(&out, res, "", "  "); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&mediaType, "type", "t", catalog.MediaTypeTV, "media type: tv or movie")
	cmd.Flags().StringVarP(&year, "year", "y", "", "release year (movie) or first air year (tv)")
	return cmd
}

func writeNull(w io.Writer) error {
	_, err := fmt.Fprintln(w, "null")
	return err
}
