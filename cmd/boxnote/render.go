package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/platinummonkey/boxnote/boxnote"
	"github.com/platinummonkey/boxnote/logging"
	"github.com/platinummonkey/boxnote/pdfexport"
	renderpkg "github.com/platinummonkey/boxnote/render"
)

var pdfOut string

var renderCmd = &cobra.Command{
	Use:   "render <path-to-.note> <note-id> <page-id>",
	Short: "Rasterize one page to PNG, optionally also exporting a PDF",
	Args:  cobra.ArbitraryArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("out", "page.png", "PNG output path")
	renderCmd.Flags().StringVar(&pdfOut, "pdf", "", "also export the page as a single-page PDF at this path")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		_ = cmd.Usage()
		return fmt.Errorf("expected exactly three arguments: <path-to-.note> <note-id> <page-id>")
	}

	log, err := logging.New(&logging.Config{
		Level:  viper.GetString("log-level"),
		Format: viper.GetString("log-format"),
	})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	notePath, rawNoteID, rawPageID := args[0], args[1], args[2]

	noteID, err := parseNoteID(rawNoteID)
	if err != nil {
		return err
	}
	pageID, err := parsePageID(rawPageID)
	if err != nil {
		return err
	}

	f, err := os.Open(notePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", notePath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", notePath, err)
	}

	boxFile, err := boxnote.Open(f, info.Size())
	if err != nil {
		return fmt.Errorf("open container: %w", err)
	}

	note, ok := boxFile.GetNote(noteID)
	if !ok {
		return fmt.Errorf("no note %s in container", noteID)
	}

	page, ok, err := note.GetPage(pageID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no page %s in note %s", pageID, noteID)
	}

	img, err := renderpkg.Page(log, page)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	outDir := viper.GetString("output-dir")
	outPath, _ := cmd.Flags().GetString("out")
	if outDir != "" && !filepath.IsAbs(outPath) {
		outPath = filepath.Join(outDir, outPath)
	}
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer outFile.Close()

	if err := png.Encode(outFile, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.WithPageID(pageID.String()).Infow("rendered page", "out", outPath)

	if pdfOut != "" {
		pdfPath := pdfOut
		if outDir != "" && !filepath.IsAbs(pdfPath) {
			pdfPath = filepath.Join(outDir, pdfPath)
		}
		if err := pdfexport.WritePDF(page, pdfPath); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
		log.WithPageID(pageID.String()).Infow("exported pdf", "out", pdfPath)
	}

	return nil
}
