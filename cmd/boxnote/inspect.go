package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/platinummonkey/boxnote/boxnote"
	"github.com/platinummonkey/boxnote/logging"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path-to-.note>",
	Short: "Print a .note container's structural contents",
	Args:  cobra.ArbitraryArgs,
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		_ = cmd.Usage()
		return fmt.Errorf("expected exactly one argument, <path-to-.note>")
	}

	log, err := logging.New(&logging.Config{
		Level:  viper.GetString("log-level"),
		Format: viper.GetString("log-format"),
	})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", args[0], err)
	}

	boxFile, err := boxnote.Open(f, info.Size())
	if err != nil {
		return fmt.Errorf("open container: %w", err)
	}

	fmt.Printf("Variant: %s\n", boxFile.Variant())
	fmt.Println("Notes:")
	for noteID, name := range boxFile.ListNotes() {
		note, ok := boxFile.GetNote(noteID)
		if !ok {
			continue
		}

		m := note.Metadata()
		fmt.Printf("  Note ID: %s\n", noteID.String())
		fmt.Printf("    Name: %s\n", name)
		fmt.Printf("    Created: %s\n", m.Created)
		fmt.Printf("    Modified: %s\n", m.Modified)
		fmt.Printf("    Flag: %08x\n", m.Flag)
		fmt.Printf("    Pen Width: %v\n", m.PenWidth)
		fmt.Printf("    Pen Type: %v\n", m.PenType)
		fmt.Printf("    Scale factor: %v\n", m.ScaleFactor)
		fmt.Printf("    Fill Color: %08x\n", uint32(m.FillColor))
		fmt.Printf("    Pen Settings Fill Color: %08x\n", uint32(m.PenSettings.FillColor))
		fmt.Printf("    Pen Settings Graphics Shape Color: %08x\n", uint32(m.PenSettings.GraphicsShapeColor))

		if doc, err := note.VirtualDoc(); err != nil {
			log.WithNoteID(noteID.String()).WithError(err).Warn("no virtual doc found for note")
		} else {
			fmt.Printf("    Virtual Doc ID: %s\n", doc.VirtualDocID.String())
			fmt.Printf("      Created: %s\n", doc.Created)
			fmt.Printf("      Modified: %s\n", doc.Modified)
			fmt.Printf("      Content: %+v\n", doc.Content)
		}

		fmt.Println("    Active Pages:")
		listPages(log, note, m.ActivePages)
		fmt.Println("    Reserved Pages:")
		listPages(log, note, m.ReservedPages)
		fmt.Println("    Detached Pages:")
		listPages(log, note, m.DetachedPages)
	}

	return nil
}

func listPages(log *logging.Logger, note *boxnote.Note, pageIDs []string) {
	for _, raw := range pageIDs {
		fmt.Printf("      Page ID: %s\n", raw)

		pageID, err := parsePageID(raw)
		if err != nil {
			log.WithError(err).Warnw("skipping unparsable page id", "page_id", raw)
			continue
		}

		page, ok, err := note.GetPage(pageID)
		if err != nil {
			log.WithPageID(raw).WithError(err).Warn("failed to load page")
			continue
		}
		if !ok {
			fmt.Println("        No matching page (missing page model).")
			continue
		}

		model := page.PageModel()
		fmt.Println("        Page Model:")
		fmt.Printf("          Created: %s\n", model.Created)
		fmt.Printf("          Modified: %s\n", model.Modified)
		fmt.Printf("          Dimensions: %+v\n", model.Dimensions)
		fmt.Printf("          Layers: %+v\n", model.Layers)

		vp, ok := page.VirtualPage()
		if !ok {
			fmt.Println("        No virtual page found for this page.")
			continue
		}
		fmt.Println("        Virtual Page:")
		fmt.Printf("          Created: %s\n", vp.Created)
		fmt.Printf("          Modified: %s\n", vp.Modified)
		fmt.Printf("          Zoom Scale: %v\n", vp.ZoomScale)
		fmt.Printf("          Dimensions: %+v\n", vp.Dimensions)
		fmt.Printf("          Layout: %+v\n", vp.Layout)
		fmt.Printf("          Geo: %+v\n", vp.Geo)
		fmt.Printf("          Geo Layout: %s\n", vp.GeoLayout)
		fmt.Printf("          Template Path: %s\n", vp.TemplatePath)
		fmt.Printf("          Page Number: %s\n", vp.PageNumber)
	}
}
