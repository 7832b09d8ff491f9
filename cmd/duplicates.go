package cmd

import (
	"fmt"

	"github.com/lepinkainen/webpconvert/convert"
	"github.com/lepinkainen/webpconvert/types"
	"github.com/lepinkainen/webpconvert/ui"
)

type DuplicatesCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory to scan for similar images" type:"existingdir" default:"."`
	Threshold int    `help:"Hamming distance threshold for similarity (0-64)" default:"10"`
}

func (cmd *DuplicatesCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("WebP Convert %s", version)))
	fmt.Printf("Scanning %s for similar images (threshold: %d)...\n", cmd.Directory, cmd.Threshold)

	paths, err := convert.EnumeratePaths(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}

	var images []convert.HashedImage
	for _, path := range paths {
		if !convert.IsImageFile(path) {
			continue
		}

		hash, err := convert.PerceptualHash(path)
		if err != nil {
			fmt.Printf("%s\n", ui.WarnStyle.Render(fmt.Sprintf("⚠️  Skipping %s: %v", path, err)))
			continue
		}
		images = append(images, convert.HashedImage{Path: path, Hash: hash})
	}

	if len(images) < 2 {
		fmt.Printf("%s\n", ui.InfoStyle.Render("Need at least 2 readable images to compare"))
		return nil
	}

	groups, err := convert.GroupSimilar(images, cmd.Threshold)
	if err != nil {
		return fmt.Errorf("failed to compare images: %w", err)
	}

	if len(groups) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No similar images found within threshold"))
		return nil
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Found %d group(s) of similar images:", len(groups))))
	for i, group := range groups {
		fmt.Printf("\n🔸 Group %d (%d files):\n", i+1, len(group))
		for _, file := range group {
			fmt.Printf("  %s\n", file)
		}
	}

	return nil
}
