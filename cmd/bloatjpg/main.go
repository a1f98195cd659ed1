// Bloatjpg - a bulk generator of block-patterned JPEG test images
//
// Bloatjpg paints square rasters as grids of randomly coloured blocks,
// encodes them into a timestamped folder, and stamps EXIF capture
// timestamps into the whole batch via exiftool.
//
// Copyright (c) 2026 krudnicki-kuhy
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/krudnicki-kuhy/bloatjpg/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
