package convert

import (
	"fmt"
	"image"
	"os"

	"github.com/corona10/goimagehash"
)

// HashedImage pairs a file path with its perceptual hash.
type HashedImage struct {
	Path string
	Hash *goimagehash.ImageHash
}

// PerceptualHash computes the difference hash of an image file for
// similarity comparison.
func PerceptualHash(path string) (*goimagehash.ImageHash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return goimagehash.DifferenceHash(img)
}

// GroupSimilar clusters images whose pairwise Hamming distance is within
// threshold. Each image lands in at most one group and groups of one are
// not reported.
func GroupSimilar(images []HashedImage, threshold int) ([][]string, error) {
	used := make([]bool, len(images))
	var groups [][]string

	for i := range images {
		if used[i] {
			continue
		}

		group := []string{images[i].Path}
		for j := i + 1; j < len(images); j++ {
			if used[j] {
				continue
			}

			distance, err := images[i].Hash.Distance(images[j].Hash)
			if err != nil {
				return nil, fmt.Errorf("failed to compare %s and %s: %w", images[i].Path, images[j].Path, err)
			}

			if distance <= threshold {
				group = append(group, images[j].Path)
				used[j] = true
			}
		}

		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	return groups, nil
}
