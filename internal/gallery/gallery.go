// Package gallery assembles plot images into an HTML fragment for display
// in notebooks and static reports.
package gallery

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// PerRow is the number of images on one gallery row.
const PerRow = 3

type image struct {
	path  string
	stamp int64
}

// Gallery collects image paths and renders them as an HTML table, three
// cells per row. Each image source carries the time it was added as a
// query parameter, which forces browsers to reload files that were
// regenerated in place under the same name.
type Gallery struct {
	images []image
	now    func() time.Time
}

// New returns an empty gallery.
func New() *Gallery {
	return &Gallery{now: time.Now}
}

// Add appends an image to the gallery.
func (g *Gallery) Add(path string) {
	g.images = append(g.images, image{path: path, stamp: g.now().Unix()})
}

// Len reports how many images have been added.
func (g *Gallery) Len() int {
	return len(g.images)
}

// HTML renders the gallery fragment.
func (g *Gallery) HTML() string {
	var sb strings.Builder
	sb.WriteString("<table>\n")
	for i, img := range g.images {
		if i%PerRow == 0 {
			sb.WriteString("<tr>\n")
		}
		sb.WriteString(fmt.Sprintf("<td><img src=\"%s?%d\" style=\"width:100%%\"></td>\n", img.path, img.stamp))
		if i%PerRow == PerRow-1 || i == len(g.images)-1 {
			sb.WriteString("</tr>\n")
		}
	}
	sb.WriteString("</table>\n")
	return sb.String()
}

// WriteFile writes the rendered fragment to path.
func (g *Gallery) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(g.HTML()), 0o644); err != nil {
		return fmt.Errorf("gallery: %w", err)
	}
	return nil
}
