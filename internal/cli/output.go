package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rshade/catalogview/internal/listview"
	"github.com/rshade/catalogview/internal/pagination"
	"github.com/rshade/catalogview/internal/product"
	"github.com/rshade/catalogview/internal/tui"
)

// Output formats for the list command.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
	outputYAML   = "yaml"
)

//nolint:gochecknoglobals // Fixed enumeration.
var outputFormats = []string{outputTable, outputJSON, outputNDJSON, outputYAML}

func isValidOutputFormat(format string) bool {
	return slices.Contains(outputFormats, format)
}

// productOutput is the structured form of one product.
type productOutput struct {
	ID     int         `json:"id"               yaml:"id"`
	Title  string      `json:"title"            yaml:"title"`
	Price  json.Number `json:"price,omitempty"  yaml:"price,omitempty"`
	Image  string      `json:"image"            yaml:"image"`
	Images []string    `json:"images,omitempty" yaml:"images,omitempty"`
}

// listOutput is the JSON/YAML document written by the list command.
type listOutput struct {
	Search     string          `json:"search,omitempty" yaml:"search,omitempty"`
	Sort       string          `json:"sort,omitempty"   yaml:"sort,omitempty"`
	Items      []productOutput `json:"items"            yaml:"items"`
	Pagination pagination.Meta `json:"pagination"       yaml:"pagination"`
}

func newProductOutput(rec product.Record, image tui.ImageFunc) productOutput {
	out := productOutput{
		ID:     rec.ID,
		Title:  rec.Title,
		Image:  image(rec),
		Images: rec.Images,
	}
	if !rec.PriceMissing {
		out.Price = json.Number(rec.Price.String())
	}
	return out
}

// buildListOutput converts the visible page of state into a listOutput.
func buildListOutput(state *listview.State, image tui.ImageFunc) listOutput {
	page := state.VisiblePage()

	items := make([]productOutput, 0, len(page.Rows))
	for _, rec := range page.Rows {
		items = append(items, newProductOutput(rec, image))
	}

	out := listOutput{
		Search:     state.Keyword(),
		Items:      items,
		Pagination: page.Meta,
	}
	if field, ok := state.LastSort(); ok {
		out.Sort = field.String() + ":" + state.Direction(field).String()
	}
	return out
}

// renderList writes the visible page of state in format.
func renderList(w io.Writer, format string, state *listview.State, image tui.ImageFunc) error {
	if image == nil {
		image = tui.PrimaryImageOrPlaceholder
	}

	switch format {
	case outputTable:
		return tui.RenderPlain(w, state, image)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(buildListOutput(state, image)); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case outputNDJSON:
		enc := json.NewEncoder(w)
		for _, item := range buildListOutput(state, image).Items {
			if err := enc.Encode(item); err != nil {
				return fmt.Errorf("encoding NDJSON: %w", err)
			}
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd // YAML indent.
		if err := enc.Encode(buildListOutput(state, image)); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
