package jsonchart

import (
	"io"

	"github.com/rs/zerolog/log"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/parser"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/render"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/view"
)

// Chart is a configured chart view of a tree.
type Chart struct {
	// Path locates the chart node in the tree.
	Path string `json:"path"`
	// Config is the render configuration of the node.
	Config *models.RenderConfig `json:"config"`
}

// Build configures every chart view of root.
// A chart that cannot be configured halts the build.
func Build(root *models.ViewNode, opts Options) ([]Chart, error) {
	nodes := parser.FindCharts(root)
	if len(nodes) == 0 {
		return nil, ErrNoCharts
	}

	charts := make([]Chart, 0, len(nodes))
	for _, node := range nodes {
		in := parser.InputFromProps(node.Props)
		if opts.Series != nil {
			in.Data = opts.Series
		}

		cfg, err := view.Configure(in)
		if err != nil {
			return nil, NewBuildError(node.Path, "configure", err)
		}
		log.Debug().Str("path", node.Path).Str("style", string(cfg.Style)).Msg("configured chart")

		charts = append(charts, Chart{Path: node.Path, Config: cfg})
	}

	return charts, nil
}

// Render draws a configured chart with the backend selected by opts.
func Render(w io.Writer, chart Chart, opts Options) error {
	r, err := render.New(opts.Format, opts.Size())
	if err != nil {
		return err
	}
	if err := r.Render(w, chart.Config); err != nil {
		return NewBuildError(chart.Path, "render", err)
	}
	return nil
}

// RenderView decodes a view tree and renders its first chart view.
func RenderView(w io.Writer, tree io.Reader, opts Options) error {
	root, err := parser.DecodeView(tree)
	if err != nil {
		return err
	}
	charts, err := Build(root, opts)
	if err != nil {
		return err
	}
	return Render(w, charts[0], opts)
}
