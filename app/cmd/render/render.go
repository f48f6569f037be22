package render

import (
	"fmt"
	"io"
	"os"

	"github.com/ribgsilva/note-widget/business/v1/board"
	"github.com/ribgsilva/note-widget/business/v1/note"
	"github.com/ribgsilva/note-widget/business/v1/widget"
	"github.com/ribgsilva/note-widget/platform/env"
	"github.com/ribgsilva/note-widget/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File is the yaml document read by the render command
type File struct {
	Title string        `yaml:"title"`
	Notes []note.Values `yaml:"notes"`
}

func NewCommand() *cobra.Command {
	var file, out, title string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Submit the notes of a yaml file and write the rendered page",
		Example: `  notewidget render --file notes.yaml --out notes.html

  # notes.yaml
  title: Groceries
  notes:
    - title: Buy milk
      content: 2% fat
      priority: Medium`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// empty logger
			log := zap.NewNop().Sugar()
			initVars(log)

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read notes file: %w", err)
			}

			var f File
			if err := yaml.Unmarshal(data, &f); err != nil {
				return fmt.Errorf("parse notes file %s: %w", file, err)
			}
			if title != "" {
				f.Title = title
			}

			w := cmd.OutOrStdout()
			if out != "" {
				o, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer func() {
					_ = o.Close()
				}()
				w = o
			}

			return Run(log, f, w, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "yaml file with the notes")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the page to this file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "page title, overrides the file title")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// Run submits every note of f in order and renders the page into out.
// Rejected notes are reported on alerts and skipped.
func Run(log *zap.SugaredLogger, f File, out, alerts io.Writer) error {
	b := board.New()
	w := widget.New(log, b, sys.Configs.Widget.DefaultPriority)

	for i, v := range f.Notes {
		form := widget.NewSubmission(v)
		if _, err := w.Submit(form); err != nil {
			_, _ = fmt.Fprintf(alerts, "note %d: %s\n", i+1, form.Message)
		}
	}

	title := f.Title
	if title == "" {
		title = sys.Configs.Widget.Title
	}

	return board.RenderPage(out, board.Page{
		Title:           title,
		Priorities:      sys.Configs.Widget.Priorities,
		DefaultPriority: sys.Configs.Widget.DefaultPriority,
		Cards:           b.Cards(),
	})
}

func initVars(log *zap.SugaredLogger) {
	sys.Configs.Widget.Title = env.OrDefault(log, "WIDGET_TITLE", "Notes")
	sys.Configs.Widget.Priorities = env.ListDefault(log, "WIDGET_PRIORITIES", "Low,Medium,High")
	sys.Configs.Widget.DefaultPriority = env.OrDefault(log, "WIDGET_DEFAULT_PRIORITY", "Medium")

	// logger
	sys.R.Log = log
}
