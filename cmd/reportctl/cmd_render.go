package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/report"
	"ptiadmin_backend/internals/features/inspections/report/pdf"
)

type renderOpts struct {
	file       string
	assetsFile string
	formCode   string
	format     string
	out        string
	tz         string
	row        bool
	offline    bool
	timeout    time.Duration
}

func (a *app) renderCmd() *cobra.Command {
	o := &renderOpts{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Normalize a submission payload and print it as json, yaml or pdf",
		Example: `  reportctl render --file sub.json --format yaml
  reportctl render --file row.json --row --assets assets.json --format pdf --out report.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, o)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.file, "file", "f", "", "payload JSON file (- for stdin)")
	f.StringVar(&o.assetsFile, "assets", "", "JSON array of assets {id, asset_type, public_url}")
	f.StringVar(&o.formCode, "form-code", "", "form code used when the payload declares none")
	f.StringVar(&o.format, "format", "json", "json | yaml | pdf")
	f.StringVarP(&o.out, "out", "o", "", "output file (default stdout)")
	f.StringVar(&o.tz, "tz", "UTC", "time zone for displayed timestamps")
	f.BoolVar(&o.row, "row", false, "input is a whole submissions row {id, form_code, payload}")
	f.BoolVar(&o.offline, "offline", false, "do not download photos for pdf")
	f.DurationVar(&o.timeout, "timeout", 2*time.Minute, "overall pdf timeout")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readJSON(path string, stdin io.Reader, v any) error {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (a *app) render(cmd *cobra.Command, o *renderOpts) error {
	format := strings.ToLower(o.format)
	if format != "json" && format != "yaml" && format != "pdf" {
		return fmt.Errorf("unknown format %q", o.format)
	}
	loc, err := time.LoadLocation(o.tz)
	if err != nil {
		return fmt.Errorf("time zone: %w", err)
	}

	var raw map[string]any
	if err := readJSON(o.file, cmd.InOrStdin(), &raw); err != nil {
		return err
	}
	payload, column, id := raw, o.formCode, ""
	if o.row {
		payload, _ = raw["payload"].(map[string]any)
		if s, ok := raw["form_code"].(string); ok && column == "" {
			column = s
		}
		id, _ = raw["id"].(string)
	}

	var assets []report.Asset
	if o.assetsFile != "" {
		if err := readJSON(o.assetsFile, cmd.InOrStdin(), &assets); err != nil {
			return err
		}
	}

	rep := report.NewNormalizer(formschema.NewDefaultRegistry(), loc).Normalize(payload, column, assets)

	w := cmd.OutOrStdout()
	if o.out != "" {
		fh, err := os.Create(o.out)
		if err != nil {
			return err
		}
		defer fh.Close()
		w = fh
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case "pdf":
		var fetcher pdf.PhotoFetcher
		if !o.offline {
			fetcher = pdf.NewHTTPFetcher(15*time.Second, os.Getenv("SUPABASE_SERVICE_ROLE_KEY"))
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()
		r := pdf.NewRenderer(fetcher, pdf.Options{Location: loc, Logger: a.logger})
		return r.Render(ctx, w, pdf.Document{SubmissionID: id, CreatedAt: time.Now(), Report: rep})
	default:
		b, err := sonic.ConfigStd.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [form-code]...",
		Short: "Show the form type each code is routed to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tTYPE\tLABEL")
			for _, code := range args {
				m := formschema.MetaFor(code)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", code, m.Type, m.Label)
			}
			return tw.Flush()
		},
	}
}

func (a *app) formsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List known form types and their sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := formschema.NewDefaultRegistry()
			w := cmd.OutOrStdout()
			for _, m := range formschema.AllMeta() {
				fmt.Fprintf(w, "%s (%s) %s\n", m.Label, m.Type, m.Code)
				fs, ok := reg.Schema(m.Type)
				if !ok {
					continue
				}
				for _, s := range fs.Sections {
					fmt.Fprintf(w, "  %-14s %-9s %s\n", s.ID, s.Kind, s.DisplayTitle())
				}
			}
			return nil
		},
	}
}
