package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dozr-cli/dozr/pkg/distribution"
)

type sampleOptions struct {
	count   int
	summary bool
	output  string
}

// sampleReport is what sample prints. Values are seconds.
type sampleReport struct {
	Distribution string                `json:"distribution"`
	Samples      []float64             `json:"samples,omitempty"`
	Summary      *distribution.Summary `json:"summary,omitempty"`
}

func newSampleCmd(opts *options) *cobra.Command {
	sampleOpts := &sampleOptions{}
	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw samples from a distribution without waiting",
		Long: `Draw samples from one of the wait distributions and print them in
seconds, to preview what a distribution command would wait.

Example usage:
  # Ten draws from an exponential distribution
  dozr sample exponential 0.5 --count 10

  # Summary statistics of 10000 draws as YAML
  dozr sample pareto 1 3 --count 10000 --summary --output yaml`,
	}
	flags := sampleCmd.PersistentFlags()
	flags.IntVarP(&sampleOpts.count, "count", "c", 1, "Number of samples to draw")
	flags.BoolVar(&sampleOpts.summary, "summary", false, "Print summary statistics instead of the samples")
	flags.StringVarP(&sampleOpts.output, "output", "o", "text", "Output format: text, yaml, json")

	for _, dc := range distributionCommands() {
		cmd := &cobra.Command{
			Use:     fmt.Sprintf("%s %s", dc.name, strings.Join(dc.args, " ")),
			Short:   dc.short,
			Example: "  dozr sample " + dc.example,
			Aliases: []string{dc.alias},
			Args:    cobra.ExactArgs(len(dc.args)),
			RunE: func(cmd *cobra.Command, args []string) error {
				spec, err := dc.build(args)
				if err != nil {
					return err
				}
				return opts.runSample(cmd, sampleOpts, spec)
			},
		}
		sampleCmd.AddCommand(cmd)
	}
	return sampleCmd
}

func (o *options) runSample(cmd *cobra.Command, sampleOpts *sampleOptions, spec distribution.Spec) error {
	for _, name := range []string{"jitter", "probability"} {
		if cmd.Flags().Changed(name) {
			return errors.Errorf("--%s cannot be used with sample", name)
		}
	}
	if sampleOpts.count <= 0 {
		return errors.Errorf("count must be positive, got %d", sampleOpts.count)
	}
	switch sampleOpts.output {
	case "text", "yaml", "json":
	default:
		return errors.Errorf("unknown output format %q, expected text, yaml or json", sampleOpts.output)
	}

	source, err := o.source(cmd)
	if err != nil {
		return err
	}
	samples, err := distribution.SampleN(spec, source, sampleOpts.count)
	if err != nil {
		return err
	}

	report := sampleReport{Distribution: spec.String()}
	if sampleOpts.summary {
		summary, err := distribution.Summarize(samples)
		if err != nil {
			return err
		}
		report.Summary = &summary
	} else {
		report.Samples = samples
	}
	return writeReport(o.stdout, sampleOpts.output, report)
}

func writeReport(w io.Writer, format string, report sampleReport) error {
	var out []byte
	var err error
	switch format {
	case "json":
		out, err = json.MarshalIndent(report, "", "  ")
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(report)
	default:
		out = []byte(formatText(report))
	}
	if err != nil {
		return errors.Wrap(err, "failed to encode samples")
	}
	_, err = w.Write(out)
	return err
}

func formatText(report sampleReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", report.Distribution)
	if s := report.Summary; s != nil {
		fmt.Fprintf(&b, "count:   %d\n", s.Count)
		fmt.Fprintf(&b, "mean:    %.3fs\n", s.Mean)
		fmt.Fprintf(&b, "median:  %.3fs\n", s.Median)
		fmt.Fprintf(&b, "std_dev: %.3fs\n", s.StdDev)
		fmt.Fprintf(&b, "min:     %.3fs\n", s.Min)
		fmt.Fprintf(&b, "max:     %.3fs\n", s.Max)
		return b.String()
	}
	for _, v := range report.Samples {
		fmt.Fprintf(&b, "%.3f\n", v)
	}
	return b.String()
}
