package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/mihai-snyk/genetic/apis/config/v1alpha1"
	"github.com/mihai-snyk/genetic/pkg/genetic/util"
)

type options struct {
	config string
	output string
	plot   string
	clock  clock.Clock
}

func newCommand() *cobra.Command {
	o := &options{clock: clock.RealClock{}}
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Run a genetic optimization described by an Evolution file",
		Long: `evolve loads an Evolution object, evolves the benchmark problem it names
until a stop condition fires and writes the object back with its status filled in.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}

	o.addFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("config")

	goFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(goFlags)
	cmd.PersistentFlags().AddGoFlagSet(goFlags)
	return cmd
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.config, "config", "c", "", "path to the Evolution file")
	fs.StringVarP(&o.output, "output", "o", "-", "where to write the Evolution with its status, - for stdout")
	fs.StringVar(&o.plot, "plot", "", "write an HTML chart of the fitness per generation to this path")
}

func (o *options) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := klog.FromContext(ctx)

	obj, err := v1alpha1.Load(o.config)
	if err != nil {
		return err
	}
	logger.V(2).Info("Loaded evolution", "name", obj.Name, "problem", obj.Spec.Problem)

	summaries, runErr := runProblem(klog.NewContext(ctx, logger), obj, o.clock)
	if summaries == nil && runErr != nil {
		// The simulator was never built.
		return runErr
	}

	if err := o.writeStatus(cmd.OutOrStdout(), obj); err != nil {
		return err
	}
	writeReport(cmd.ErrOrStderr(), obj)

	if o.plot != "" {
		if err := util.WritePlot(o.plot, summaries, obj.Spec.Problem); err != nil {
			return fmt.Errorf("writing plot: %w", err)
		}
	}
	return runErr
}

func (o *options) writeStatus(stdout io.Writer, obj *v1alpha1.Evolution) error {
	data, err := v1alpha1.Encode(obj)
	if err != nil {
		return err
	}
	if o.output == "-" {
		_, err = stdout.Write(data)
		return err
	}
	return os.WriteFile(o.output, data, 0o644)
}
