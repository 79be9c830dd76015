package main

import (
	"fmt"
	"os"

	"github.com/shapedb-project/shapedb/cmd/internal/eout"
	"github.com/shapedb-project/shapedb/cmd/shapedb/apply"
	"github.com/shapedb-project/shapedb/cmd/shapedb/color"
	"github.com/shapedb-project/shapedb/cmd/shapedb/convert"
	"github.com/shapedb-project/shapedb/cmd/shapedb/ddl"
	"github.com/shapedb-project/shapedb/cmd/shapedb/diff"
	"github.com/shapedb-project/shapedb/cmd/shapedb/log"
	"github.com/shapedb-project/shapedb/cmd/shapedb/option"
	"github.com/shapedb-project/shapedb/cmd/shapedb/shape"
	"github.com/shapedb-project/shapedb/cmd/shapedb/util"
	"github.com/spf13/cobra"
)

var program = "shapedb"

var colorMode string

var colorInitialized bool

func main() {
	colorMode = os.Getenv("SHAPEDB_COLOR")
	shapedbMain()
}

func shapedbMain() {
	// Initialize error output
	eout.Init(program)
	// Run
	var err error
	if err = run(); err != nil {
		if !colorInitialized {
			color.NeverColor()
		}
		eout.Error("%s", err)
		os.Exit(1)
	}
}

func run() error {
	var convertOpt = option.Convert{}
	var diffOpt = option.Diff{}
	var applyOpt = option.Apply{}

	var cmdConvert = &cobra.Command{
		Use: "convert",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if err = initColor(); err != nil {
				return err
			}
			return runConvert(&convertOpt)
		},
	}
	cmdConvert.SetHelpFunc(help)
	_ = shapeFileFlag(cmdConvert, &convertOpt.Shapefile)
	_ = cmdConvert.MarkFlagRequired("file")
	_ = schemaFlag(cmdConvert, &convertOpt.Schema)
	_ = verboseFlag(cmdConvert, &eout.EnableVerbose)

	var cmdDiff = &cobra.Command{
		Use: "diff",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if err = initColor(); err != nil {
				return err
			}
			return runDiff(&diffOpt)
		},
	}
	cmdDiff.SetHelpFunc(help)
	_ = fromFileFlag(cmdDiff, &diffOpt.FromFile)
	_ = cmdDiff.MarkFlagRequired("from")
	_ = toFileFlag(cmdDiff, &diffOpt.ToFile)
	_ = cmdDiff.MarkFlagRequired("to")
	_ = schemaFlag(cmdDiff, &diffOpt.Schema)
	_ = verboseFlag(cmdDiff, &eout.EnableVerbose)

	var cmdApply = &cobra.Command{
		Use: "apply",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if err = initColor(); err != nil {
				return err
			}
			log.Init(os.Stderr, nil, applyOpt.Debug, false)
			if err = apply.Apply(&applyOpt); err != nil {
				return err
			}
			return nil
		},
	}
	cmdApply.SetHelpFunc(help)
	_ = shapeFileFlag(cmdApply, &applyOpt.Shapefile)
	_ = cmdApply.MarkFlagRequired("file")
	_ = configFlag(cmdApply, &applyOpt.Conffile)
	_ = cmdApply.MarkFlagRequired("config")
	_ = schemaFlag(cmdApply, &applyOpt.Schema)
	_ = debugFlag(cmdApply, &applyOpt.Debug)
	_ = verboseFlag(cmdApply, &eout.EnableVerbose)

	var cmdVersion = &cobra.Command{
		Use: "version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("shapedb version %s\n", util.ShapedbVersion)
			return nil
		},
	}
	cmdVersion.SetHelpFunc(help)

	var rootCmd = &cobra.Command{
		Use:                "shapedb",
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableSuggestions: true,
	}
	rootCmd.SetHelpFunc(help)
	// Redefine help flag without -h; so we can use it for something else.
	var helpFlag bool
	rootCmd.PersistentFlags().BoolVarP(&helpFlag, "help", "", false, "Help for shapedb")
	// Add commands.
	rootCmd.AddCommand(cmdConvert, cmdDiff, cmdApply, cmdVersion)
	var err error
	if err = rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func runConvert(opt *option.Convert) error {
	s, err := shape.ReadFile(opt.Shapefile)
	if err != nil {
		return err
	}
	t, err := convert.Convert(s)
	if err != nil {
		return err
	}
	fmt.Printf("%s;\n", ddl.CreateTableSQL(opt.Schema, t))
	return nil
}

func runDiff(opt *option.Diff) error {
	from, err := shape.ReadFile(opt.FromFile)
	if err != nil {
		return err
	}
	to, err := shape.ReadFile(opt.ToFile)
	if err != nil {
		return err
	}
	d := diff.New(from, to)
	if d.Equal() {
		eout.Info("shapes are equal")
		return nil
	}
	stmts, err := ddl.AlterTableSQL(opt.Schema, d)
	if err != nil {
		return err
	}
	for _, q := range stmts {
		fmt.Printf("%s;\n", q)
	}
	return nil
}

var helpConvert = "Print CREATE TABLE DDL for a shape description\n"
var helpDiff = "Print ALTER TABLE DDL for the difference between two shapes\n"
var helpApply = "Execute DDL for a shape description in a database\n"
var helpVersion = "Print shapedb version\n"

func help(cmd *cobra.Command, commandLine []string) {
	switch cmd.Use {
	case "shapedb":
		fmt.Printf("" +
			"Shapedb schema converter\n" +
			"\n" +
			"Usage:  shapedb <command> <arguments>\n" +
			"\n" +
			"Commands:\n" +
			"  convert                     - " + helpConvert +
			"  diff                        - " + helpDiff +
			"  apply                       - " + helpApply +
			"  version                     - " + helpVersion +
			"\n" +
			"Use \"shapedb help <command>\" for more information about a command.\n")
	case "convert":
		fmt.Printf("" +
			helpConvert +
			"\n" +
			"Usage:  shapedb convert <options>\n" +
			"\n" +
			"Options:\n" +
			shapeFileFlag(nil, nil) +
			schemaFlag(nil, nil) +
			verboseFlag(nil, nil) +
			"")
	case "diff":
		fmt.Printf("" +
			helpDiff +
			"\n" +
			"Usage:  shapedb diff <options>\n" +
			"\n" +
			"Options:\n" +
			fromFileFlag(nil, nil) +
			toFileFlag(nil, nil) +
			schemaFlag(nil, nil) +
			verboseFlag(nil, nil) +
			"")
	case "apply":
		fmt.Printf("" +
			helpApply +
			"\n" +
			"Usage:  shapedb apply <options>\n" +
			"\n" +
			"Options:\n" +
			shapeFileFlag(nil, nil) +
			configFlag(nil, nil) +
			schemaFlag(nil, nil) +
			debugFlag(nil, nil) +
			verboseFlag(nil, nil) +
			"")
	case "version":
		fmt.Printf("" +
			helpVersion +
			"\n" +
			"Usage:  shapedb version\n")
	default:
	}
}

func verboseFlag(cmd *cobra.Command, verbose *bool) string {
	if cmd != nil {
		cmd.Flags().BoolVarP(verbose, "verbose", "v", false, "")
	}
	return "" +
		"  -v, --verbose               - Enable verbose output\n"
}

func debugFlag(cmd *cobra.Command, debug *bool) string {
	if cmd != nil {
		cmd.Flags().BoolVar(debug, "debug", false, "")
	}
	return "" +
		"      --debug                 - Enable detailed logging\n"
}

func shapeFileFlag(cmd *cobra.Command, file *string) string {
	if cmd != nil {
		cmd.Flags().StringVarP(file, "file", "f", "", "")
	}
	return "" +
		"  -f, --file <f>              - File name of a JSON shape description\n"
}

func fromFileFlag(cmd *cobra.Command, file *string) string {
	if cmd != nil {
		cmd.Flags().StringVarP(file, "from", "f", "", "")
	}
	return "" +
		"  -f, --from <f>              - File name of the old shape description\n"
}

func toFileFlag(cmd *cobra.Command, file *string) string {
	if cmd != nil {
		cmd.Flags().StringVarP(file, "to", "t", "", "")
	}
	return "" +
		"  -t, --to <f>                - File name of the new shape description\n"
}

func configFlag(cmd *cobra.Command, conffile *string) string {
	if cmd != nil {
		cmd.Flags().StringVarP(conffile, "config", "c", "", "")
	}
	return "" +
		"  -c, --config <f>            - File name of database configuration\n"
}

func schemaFlag(cmd *cobra.Command, schema *string) string {
	if cmd != nil {
		cmd.Flags().StringVar(schema, "schema", "", "")
	}
	return "" +
		"      --schema <s>            - Database schema qualifier for generated DDL\n"
}

func initColor() error {
	switch colorMode {
	case "always":
		color.AlwaysColor()
	case "auto":
		color.AutoColor()
	case "never", "":
		color.NeverColor()
	default:
		color.NeverColor()
		colorInitialized = true
		return fmt.Errorf("invalid SHAPEDB_COLOR value: %s", colorMode)
	}
	colorInitialized = true
	return nil
}
