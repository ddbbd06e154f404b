package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trinets/trinet/graphviz"
	"github.com/trinets/trinet/reachability"
)

var (
	maxIterations int
	partial       bool
	reachFormat   string
)

// reachCmd represents the reach command
var reachCmd = &cobra.Command{
	Use:   "reach",
	Short: "Compute the reachability graph of a marked net",
	Long: `Compute the reachability graph of a marked net: every distinct marking
reachable from the definition's initial marking, connected by transition
firings. Exploration is bounded by --max-iterations; pass --partial to
keep whatever was discovered when the budget runs out.`,
	Run: func(cmd *cobra.Command, args []string) {
		file := loadFile(inputFile)
		net, initial := buildNet(file)
		opts := []reachability.Option{
			reachability.WithMaxIterations(maxIterations),
			reachability.WithLogger(logger),
		}
		if partial {
			opts = append(opts, reachability.WithPartialOnBound())
		}
		graph, err := reachability.Explore(initial, opts...)
		if err != nil {
			logger.Fatal("exploring state space", zap.String("net", net.Name), zap.Error(err))
		}
		logger.Info("reachability summary",
			zap.String("net", net.Name),
			zap.String("initial", initial.String()),
			zap.Int("states", graph.Size()),
			zap.Int("edges", graph.EdgeCount()),
			zap.Int("deadEnds", len(graph.DeadEnds())),
			zap.Int("maxDepth", graph.MaxDepth()),
		)
		if reachFormat == "" {
			return
		}
		outPath := filepath.Join(outputDir, net.Name+".reach."+reachFormat)
		if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
			logger.Fatal("creating output directory", zap.Error(err))
		}
		df, err := os.Create(outPath)
		if err != nil {
			logger.Fatal("creating figure file", zap.Error(err))
		}
		defer func() {
			_ = df.Close()
		}()
		w := graphviz.NewGraph(&graphviz.Config{
			Name:   net.Name,
			Format: graphviz.Format(reachFormat),
		})
		if err := w.Flush(df, graph); err != nil {
			logger.Fatal("rendering reachability graph", zap.Error(err))
		}
		logger.Info("figure written", zap.String("path", outPath))
	},
}

func init() {
	rootCmd.AddCommand(reachCmd)
	reachCmd.Flags().IntVar(&maxIterations, "max-iterations", envInt("TRINET_MAX_ITERATIONS", reachability.DefaultMaxIterations), "iteration budget for exploration")
	reachCmd.Flags().BoolVar(&partial, "partial", false, "return the partial graph instead of failing when the budget is exhausted")
	reachCmd.Flags().StringVarP(&reachFormat, "format", "f", "", "also render the graph in this format (xdot, svg, png, jpg)")
}
