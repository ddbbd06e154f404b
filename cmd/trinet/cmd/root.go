package cmd

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trinets/trinet"
	"github.com/trinets/trinet/netfile"
)

var (
	inputFile string
	outputDir string
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "trinet",
	Short: "Model Petri nets and explore their reachability graphs",
	Long: `trinet builds place/transition nets from YAML definitions, renders them
with graphviz, and computes the reachability graph of a marked net with a
bounded breadth-first exploration.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger)
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "net definition file")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", ".", "output directory")
}

func initLogger() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
}

var envOnce sync.Once

func loadDotenv() {
	envOnce.Do(func() {
		_ = godotenv.Load()
	})
}

func envInt(key string, fallback int) int {
	loadDotenv()
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envString(key, fallback string) string {
	loadDotenv()
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}

func loadFile(path string) *netfile.File {
	if path == "" {
		logger.Fatal("no input file given, use --input")
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Fatal("opening net definition", zap.Error(err))
	}
	defer func() {
		_ = f.Close()
	}()
	file, err := netfile.Load(f)
	if err != nil {
		logger.Fatal("parsing net definition", zap.String("file", path), zap.Error(err))
	}
	return file
}

func buildNet(file *netfile.File) (*trinet.Net, *trinet.Marking) {
	net, err := file.Net()
	if err != nil {
		logger.Fatal("building net", zap.String("net", file.Name), zap.Error(err))
	}
	initial, err := file.InitialMarking(net)
	if err != nil {
		logger.Fatal("building initial marking", zap.String("net", file.Name), zap.Error(err))
	}
	return net, initial
}
