package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"textvec/internal/config"
	"textvec/internal/corpus"
	"textvec/internal/service"
	"textvec/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var dimension int
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/textvec/config.yaml if not provided)")
	flag.IntVar(&dimension, "dimension", 0, "Vector dimension (overrides config when > 0)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: textvec [--config=config.yaml] [--dimension=128] file1.txt [file2.txt ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if dimension > 0 {
		cfg.Dimension = dimension
	}

	loader := corpus.NewLoader(cfg.Corpus.SentencesPerDocument)
	documents, err := loader.Load(inputs)
	if err != nil {
		log.Fatalf("loading corpus failed: %v", err)
	}

	svc := service.New(cfg.Dimension, nil, log.Default())
	svc.Initialize(documents, cfg.Dimension)

	m := tui.New(svc, documents, cfg.Search.TopK, cfg.Decode.TopK, cfg.Cluster.Count)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
