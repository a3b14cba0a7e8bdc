package main

import (
	"flag"
	"log"

	"github.com/danmuck/aocctl/internal/catalog"
	"github.com/danmuck/aocctl/internal/config"
)

func main() {
	output := flag.String("output", config.DefaultPath, "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", config.DefaultPath, "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		known := catalog.Builtin(catalog.DefaultOptions()).Names()
		cfg, err := config.Load(*input, known)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated config at %s (exercises=%d parallelism=%d)", *input, len(cfg.Exercises), cfg.Parallelism)
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote config template to %s", *output)
}
