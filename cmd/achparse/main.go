package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nacha-ach-builder/internal/ach/parse"
)

func main() {
	// Define command-line flags
	inPath := flag.String("in", "", "Path to the rendered ACH file (required)")
	groups := flag.Bool("groups", false, "Group raw lines by batch instead of decoding fields")
	flag.Parse()

	if *inPath == "" {
		fmt.Println("Error: -in is required.")
		flag.Usage()
		os.Exit(1)
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	if *groups {
		lineGroups, err := parse.GroupLines(string(raw))
		if err != nil {
			log.Fatalf("Grouping failed: %v", err)
		}
		output, err := json.MarshalIndent(lineGroups, "", "  ")
		if err != nil {
			log.Fatalf("Failed to generate JSON output: %v", err)
		}
		fmt.Println(string(output))
		return
	}

	doc, err := parse.Parse(string(raw))
	if err != nil {
		log.Fatalf("Parsing failed: %v", err)
	}

	output, err := doc.JSON()
	if err != nil {
		log.Fatalf("Failed to generate JSON output: %v", err)
	}

	fmt.Println(string(output))
}
