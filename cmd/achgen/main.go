package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nacha-ach-builder/internal/ach/builder"
	"github.com/nacha-ach-builder/internal/ach/record"
	"github.com/nacha-ach-builder/internal/config"
	"github.com/nacha-ach-builder/internal/logger"
)

// sampleEntries is a template for the -entries input file.
var sampleEntries = []builder.EntrySpec{
	{
		Type:          "22",
		RoutingNumber: "12345678",
		AccountNumber: "11232132",
		Amount:        "10.00",
		Name:          "Alice Wanderdust",
		Addenda: []builder.AddendaSpec{
			{PaymentRelatedInfo: "Here is some additional information"},
		},
	},
	{
		Type:          "27",
		RoutingNumber: "12345678",
		AccountNumber: "234234234",
		Amount:        "150.00",
		Name:          "Billy Holiday",
	},
	{
		Type:          "22",
		RoutingNumber: "123232318",
		AccountNumber: "123123123",
		Amount:        "12.13",
		Name:          "Rachel Welch",
		IDNumber:      "3333",
	},
}

func main() {
	// Define command-line flags
	entriesPath := flag.String("entries", "", "Path to a JSON file with the batch entries (required)")
	secFlag := flag.String("sec", "PPD", "Standard entry class code for the batch")
	credits := flag.Bool("credits", true, "Batch carries credit entries")
	debits := flag.Bool("debits", false, "Batch carries debit entries")
	effectiveStr := flag.String("effective", "", "Effective entry date (YYYY-MM-DD), defaults to tomorrow")
	outPath := flag.String("out", "", "Output path for the rendered file (default stdout)")
	configName := flag.String("config", "achgen", "Configuration name, loads <name>.env")
	template := flag.Bool("template", false, "Print a sample entries JSON file and exit")
	flag.Parse()

	if *template {
		out, err := json.MarshalIndent(sampleEntries, "", "  ")
		if err != nil {
			fmt.Printf("Failed to render template: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if *entriesPath == "" {
		fmt.Println("Error: -entries is required (see -template for the expected format).")
		flag.Usage()
		os.Exit(1)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig(*configName)
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger with a per-run correlation id
	log := logger.NewLogger(cfg).With("run_id", uuid.New().String())

	raw, err := os.ReadFile(*entriesPath)
	if err != nil {
		log.Error("Failed to read entries file", "path", *entriesPath, "error", err)
		os.Exit(1)
	}
	var entries []builder.EntrySpec
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Error("Failed to decode entries file", "path", *entriesPath, "error", err)
		os.Exit(1)
	}

	opts := builder.BatchOptions{}
	if *effectiveStr != "" {
		effective, err := time.Parse("2006-01-02", *effectiveStr)
		if err != nil {
			log.Error("Failed to parse effective date", "value", *effectiveStr, "error", err)
			os.Exit(1)
		}
		opts.EffectiveDate = effective
	}

	file, err := builder.New(cfg.Originator.FileIDMod, builder.Settings{
		ImmediateDest:     cfg.Originator.ImmediateDest,
		ImmediateOrg:      cfg.Originator.ImmediateOrg,
		ImmediateDestName: cfg.Originator.ImmediateDestName,
		ImmediateOrgName:  cfg.Originator.ImmediateOrgName,
		CompanyID:         cfg.Originator.CompanyID,
	})
	if err != nil {
		log.Error("Failed to initialize file", "error", err)
		os.Exit(1)
	}

	if err := file.AddBatchWithOptions(record.SECCode(*secFlag), entries, *credits, *debits, opts); err != nil {
		log.Error("Failed to add batch", "sec", *secFlag, "error", err)
		os.Exit(1)
	}

	output := file.RenderToString(cfg.Output.ForceCRLF)

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(output), 0644); err != nil {
			log.Error("Failed to write output", "path", *outPath, "error", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(output)
	}

	log.Info("ach file rendered",
		"sec", *secFlag,
		"entries", len(entries),
		"crlf", cfg.Output.ForceCRLF,
		"bytes", len(output),
	)
}
