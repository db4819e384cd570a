// Copyright 2025 Arieditya Pramadyana Deha <arieditya.prdh@live.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexaglue/hexaglue/classifier"
	"github.com/hexaglue/hexaglue/config"
	"github.com/hexaglue/hexaglue/diag/zapreporter"
	"github.com/hexaglue/hexaglue/driver"
	"github.com/hexaglue/hexaglue/model"
)

var (
	graphPath  string
	configPath string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify every type in a graph fixture",
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&graphPath, "graph", "", "path to a JSON graph fixture (required)")
	classifyCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration document")
	_ = classifyCmd.MarkFlagRequired("graph")
}

func runClassify(cmd *cobra.Command, args []string) error {
	q, err := loadGraph(graphPath)
	if err != nil {
		return err
	}

	var cfg *config.Config
	if configPath != "" {
		doc, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		cfg, err = config.Load(doc)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg, err = config.NewBuilder().Build()
		if err != nil {
			return fmt.Errorf("building default config: %w", err)
		}
	}

	reporter := zapreporter.New(logger)
	domainClassifier := classifier.NewDomain(cfg.Profile, reporter)
	portClassifier := classifier.NewPort(cfg.Profile, reporter)
	d := driver.NewSinglePassDriver(domainClassifier, portClassifier, reporter)

	results := d.Classify(q, cfg)
	printSummary(results)
	return nil
}

func printSummary(results *model.ClassificationResults) {
	fmt.Printf("classified %d subject/target pairs\n", results.Len())
	for _, r := range results.All() {
		switch r.Status {
		case model.StatusClassified:
			fmt.Printf("  %-60s %-10s %-20s confidence=%s\n", r.Subject, r.Target, r.Kind, r.Confidence)
		case model.StatusConflict:
			fmt.Printf("  %-60s %-10s %-20s CONFLICT (%d competing)\n", r.Subject, r.Target, r.Kind, len(r.Conflicts))
		default:
			fmt.Printf("  %-60s %-10s UNCLASSIFIED\n", r.Subject, r.Target)
		}
	}

	conflicts := results.Conflicts()
	if len(conflicts) > 0 {
		fmt.Printf("\n%d conflict(s) detected\n", len(conflicts))
	}
}
