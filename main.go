// Copyright 2025 Naren Yellavula
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
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/bintree"
)

var version = "0.1.0"

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Binary trees in, AVL trees out: load, balance and explore [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var configPath string

	loadConfig := func() *Config {
		config, err := LoadConfig(configPath)
		if err != nil {
			log.Printf("Failed to load configuration: %v. Using default settings.", err)
		}
		return config
	}

	runTUI := func(cmd *cobra.Command, args []string) {
		session := NewSession(loadConfig())
		defer session.Close()
		if err := runBubbleTeaApp(session); err != nil {
			log.Fatalf("Error running UI: %v", err)
		}
	}

	var cmdTUI = &cobra.Command{
		Use:   "tui",
		Short: "Launches the arbor menu UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `TUI opens the interactive menu for loading, balancing and editing trees`),
		Args:  cobra.NoArgs,
		Run:   runTUI,
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Start a line-oriented arbor shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads menu commands from standard input`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			shell := NewShell(NewSession(config), os.Stdin, os.Stdout, config.Shell.Prompt)
			shell.Run()
		},
	}

	var cmdLoad = &cobra.Command{
		Use:   "load <file>",
		Short: "Print a tree file and its traversals",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load parses a bracket-notation tree file, draws it and prints its traversals`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			session := NewSession(loadConfig())
			defer session.Close()

			if _, err := session.Load(args[0]); err != nil {
				log.Fatalf("%s", describeError(err))
			}
			session.ShowBinary(os.Stdout)
			fmt.Println()
			session.BinaryTraversals(os.Stdout)

			if toAVL, _ := cmd.Flags().GetBool("avl"); toAVL {
				if err := session.BuildAVL(); err != nil {
					log.Fatalf("%s", describeError(err))
				}
				fmt.Printf("\n%sAVL tree:%s\n", Green, Reset)
				session.ShowAVL(os.Stdout)
				fmt.Println()
				session.AVLTraversals(os.Stdout)
			}
		},
	}
	cmdLoad.Flags().Bool("avl", false, "also convert the tree to an AVL tree")

	var deleteKeys []int
	var cmdBuild = &cobra.Command{
		Use:   "build <key>...",
		Short: "Build an AVL tree from keys",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Build inserts the keys in order into an empty AVL tree, then deletes the --delete keys`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			keys, err := parseKeys(args)
			if err != nil {
				log.Fatalf("Error parsing keys: %v", err)
			}

			tree := avl.NewTree()
			defer tree.Destroy()
			for _, key := range keys {
				tree.Insert(key)
			}
			for _, key := range deleteKeys {
				tree.Delete(key)
			}
			if tree.IsEmpty() {
				fmt.Println("AVL tree is empty")
				return
			}

			tree.Print(os.Stdout, config.Display.Indent, config.Display.ShowHeights)
			fmt.Println()
			fmt.Printf("Breadth-first: %s\n", formatKeys(tree.BreadthFirst()))
			fmt.Printf("Pre-order: %s\n", formatKeys(tree.PreOrder()))
			fmt.Printf("In-order: %s\n", formatKeys(tree.InOrder()))
			fmt.Printf("Post-order: %s\n", formatKeys(tree.PostOrder()))
			fmt.Printf("Bracket form: %s\n", bintree.String(bintree.FromAVL(tree.Root)))
		},
	}
	cmdBuild.Flags().IntSliceVar(&deleteKeys, "delete", nil, "keys to delete after building")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run random inserts and deletes checking AVL invariants",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stress applies random operations to one AVL tree and checks it against a reference set after every step`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			opts := StressOptions{
				Ops:      config.Stress.Ops,
				MaxKey:   config.Stress.MaxKey,
				Seed:     time.Now().UnixNano(),
				Progress: config.Stress.Progress,
			}
			if cmd.Flags().Changed("ops") {
				opts.Ops, _ = cmd.Flags().GetInt("ops")
			}
			if cmd.Flags().Changed("max-key") {
				opts.MaxKey, _ = cmd.Flags().GetInt("max-key")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetInt64("seed")
			}

			fmt.Printf("Seed: %d\n", opts.Seed)
			report, err := runStress(opts, os.Stderr)
			if err != nil {
				log.Fatalf("Stress run failed: %v", err)
			}
			fmt.Printf("%s✅ %s%s\n", Green, report, Reset)
		},
	}
	cmdStress.Flags().Int("ops", 0, "number of operations (default from config)")
	cmdStress.Flags().Int("max-key", 0, "keys are drawn from [0, max-key) (default from config)")
	cmdStress.Flags().Int64("seed", 0, "random seed (default: current time)")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the active configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints the configuration, creating the default file when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(os.Stdout, configPath); err != nil {
				log.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print arbor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "arbor",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		// Default to the menu UI when no subcommand is provided
		Run: runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.arbor.yaml)")
	rootCmd.AddCommand(cmdTUI, cmdShell, cmdLoad, cmdBuild, cmdStress, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

