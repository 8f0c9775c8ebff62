package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"

	"soluna/common"
	"soluna/config"
	"soluna/logging"
	"soluna/pipeline"
	"soluna/server"
)

// Execute runs the main `soluna` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("soluna", "soluna is the analysis frontend for the Soluna language", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the analyzer log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "analyze a source file and report errors", true)
	checkCmd.AddPrimaryArg("file-path", "the path to the source file to check", true)

	serveCmd := cli.AddSubcommand("serve", "run the analysis server", true)
	serveCmd.AddStringArg("config", "c", "the directory holding soluna.toml", false)

	cli.AddSubcommand("version", "print the Soluna version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult, result.Arguments["loglevel"].(string))
	case "serve":
		execServeCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		logging.PrintInfoMessage("Soluna Version", common.SolunaVersion)
	}
}

// execCheckCommand analyzes one file and displays every diagnostic
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	fileRelPath, _ := result.PrimaryArg()

	filePath, err := filepath.Abs(fileRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	if !strings.HasSuffix(filePath, common.SrcFileExtension) {
		logging.PrintErrorMessage("File Error",
			fmt.Errorf("source files must have the `%s` extension", common.SrcFileExtension))
		return
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logging.PrintErrorMessage("File Error", err)
		return
	}

	logging.Initialize(loglevel)

	src := string(data)
	res := pipeline.Run(src)
	for _, diag := range res.Errors {
		logging.LogDiagnostic(src, diag)
	}

	logging.DisplayCheckFinished(len(res.Errors))
}

// execServeCommand loads the configuration and runs the analysis server
func execServeCommand(result *olive.ArgParseResult, loglevel string) {
	dir := "."
	if dirVal, ok := result.Arguments["config"]; ok {
		dir = dirVal.(string)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		logging.PrintErrorMessage("Config Error", err)
		return
	}

	if loglevel != "verbose" {
		cfg.LogLevel = loglevel
	}
	logging.Initialize(cfg.LogLevel)

	if err := server.New(cfg).ListenAndServe(); err != nil {
		logging.DisplayFatal(err.Error())
	}
}
