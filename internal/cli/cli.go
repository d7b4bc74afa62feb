// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/output"
	"github.com/temirov/dirtree/internal/services/clipboard"
	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/types"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	exclusionFlagName      = "exclude"
	exclusionFlagShorthand = "e"
	formatFlagName         = "format"
	copyFlagName           = "copy"
	configFlagName         = "config"
	versionFlagName        = "version"
	versionTemplate        = "dirtree version: %s\n"
	defaultPath            = "."
	rootUse                = "dirtree [path]"
	rootShortDescription   = "Display the directory structure."
	rootLongDescription    = `dirtree prints the directory structure under path (default ".") as a tree.
Entries are sorted by name in byte order, so uppercase names precede lowercase ones.
Names listed with --exclude are skipped and never descended into; without --exclude the
built-in list is used: target, node_modules, .git, dist, build, out, pkg.`
	rootUsageExample = `  # Render the current directory
  dirtree

  # Render ./src skipping only vendor and testdata
  dirtree src -e vendor -e testdata

  # Emit JSON and copy it to the clipboard
  dirtree --format json --copy .`

	exclusionFlagDescription = "name to exclude; repeatable, replaces the built-in list"
	formatFlagDescription    = "output format (raw, json, xml)"
	copyFlagDescription      = "copy the rendered output to the clipboard"
	configFlagDescription    = "read defaults from this configuration file"
	versionFlagDescription   = "display application version"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	clipboardErrorFormat        = "copy output: %w"
)

// Execute runs the dirtree application.
func Execute() error {
	return NewRootCommand(clipboard.NewService()).Execute()
}

// rootOptions stores values bound to the root command flags.
type rootOptions struct {
	exclusions  []string
	format      string
	copyEnabled bool
	configPath  string
	showVersion bool
}

// NewRootCommand builds the root Cobra command. copier receives the output when copying is enabled.
func NewRootCommand(copier clipboard.Copier) *cobra.Command {
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				_, writeError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return writeError
			}
			rootPath := defaultPath
			if len(arguments) > 0 {
				rootPath = arguments[0]
			}
			settings, settingsError := resolveSettings(command, options)
			if settingsError != nil {
				return settingsError
			}
			return runTree(command.OutOrStdout(), rootPath, settings, copier)
		},
	}
	rootCommand.CompletionOptions.DisableDefaultCmd = true

	flagSet := rootCommand.Flags()
	flagSet.StringArrayVarP(&options.exclusions, exclusionFlagName, exclusionFlagShorthand, nil, exclusionFlagDescription)
	flagSet.StringVar(&options.format, formatFlagName, config.DefaultFormat, formatFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)
	registerToggleFlag(flagSet, &options.copyEnabled, copyFlagName, copyFlagDescription)
	return rootCommand
}

// resolveSettings merges the optional configuration file with the flags the user actually set.
func resolveSettings(command *cobra.Command, options rootOptions) (config.Settings, error) {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return config.Settings{}, fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	fileConfiguration, loadError := config.LoadFileConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if loadError != nil {
		return config.Settings{}, loadError
	}
	flagSet := command.Flags()
	return config.Resolve(fileConfiguration, config.Overrides{
		Exclude:    options.exclusions,
		ExcludeSet: flagSet.Changed(exclusionFlagName),
		Format:     options.format,
		FormatSet:  flagSet.Changed(formatFlagName),
		Copy:       options.copyEnabled,
		CopySet:    flagSet.Changed(copyFlagName),
	})
}

// runTree renders rootPath to stdout in the configured format.
func runTree(stdout io.Writer, rootPath string, settings config.Settings, copier clipboard.Copier) error {
	var captured bytes.Buffer
	writer := stdout
	if settings.Copy {
		writer = io.MultiWriter(stdout, &captured)
	}

	walker := tree.NewWalker(writer, tree.NewEntryLister(settings.Exclusions))
	if renderError := render(walker, writer, rootPath, settings.Format); renderError != nil {
		return renderError
	}

	if settings.Copy && copier != nil {
		if copyError := copier.Copy(captured.String()); copyError != nil {
			return fmt.Errorf(clipboardErrorFormat, copyError)
		}
	}
	return nil
}

func render(walker *tree.Walker, writer io.Writer, rootPath string, format string) error {
	if format == types.FormatRaw {
		return walker.Render(rootPath)
	}
	rootNode, collectError := walker.Collect(rootPath)
	if collectError != nil {
		return collectError
	}
	rendered, renderError := output.RenderStructured(format, rootNode)
	if renderError != nil {
		return renderError
	}
	_, writeError := fmt.Fprintln(writer, rendered)
	return writeError
}
