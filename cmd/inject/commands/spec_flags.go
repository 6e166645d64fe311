package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/inject/internal/app"
)

func addSpecFlags(cmd *cobra.Command) {
	addManagerFlag(cmd)
	cmd.Flags().StringP("file", "f", "", "Environment file (YAML or JSON) with channels and dependencies")
	cmd.Flags().StringArrayP("channel", "c", nil, "Channel to install from (repeatable)")
	cmd.Flags().StringArrayP("package", "p", nil, "Package specifier such as 'numpy >=1.24' (repeatable)")
	cmd.Flags().StringArrayP("extra", "e", nil, "Extra constraint appended after the interpreter pin (repeatable)")
	cmd.Flags().String("python-version", "", "Interpreter version to pin instead of detecting it")
	cmd.MarkFlagsMutuallyExclusive("file", "package")
	cmd.MarkFlagsMutuallyExclusive("file", "channel")
}

func addManagerFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("manager", "m", "", "Package manager: mamba, conda or micromamba")
}

func specOptions(cmd *cobra.Command) app.SpecOptions {
	file, _ := cmd.Flags().GetString("file")
	channels, _ := cmd.Flags().GetStringArray("channel")
	packages, _ := cmd.Flags().GetStringArray("package")
	extras, _ := cmd.Flags().GetStringArray("extra")
	manager, _ := cmd.Flags().GetString("manager")
	version, _ := cmd.Flags().GetString("python-version")

	return app.SpecOptions{
		File:               file,
		Channels:           channels,
		Packages:           packages,
		Manager:            manager,
		ExtraConstraints:   extras,
		InterpreterVersion: version,
	}
}
