// Package cli provides help text and usage formatting for the checksum-check CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `checksum-check - Four digests of every file in a single read

USAGE
  checksum-check [flags] FILE...

FLAGS
  Output Selection:
    -f, --format <text|json|yaml>   Output format (default: text)
    --template <tpl>                Line template rendered per file, with
                                    placeholders {path} {size} {modified}
                                    {created} {md5} {sha1} {sha256} {sha512}

  Concurrency:
    -j, --jobs <int>                Number of files hashed concurrently (default: 1)

  Presentation:
    --no-color                      Disable colored output
    -v, --verbose                   Enable debug logging

  Configuration:
    --config <path>                 Path to additional config file

  Help & Version:
    -h, --help                      Show this help text
    --version                       Show version, commit, build date

EXIT CODES
  0   Success              Every file hashed
  1   Error                Invalid arguments, bad template, misconfiguration
  2   NotFound             A path does not exist
  3   NotAFile             A path is not a regular file
  4   PermissionDenied     A path is not readable
  5   IoFailure            Opening, statting or reading a file failed
  130 Interrupted          SIGINT or SIGTERM received

  With several files, the code of the first failing file (in argument
  order) is used.

EXAMPLES
  # Hash one file with the default card output
  checksum-check report.pdf

  # Machine-readable output for several files
  checksum-check --format json *.iso

  # Classic checksum list via a template
  checksum-check --template '{sha256}  {path}' backup.tar

  # Hash four files at a time
  checksum-check -j 4 dist/*

For more information, see: https://github.com/Swatto86/checksum-check
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
