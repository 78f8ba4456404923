package cmd

import (
	"text/template"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

// backupCmd represents the backup related commands
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Commands to manage repository backups",
	Long: `Commands to manage repository backups.

A backup pairs a small metadata record with a snapshot artifact holding
every ref in the repository, taken with git bundle. The record names the
branch the backup was taken for and the exact commit its tip was at, so
a restore resets that one branch while the artifact can still resurrect
any object the repository has since lost.`,
}

var backupDescriptorTemplate func(flagsT) *template.Template

func init() {
	addTemplateFlag(backupCmd)
	rootCmd.AddCommand(backupCmd)

	backupDescriptorTemplate = func(opts flagsT) *template.Template {
		if opts.core.template != "" {
			t, err := template.New("list line").Parse(opts.core.template)
			if err != nil {
				wrapFatalln("invalid template", err)
			}
			return t
		}
		const listLineTemplateString = `{{.ID}} , {{.Branch}} @ {{.CommitHash}} , {{.CreatedAt}} , {{humanSize .SizeBytes}}{{if .Description}} , {{.Description}}{{end}}`
		return template.Must(template.New("list line").
			Funcs(template.FuncMap{
				"humanSize": func(size int64) string { return units.HumanSize(float64(size)) },
			}).
			Parse(listLineTemplateString))
	}
}
