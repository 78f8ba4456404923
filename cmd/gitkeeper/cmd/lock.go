package cmd

import (
	"text/template"

	"github.com/spf13/cobra"
)

// lockCmd represents the lock related commands
var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Commands to manage branch locks",
	Long: `Commands to manage advisory branch locks.

A lock marks a branch as off limits for a bounded time, with an owner
and a reason. Locks are advisory: gitkeeper reports them and refuses its
own operations against them, it does not hook into git to physically
prevent pushes. An expired lock counts as no lock at all and is cleared
on the next encounter.`,
}

var lockDescriptorTemplate func(flagsT) *template.Template

func init() {
	addTemplateFlag(lockCmd)
	rootCmd.AddCommand(lockCmd)

	lockDescriptorTemplate = func(opts flagsT) *template.Template {
		if opts.core.template != "" {
			t, err := template.New("list line").Parse(opts.core.template)
			if err != nil {
				wrapFatalln("invalid template", err)
			}
			return t
		}
		const listLineTemplateString = `{{.Branch}} , locked by {{.LockedBy}} , until {{.ExpiresAt}}{{if .Reason}} , {{.Reason}}{{end}}`
		return template.Must(template.New("list line").Parse(listLineTemplateString))
	}
}
