package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/templui/fittrack/internal/catalog"
	"github.com/templui/fittrack/internal/model"
)

func CatalogCmd() *cobra.Command {
	var path string
	var group string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the exercise catalog by muscle group",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(path)
			if err != nil {
				return err
			}

			groups := model.AllMuscleGroups
			if group != "" {
				g, err := model.ParseMuscleGroup(group)
				if err != nil {
					return err
				}
				groups = []model.MuscleGroup{g}
			}

			printCatalog(cmd.OutOrStdout(), c, groups)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "file", "", "catalog TOML file (default: embedded catalog)")
	cmd.Flags().StringVar(&group, "group", "", "only list this muscle group")
	return cmd
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func printCatalog(w io.Writer, c *catalog.Catalog, groups []model.MuscleGroup) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, g := range groups {
		fmt.Fprintln(w, boldGreen(displayGroup(g)))
		for _, e := range c.Group(g) {
			tag := ""
			if e.Beginner {
				tag = " " + yellow("[beginner]")
			}
			fmt.Fprintf(w, "  • %s%s\n", e.Name, tag)
		}
	}
	fmt.Fprintf(w, "\n%d exercises\n", c.Len())
}
