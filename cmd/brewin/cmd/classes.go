package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-brewin/pkg/brewin"
)

var classesCmd = &cobra.Command{
	Use:   "classes <file>",
	Short: "List the classes defined in a Brewin program",
	Long: `classes parses a Brewin program and prints every class name it
defines, in natural sort order (so Class2 sorts before Class10), along
with each class's field and method names, without running the program.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		classes, err := brewin.ParseClasses(string(source))
		if err != nil {
			return err
		}

		names := classes.Names()
		sort.Sort(natural.StringSlice(names))
		for _, name := range names {
			fmt.Println(name)

			cd, ok := classes.Lookup(name)
			if !ok {
				continue
			}
			for _, f := range cd.Fields {
				fmt.Printf("  field  %s %s\n", f.DeclaredType, f.Name)
			}
			for _, m := range cd.Methods {
				fmt.Printf("  method %s %s\n", m.ReturnType, m.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
