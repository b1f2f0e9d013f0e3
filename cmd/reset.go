package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored progress and start over",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation check")
}

func runReset(cmd *cobra.Command, args []string) error {
	if force, _ := cmd.Flags().GetBool("force"); !force {
		return fmt.Errorf("this deletes your program, plan, and history; re-run with --force to confirm")
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Reset(); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("All progress cleared."))
	return nil
}
