package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kurera-app/kurera/internal/progression"
	"github.com/kurera-app/kurera/internal/workout"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the next workout session",
	RunE:  runSession,
}

func init() {
	sessionCmd.Flags().String("type", string(workout.TypeRehab), "Session type: rehab or circulation")
}

func runSession(cmd *cobra.Command, args []string) error {
	typFlag, _ := cmd.Flags().GetString("type")
	typ, err := workout.ParseSessionType(typFlag)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	program, err := st.LoadProfile()
	if err != nil {
		return err
	}
	if program == nil {
		return fmt.Errorf("no program found: run `kurera assess` first")
	}

	progress, err := st.LoadProgress()
	if err != nil {
		return err
	}
	if progress == nil {
		progress = progression.NewProgress(program.Level)
	}

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	session := workout.AssembleSession(typ, progress, program, cat)

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s session", labelForType(typ))))
	fmt.Println(dimStyle.Render("id: " + session.ID))
	fmt.Println()

	if len(session.Exercises) == 0 {
		fmt.Println("No exercises available. Regenerate your plan with `kurera plan --regenerate`.")
		return nil
	}

	for i, e := range session.Exercises {
		dose := fmt.Sprintf("%d x %d", e.Config.Sets, e.Config.Reps)
		if e.Config.HoldSeconds > 0 {
			dose += fmt.Sprintf(", %ds hold", e.Config.HoldSeconds)
		}
		fmt.Printf("  %d. %s  %s\n", i+1, e.Exercise.Name, dimStyle.Render(dose))
	}
	fmt.Println()
	fmt.Println(dimStyle.Render("When you're done: kurera feedback --exertion perfect --pain 2"))
	return nil
}

func labelForType(typ workout.SessionType) string {
	if typ == workout.TypeCirculation {
		return "Circulation"
	}
	return "Rehab"
}
